package goldensection

import "github.com/solverforge/bracket/internal/solve/optimization"

// Event describes one evaluation attempt. It is delivered to the observer
// exactly once, before the bracket mutation derived from it, and must not be
// retained beyond the Observe call.
//
// During initialization the solver evaluates two interior points but emits
// only one event (for the second point), since the first has no comparison
// partner yet.
type Event[I, O any] struct {
	// X is the point that was evaluated.
	X float64

	// Eval is the successful evaluation, or nil if the attempt failed.
	Eval *optimization.Evaluation[I, O]

	// Err is the staged evaluation error, or nil on success.
	Err error

	// Other is the other interior point the new evaluation is compared
	// against. Its objective is NaN when no real point is available.
	Other Point
}

// Observer inspects evaluation attempts and may steer the solver by
// returning a non-None action.
type Observer[I, O any] interface {
	Observe(ev *Event[I, O]) Action
}

// ObserverFunc adapts a closure to the Observer interface.
type ObserverFunc[I, O any] func(ev *Event[I, O]) Action

// Observe invokes the function.
func (f ObserverFunc[I, O]) Observe(ev *Event[I, O]) Action { return f(ev) }

// NopObserver accepts every evaluation outcome.
type NopObserver[I, O any] struct{}

// Observe returns None.
func (NopObserver[I, O]) Observe(*Event[I, O]) Action { return None }
