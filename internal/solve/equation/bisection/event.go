package bisection

import "github.com/solverforge/bracket/internal/solve/equation"

// EventKind identifies which point of the search an event describes.
type EventKind int

const (
	// LeftEndpoint is the initial left bracket endpoint evaluation.
	LeftEndpoint EventKind = iota
	// RightEndpoint is the initial right bracket endpoint evaluation.
	RightEndpoint
	// Midpoint is a midpoint evaluation against a validated bracket.
	Midpoint
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case LeftEndpoint:
		return "left"
	case RightEndpoint:
		return "right"
	default:
		return "midpoint"
	}
}

// Event describes one evaluation attempt. It is delivered to the observer
// exactly once, before any bracket mutation derived from it, and must not be
// retained beyond the Observe call.
type Event[I, O any] struct {
	Kind EventKind

	// X is the point that was evaluated.
	X float64

	// Eval is the successful evaluation, or nil if the attempt failed.
	Eval *equation.Evaluation[I, O]

	// Err is the staged evaluation error, or nil on success.
	Err error

	// Bracket is the current search bracket. It is nil for endpoint events,
	// which precede bracket validation.
	Bracket *Bracket
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
