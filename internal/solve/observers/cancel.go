package observers

import (
	"context"

	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// The solvers have no cancellation primitive of their own; an observer
// returning Stop is the only way to end a solve early. These adapters bridge
// context cancellation into that protocol, checked once per evaluation.

// StopBisectionOnDone stops a bisection solve once ctx is cancelled.
func StopBisectionOnDone[I, O any](ctx context.Context) bisection.ObserverFunc[I, O] {
	return func(*bisection.Event[I, O]) bisection.Action {
		select {
		case <-ctx.Done():
			return bisection.Stop
		default:
			return bisection.None
		}
	}
}

// StopGoldenOnDone stops a golden section search once ctx is cancelled.
func StopGoldenOnDone[I, O any](ctx context.Context) goldensection.ObserverFunc[I, O] {
	return func(*goldensection.Event[I, O]) goldensection.Action {
		select {
		case <-ctx.Done():
			return goldensection.Stop
		default:
			return goldensection.None
		}
	}
}
