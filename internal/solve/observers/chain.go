package observers

import (
	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// ChainBisection delivers each event to every observer in order. The first
// non-None action wins; later observers still see the event but cannot
// override it.
func ChainBisection[I, O any](obs ...bisection.Observer[I, O]) bisection.ObserverFunc[I, O] {
	return func(ev *bisection.Event[I, O]) bisection.Action {
		action := bisection.None
		for _, o := range obs {
			if a := o.Observe(ev); a != bisection.None && action == bisection.None {
				action = a
			}
		}
		return action
	}
}

// ChainGolden delivers each event to every observer in order. The first
// non-None action wins; later observers still see the event but cannot
// override it.
func ChainGolden[I, O any](obs ...goldensection.Observer[I, O]) goldensection.ObserverFunc[I, O] {
	return func(ev *goldensection.Event[I, O]) goldensection.Action {
		action := goldensection.None
		for _, o := range obs {
			if a := o.Observe(ev); a != goldensection.None && action == goldensection.None {
				action = a
			}
		}
		return action
	}
}
