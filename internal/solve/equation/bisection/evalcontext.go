package bisection

import (
	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/equation"
)

// evalContext bundles evaluation, event emission, and action handling for a
// single solve, leaving the solver loop to focus on control flow.
//
// Each attempt is split into a decision used for bracket updates and an
// optional evaluation used for best tracking. When the observer assumes a
// residual sign, the evaluation is dropped so it cannot become the best.
type evalContext[I, O any] struct {
	model    solve.Model[I, O]
	problem  equation.Problem[I, O]
	observer Observer[I, O]
}

func (c *evalContext[I, O]) endpoint(kind EventKind, x float64) (*equation.Evaluation[I, O], decision) {
	return c.observe(kind, x, nil)
}

func (c *evalContext[I, O]) midpoint(x float64, bracket *Bracket) (*equation.Evaluation[I, O], decision) {
	return c.observe(Midpoint, x, bracket)
}

func (c *evalContext[I, O]) observe(kind EventKind, x float64, bracket *Bracket) (*equation.Evaluation[I, O], decision) {
	eval, err := equation.Evaluate(c.model, c.problem, x)

	action := c.observer.Observe(&Event[I, O]{
		Kind:    kind,
		X:       x,
		Eval:    eval,
		Err:     err,
		Bracket: bracket,
	})

	var residual float64
	if eval != nil {
		residual = eval.Residual
	}
	dec := resolve(action, residual, err)

	if _, assumed := action.assumedSign(); assumed {
		eval = nil
	}
	return eval, dec
}
