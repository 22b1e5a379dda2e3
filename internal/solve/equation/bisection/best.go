package bisection

import (
	"math"

	"github.com/solverforge/bracket/internal/solve/equation"
)

// best tracks the evaluation with the smallest residual magnitude seen so
// far. A nil eval represents the state before any successful evaluation.
type best[I, O any] struct {
	eval *equation.Evaluation[I, O]
}

// update replaces the tracked evaluation when the residual magnitude
// strictly improves. Ties keep the earlier evaluation.
func (b *best[I, O]) update(eval *equation.Evaluation[I, O]) {
	if b.eval != nil && math.Abs(eval.Residual) >= math.Abs(b.eval.Residual) {
		return
	}
	b.eval = eval
}

// residualConverged reports whether a best exists and its residual magnitude
// meets the tolerance.
func (b *best[I, O]) residualConverged(residualTol float64) bool {
	return b.eval != nil && math.Abs(b.eval.Residual) <= residualTol
}

// finish builds the terminal solution from the best evaluation.
func (b *best[I, O]) finish(status Status, iters int) (*Solution[I, O], error) {
	if b.eval == nil {
		return nil, ErrNoSuccessfulEvaluation
	}
	return &Solution[I, O]{
		Status:   status,
		X:        b.eval.X,
		Residual: b.eval.Residual,
		Snapshot: b.eval.Snapshot,
		Iters:    iters,
	}, nil
}
