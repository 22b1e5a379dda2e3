// Package bisection finds a root of a one-variable equation by repeatedly
// halving a sign-changing bracket.
//
// The solver evaluates both endpoints, validates that their residual signs
// bracket a root, then iterates: evaluate the midpoint, replace the bound
// that shares the midpoint's sign, and update the best evaluation.
//
// Convergence is reported when either the best residual magnitude is within
// Config.ResidualTol, or the bracket width satisfies
// XAbsTol + XRelTol*|midpoint|.
//
// Every evaluation attempt is reported to the observer before the bracket is
// mutated. The observer may return Stop to finalize with the best evaluation
// so far, or AssumePositive/AssumeNegative to supply a residual sign when an
// evaluation fails (or to override a successful one). Assumed evaluations
// never count toward the best solution.
package bisection

import (
	"math"

	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/equation"
)

// Solve finds a root of the problem inside the bracket.
//
// The returned Solution always reflects the best successful evaluation seen,
// and its iteration count is the number of midpoint evaluations performed.
// An early stop or exhausted iteration budget yields a Solution with a
// non-Converged status, not an error.
func Solve[I, O any](
	model solve.Model[I, O],
	problem equation.Problem[I, O],
	bracket [2]float64,
	cfg Config,
	observer Observer[I, O],
) (*Solution[I, O], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bnds, err := newBounds(bracket)
	if err != nil {
		return nil, err
	}

	var tracker best[I, O]
	ctx := evalContext[I, O]{model: model, problem: problem, observer: observer}

	leftEval, leftDec := ctx.endpoint(LeftEndpoint, bnds.left)
	if leftEval != nil {
		tracker.update(leftEval)
	}
	var leftSign Sign
	switch leftDec.kind {
	case decideContinue:
		leftSign = leftDec.sign
	case decideStop:
		return tracker.finish(StoppedByObserver, 0)
	case decideFail:
		return nil, leftDec.err
	}

	rightEval, rightDec := ctx.endpoint(RightEndpoint, bnds.right)
	if rightEval != nil {
		tracker.update(rightEval)
	}
	var rightSign Sign
	switch rightDec.kind {
	case decideContinue:
		rightSign = rightDec.sign
	case decideStop:
		return tracker.finish(StoppedByObserver, 0)
	case decideFail:
		return nil, rightDec.err
	}

	br, ok := newBracket(bnds, leftSign, rightSign)
	if !ok {
		return nil, &NoBracketError{
			Left:          bnds.left,
			Right:         bnds.right,
			LeftResidual:  residualOrNaN(leftEval),
			RightResidual: residualOrNaN(rightEval),
		}
	}

	if tracker.residualConverged(cfg.ResidualTol) {
		return tracker.finish(Converged, 0)
	}

	for iter := 1; iter <= cfg.MaxIters; iter++ {
		if br.xConverged(cfg.XAbsTol, cfg.XRelTol) {
			return tracker.finish(Converged, iter-1)
		}

		mid := br.Midpoint()
		midEval, midDec := ctx.midpoint(mid, br)
		if midEval != nil {
			tracker.update(midEval)
		}
		switch midDec.kind {
		case decideContinue:
			br.shrink(mid, midDec.sign)
		case decideStop:
			return tracker.finish(StoppedByObserver, iter)
		case decideFail:
			return nil, midDec.err
		}

		if tracker.residualConverged(cfg.ResidualTol) {
			return tracker.finish(Converged, iter)
		}
	}

	return tracker.finish(MaxIters, cfg.MaxIters)
}

// SolveUnobserved runs Solve with a no-op observer.
func SolveUnobserved[I, O any](
	model solve.Model[I, O],
	problem equation.Problem[I, O],
	bracket [2]float64,
	cfg Config,
) (*Solution[I, O], error) {
	return Solve(model, problem, bracket, cfg, NopObserver[I, O]{})
}

func residualOrNaN[I, O any](eval *equation.Evaluation[I, O]) float64 {
	if eval == nil {
		return math.NaN()
	}
	return eval.Residual
}
