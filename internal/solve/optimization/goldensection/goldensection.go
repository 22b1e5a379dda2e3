// Package goldensection finds the extremum of a unimodal one-variable
// objective over a bounded interval, without derivative information.
//
// The search keeps two interior points placed by the golden ratio, compares
// their objectives, and shrinks the bracket away from the worse point; one
// interior evaluation survives every shrink, so each iteration costs a
// single model call.
//
// Minimization and maximization share the same algorithm: an objective
// transform (identity or negation) is applied before every comparison, so
// the search always minimizes internally.
//
// Every evaluation attempt after initialization is reported to the observer.
// The observer may return Stop to finalize with the best point so far, or
// AssumeWorse to treat the point as worse than its comparison partner,
// recovering from model failures or steering the search. Assumed points
// never count toward the best solution.
package goldensection

import (
	"math"

	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/optimization"
)

// Minimize finds the minimum of the objective inside the bracket.
//
// The returned Solution reflects the best real evaluation seen; an early
// stop or exhausted iteration budget yields a non-Converged status, not an
// error. An evaluation failure is an error unless the observer recovers the
// attempt with AssumeWorse.
func Minimize[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket [2]float64,
	cfg Config,
	observer Observer[I, O],
) (*Solution[I, O], error) {
	return search(model, problem, bracket, cfg, observer, identity)
}

// MinimizeUnobserved runs Minimize with a no-op observer.
func MinimizeUnobserved[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket [2]float64,
	cfg Config,
) (*Solution[I, O], error) {
	return Minimize(model, problem, bracket, cfg, NopObserver[I, O]{})
}

// Maximize finds the maximum of the objective inside the bracket. It runs
// the same search as Minimize with a negating transform.
func Maximize[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket [2]float64,
	cfg Config,
	observer Observer[I, O],
) (*Solution[I, O], error) {
	return search(model, problem, bracket, cfg, observer, negate)
}

// MaximizeUnobserved runs Maximize with a no-op observer.
func MaximizeUnobserved[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket [2]float64,
	cfg Config,
) (*Solution[I, O], error) {
	return Maximize(model, problem, bracket, cfg, NopObserver[I, O]{})
}

func identity(v float64) float64 { return v }
func negate(v float64) float64   { return -v }

func search[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket [2]float64,
	cfg Config,
	observer Observer[I, O],
	transform func(float64) float64,
) (*Solution[I, O], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gb := newGoldenBracket(bracket)

	st, early, err := initState(model, problem, gb, observer, transform)
	if err != nil {
		return nil, err
	}
	if early != nil {
		return early, nil
	}

	for iter := 1; iter <= cfg.MaxIters; iter++ {
		if st.converged(cfg) {
			return st.solution(Converged, iter-1), nil
		}

		side, nextX := st.nextStep(transform)
		other := st.left
		if side == shrinkLeftSide {
			other = st.right
		}

		eval, evalErr := optimization.Evaluate(model, problem, nextX)
		action := observer.Observe(&Event[I, O]{
			X:     nextX,
			Eval:  eval,
			Err:   evalErr,
			Other: other,
		})

		var p Point
		real := false
		switch action {
		case Stop:
			return st.solution(StoppedByObserver, iter), nil
		case AssumeWorse:
			p = Point{X: nextX, Objective: transform(math.Inf(1))}
		default:
			if evalErr != nil {
				return nil, evalErr
			}
			p = pointOf(eval)
			real = true
		}

		st.apply(side, p)
		if real {
			st.maybeUpdateBest(p, transform, eval.Snapshot)
		}
	}

	return st.solution(MaxIters, cfg.MaxIters), nil
}
