// Package observers provides reusable observer implementations for the
// bracketing solvers: structured logging, run tracing, prometheus metrics,
// context-based cancellation, and composition.
package observers

import (
	"go.uber.org/zap"

	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// BisectionLogger logs every bisection evaluation attempt. Successful
// evaluations log at debug, failures at warn. It never steers the solver.
func BisectionLogger[I, O any](log *zap.Logger) bisection.ObserverFunc[I, O] {
	return func(ev *bisection.Event[I, O]) bisection.Action {
		if ev.Err != nil {
			log.Warn("evaluation failed",
				zap.Stringer("point", ev.Kind),
				zap.Float64("x", ev.X),
				zap.Error(ev.Err),
			)
			return bisection.None
		}
		log.Debug("evaluated",
			zap.Stringer("point", ev.Kind),
			zap.Float64("x", ev.X),
			zap.Float64("residual", ev.Eval.Residual),
		)
		return bisection.None
	}
}

// GoldenLogger logs every golden section evaluation attempt. Successful
// evaluations log at debug, failures at warn. It never steers the solver.
func GoldenLogger[I, O any](log *zap.Logger) goldensection.ObserverFunc[I, O] {
	return func(ev *goldensection.Event[I, O]) goldensection.Action {
		if ev.Err != nil {
			log.Warn("evaluation failed",
				zap.Float64("x", ev.X),
				zap.Error(ev.Err),
			)
			return goldensection.None
		}
		log.Debug("evaluated",
			zap.Float64("x", ev.X),
			zap.Float64("objective", ev.Eval.Objective),
			zap.Float64("other_x", ev.Other.X),
		)
		return goldensection.None
	}
}
