package observers

import (
	"gonum.org/v1/gonum/stat"

	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// Step records one evaluation attempt seen by a Trace.
type Step struct {
	// X is the evaluated point.
	X float64
	// Score is the residual or objective; zero when Failed.
	Score float64
	// Failed reports whether the evaluation errored.
	Failed bool
}

// Trace records every evaluation attempt of a solve in order. Solvers run
// single-threaded, so a Trace needs no locking; use one Trace per solve.
type Trace struct {
	steps []Step
}

// Steps returns the recorded attempts in evaluation order.
func (t *Trace) Steps() []Step { return t.steps }

// Len returns the number of recorded attempts.
func (t *Trace) Len() int { return len(t.steps) }

func (t *Trace) record(x, score float64, failed bool) {
	t.steps = append(t.steps, Step{X: x, Score: score, Failed: failed})
}

// Summary aggregates a recorded solve.
type Summary struct {
	Evaluations int
	Failures    int
	MeanScore   float64
	StdDevScore float64
}

// Summary computes aggregate statistics over the successful evaluations.
func (t *Trace) Summary() Summary {
	scores := make([]float64, 0, len(t.steps))
	failures := 0
	for _, s := range t.steps {
		if s.Failed {
			failures++
			continue
		}
		scores = append(scores, s.Score)
	}

	sum := Summary{Evaluations: len(t.steps), Failures: failures}
	if len(scores) > 0 {
		sum.MeanScore = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		sum.StdDevScore = stat.StdDev(scores, nil)
	}
	return sum
}

// TraceBisection returns an observer that records bisection attempts into t.
func TraceBisection[I, O any](t *Trace) bisection.ObserverFunc[I, O] {
	return func(ev *bisection.Event[I, O]) bisection.Action {
		if ev.Err != nil {
			t.record(ev.X, 0, true)
		} else {
			t.record(ev.X, ev.Eval.Residual, false)
		}
		return bisection.None
	}
}

// TraceGolden returns an observer that records golden section attempts into t.
func TraceGolden[I, O any](t *Trace) goldensection.ObserverFunc[I, O] {
	return func(ev *goldensection.Event[I, O]) goldensection.Action {
		if ev.Err != nil {
			t.record(ev.X, 0, true)
		} else {
			t.record(ev.X, ev.Eval.Objective, false)
		}
		return goldensection.None
	}
}
