package observers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// Metrics counts solver evaluation attempts for prometheus scraping,
// labelled by solver family and outcome.
type Metrics struct {
	evaluations *prometheus.CounterVec
}

// NewMetrics registers the solver metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bracket_evaluations_total",
			Help: "Model evaluations attempted by the bracketing solvers.",
		}, []string{"solver", "outcome"}),
	}
	reg.MustRegister(m.evaluations)
	return m
}

func (m *Metrics) count(solver string, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.evaluations.WithLabelValues(solver, outcome).Inc()
}

// MetricsBisection returns an observer that counts bisection attempts.
func MetricsBisection[I, O any](m *Metrics) bisection.ObserverFunc[I, O] {
	return func(ev *bisection.Event[I, O]) bisection.Action {
		m.count("bisection", ev.Err != nil)
		return bisection.None
	}
}

// MetricsGolden returns an observer that counts golden section attempts.
func MetricsGolden[I, O any](m *Metrics) goldensection.ObserverFunc[I, O] {
	return func(ev *goldensection.Event[I, O]) goldensection.Action {
		m.count("golden_section", ev.Err != nil)
		return goldensection.None
	}
}
