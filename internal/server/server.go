// Package server exposes the bracketing solvers over HTTP for the bundled
// demo models.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/solverforge/bracket/internal/config"
	"github.com/solverforge/bracket/internal/models"
	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/observers"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// Server handles solve requests against the demo models.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *observers.Metrics

	solveDuration *prometheus.HistogramVec
}

// New creates a server and registers its metrics with reg.
func New(cfg *config.Config, log *zap.Logger, reg prometheus.Registerer) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: observers.NewMetrics(reg),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bracket_solve_duration_seconds",
			Help:    "Wall time of solve requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"solver"}),
	}
	reg.MustRegister(s.solveDuration)
	return s
}

// RegisterRoutes mounts the solve endpoints on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve/root", s.handleRoot)
		r.Post("/solve/optimum", s.handleOptimum)
	})
}

type rootRequest struct {
	Model    models.TankCooling `json:"model"`
	Setpoint float64            `json:"setpoint_c"`
	Bracket  [2]float64         `json:"bracket_s"`
}

type rootResponse struct {
	Status      string  `json:"status"`
	Elapsed     float64 `json:"elapsed_s"`
	Residual    float64 `json:"residual_c"`
	Temperature float64 `json:"temperature_c"`
	Iters       int     `json:"iters"`
}

// handleRoot solves a tank cooldown time with the bisection solver.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	var req rootRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	observer := observers.ChainBisection[models.TankInput, models.TankOutput](
		observers.BisectionLogger[models.TankInput, models.TankOutput](s.log),
		observers.MetricsBisection[models.TankInput, models.TankOutput](s.metrics),
		observers.StopBisectionOnDone[models.TankInput, models.TankOutput](r.Context()),
	)

	solution, err := bisection.Solve(
		req.Model,
		models.CooldownProblem{Setpoint: req.Setpoint},
		req.Bracket,
		s.cfg.Bisection(),
		observer,
	)
	s.solveDuration.WithLabelValues("bisection").Observe(time.Since(start).Seconds())

	if err != nil {
		s.respondSolveError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, rootResponse{
		Status:      solution.Status.String(),
		Elapsed:     solution.X,
		Residual:    solution.Residual,
		Temperature: solution.Snapshot.Output.Temperature,
		Iters:       solution.Iters,
	})
}

type optimumRequest struct {
	Model   models.HeatPump `json:"model"`
	Bracket [2]float64      `json:"bracket_kg_s"`
}

type optimumResponse struct {
	Status string  `json:"status"`
	Flow   float64 `json:"flow_kg_s"`
	COP    float64 `json:"cop"`
	Iters  int     `json:"iters"`
}

// handleOptimum finds the peak-COP source flow with the golden section
// solver.
func (s *Server) handleOptimum(w http.ResponseWriter, r *http.Request) {
	var req optimumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	observer := observers.ChainGolden[models.FlowInput, models.COPOutput](
		observers.GoldenLogger[models.FlowInput, models.COPOutput](s.log),
		observers.MetricsGolden[models.FlowInput, models.COPOutput](s.metrics),
		observers.StopGoldenOnDone[models.FlowInput, models.COPOutput](r.Context()),
	)

	solution, err := goldensection.Maximize(
		req.Model,
		models.COPProblem{},
		req.Bracket,
		s.cfg.GoldenSection(),
		observer,
	)
	s.solveDuration.WithLabelValues("golden_section").Observe(time.Since(start).Seconds())

	if err != nil {
		s.respondSolveError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, optimumResponse{
		Status: solution.Status.String(),
		Flow:   solution.X,
		COP:    solution.Objective,
		Iters:  solution.Iters,
	})
}

// respondSolveError maps solver errors to HTTP statuses: validation problems
// are the client's fault, evaluation failures are not.
func (s *Server) respondSolveError(w http.ResponseWriter, err error) {
	var bracketErr *bisection.BracketError
	var noBracketErr *bisection.NoBracketError
	var cfgErr *bisection.ConfigError
	var goldenCfgErr *goldensection.ConfigError

	switch {
	case errors.As(err, &bracketErr),
		errors.As(err, &noBracketErr),
		errors.As(err, &cfgErr),
		errors.As(err, &goldenCfgErr):
		s.respondError(w, http.StatusUnprocessableEntity, err)
	default:
		s.respondError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.log.Error("request failed", zap.Int("status", status), zap.Error(err))
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}
