// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/solverforge/bracket/internal/solve/equation/bisection"
	"github.com/solverforge/bracket/internal/solve/optimization/goldensection"
)

// Config holds the full service configuration.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Solver struct {
		MaxIters    int     `env:"SOLVER_MAX_ITERS" envDefault:"100"`
		XAbsTol     float64 `env:"SOLVER_X_ABS_TOL" envDefault:"1e-12"`
		XRelTol     float64 `env:"SOLVER_X_REL_TOL" envDefault:"1e-12"`
		ResidualTol float64 `env:"SOLVER_RESIDUAL_TOL" envDefault:"1e-12"`
	}
}

// Load parses configuration from environment variables and validates the
// solver tolerances.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Bisection().Validate(); err != nil {
		return nil, err
	}
	if err := cfg.GoldenSection().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bisection returns the configured bisection solver settings.
func (c *Config) Bisection() bisection.Config {
	return bisection.Config{
		MaxIters:    c.Solver.MaxIters,
		XAbsTol:     c.Solver.XAbsTol,
		XRelTol:     c.Solver.XRelTol,
		ResidualTol: c.Solver.ResidualTol,
	}
}

// GoldenSection returns the configured golden section solver settings.
func (c *Config) GoldenSection() goldensection.Config {
	return goldensection.Config{
		MaxIters: c.Solver.MaxIters,
		XAbsTol:  c.Solver.XAbsTol,
		XRelTol:  c.Solver.XRelTol,
	}
}
