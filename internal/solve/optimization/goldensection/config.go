package goldensection

import "math"

// Config holds solver iteration and tolerance settings.
type Config struct {
	// MaxIters caps the number of shrink iterations.
	MaxIters int
	// XAbsTol is the absolute tolerance on the interior-point gap.
	XAbsTol float64
	// XRelTol is the relative tolerance, scaled by |midpoint|.
	XRelTol float64
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() Config {
	return Config{
		MaxIters: 100,
		XAbsTol:  1e-12,
		XRelTol:  1e-12,
	}
}

// ConfigError reports an invalid solver configuration.
type ConfigError struct {
	Reason string
}

// Error returns the string representation of the error.
func (e *ConfigError) Error() string { return "invalid config: " + e.Reason }

// Validate checks that the iteration cap is non-negative and every tolerance
// is finite and non-negative.
func (c Config) Validate() error {
	if c.MaxIters < 0 {
		return &ConfigError{Reason: "max_iters must be non-negative"}
	}
	if math.IsNaN(c.XAbsTol) || math.IsInf(c.XAbsTol, 0) || c.XAbsTol < 0 {
		return &ConfigError{Reason: "x_abs_tol must be finite and non-negative"}
	}
	if math.IsNaN(c.XRelTol) || math.IsInf(c.XRelTol, 0) || c.XRelTol < 0 {
		return &ConfigError{Reason: "x_rel_tol must be finite and non-negative"}
	}
	return nil
}
