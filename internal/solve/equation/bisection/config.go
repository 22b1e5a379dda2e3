package bisection

// Config holds solver iteration and tolerance settings.
type Config struct {
	// MaxIters caps the number of midpoint evaluations.
	MaxIters int
	// XAbsTol is the absolute bracket-width tolerance.
	XAbsTol float64
	// XRelTol is the relative bracket-width tolerance, scaled by |midpoint|.
	XRelTol float64
	// ResidualTol is the absolute residual-magnitude tolerance.
	ResidualTol float64
}

// DefaultConfig returns the default solver configuration.
func DefaultConfig() Config {
	return Config{
		MaxIters:    100,
		XAbsTol:     1e-12,
		XRelTol:     1e-12,
		ResidualTol: 1e-12,
	}
}

// Validate checks that the iteration cap is non-negative and every tolerance
// is finite and non-negative.
func (c Config) Validate() error {
	if c.MaxIters < 0 {
		return &ConfigError{Reason: "max_iters must be non-negative"}
	}
	if !isFinite(c.XAbsTol) || c.XAbsTol < 0 {
		return &ConfigError{Reason: "x_abs_tol must be finite and non-negative"}
	}
	if !isFinite(c.XRelTol) || c.XRelTol < 0 {
		return &ConfigError{Reason: "x_rel_tol must be finite and non-negative"}
	}
	if !isFinite(c.ResidualTol) || c.ResidualTol < 0 {
		return &ConfigError{Reason: "residual_tol must be finite and non-negative"}
	}
	return nil
}
