package bisection

import (
	"errors"
	"fmt"
)

// ErrNoSuccessfulEvaluation is returned when the solver finishes without a
// single real successful evaluation, for example when every attempt failed
// and all observer recoveries used assumed signs.
var ErrNoSuccessfulEvaluation = errors.New("no successful evaluations")

// BracketError reports initial bounds that cannot form a search interval.
type BracketError struct {
	Reason string
}

// Error returns the string representation of the error.
func (e *BracketError) Error() string { return "invalid bracket: " + e.Reason }

// ConfigError reports an invalid solver configuration.
type ConfigError struct {
	Reason string
}

// Error returns the string representation of the error.
func (e *ConfigError) Error() string { return "invalid config: " + e.Reason }

// NoBracketError reports initial endpoints whose residuals do not change
// sign. Residuals supplied by an observer assumption are reported as NaN.
type NoBracketError struct {
	Left, Right                 float64
	LeftResidual, RightResidual float64
}

// Error returns the string representation of the error.
func (e *NoBracketError) Error() string {
	return fmt.Sprintf("no root in bracket: f(%g)=%g, f(%g)=%g",
		e.Left, e.LeftResidual, e.Right, e.RightResidual)
}
