package bisection

import "github.com/solverforge/bracket/internal/solve"

// Status indicates how the solver finished.
type Status int

const (
	// Converged means the configured tolerances were met.
	Converged Status = iota
	// MaxIters means the iteration limit was reached without converging.
	MaxIters
	// StoppedByObserver means an observer requested an early stop.
	StoppedByObserver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIters:
		return "max_iters"
	case StoppedByObserver:
		return "stopped_by_observer"
	default:
		return "unknown"
	}
}

// Solution is the terminal result of a bisection solve. It always reflects
// the best successful evaluation seen, by residual magnitude.
type Solution[I, O any] struct {
	// Status is the final solver status.
	Status Status
	// X is the best estimate of the root.
	X float64
	// Residual is the residual at X.
	Residual float64
	// Snapshot is the captured model input/output at X.
	Snapshot solve.Snapshot[I, O]
	// Iters is the number of midpoint evaluations performed.
	Iters int
}
