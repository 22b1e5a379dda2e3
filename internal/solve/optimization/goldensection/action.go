package goldensection

// Action is a control override returned by an observer for one evaluation
// attempt.
type Action int

const (
	// None accepts the evaluation outcome as-is.
	None Action = iota

	// Stop halts the solver and finalizes with the best point so far.
	Stop

	// AssumeWorse treats this point as scoring worse than the other interior
	// point, so the search shrinks away from it. The evaluation, even if
	// successful, is excluded from best tracking.
	//
	// Use it to recover from model failures when domain knowledge says the
	// failed region is suboptimal, or to steer the search away from a region
	// outright.
	AssumeWorse
)
