package bisection

// Action is a control override returned by an observer for one evaluation
// attempt.
type Action int

const (
	// None accepts the evaluation outcome as-is.
	None Action = iota

	// Stop halts the solver and finalizes with the best evaluation so far.
	Stop

	// AssumePositive treats the point's residual as positive for bracket
	// updates, regardless of whether the real evaluation succeeded. The
	// evaluation is excluded from best tracking. Mainly used to recover
	// from model failures.
	AssumePositive

	// AssumeNegative treats the point's residual as negative for bracket
	// updates. See AssumePositive.
	AssumeNegative
)

// AssumeSign returns the assume-action for the given residual sign.
func AssumeSign(s Sign) Action {
	if s == Negative {
		return AssumeNegative
	}
	return AssumePositive
}

// assumedSign returns the assumed residual sign, if the action carries one.
func (a Action) assumedSign() (Sign, bool) {
	switch a {
	case AssumePositive:
		return Positive, true
	case AssumeNegative:
		return Negative, true
	default:
		return 0, false
	}
}
