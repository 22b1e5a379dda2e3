package bisection

type decisionKind int

const (
	decideContinue decisionKind = iota
	decideStop
	decideFail
)

// decision is the resolved control-flow outcome for one evaluation attempt.
type decision struct {
	kind decisionKind
	sign Sign
	err  error
}

// resolve merges an observer action with the raw evaluation outcome. This is
// the single place observer intent and evaluation results are reconciled.
//
// An assume-action always continues with the assumed sign, and Stop always
// stops, regardless of the underlying result. Without an action, a
// successful evaluation continues with the residual's real sign and a failed
// one is fatal.
func resolve(action Action, residual float64, evalErr error) decision {
	if sign, ok := action.assumedSign(); ok {
		return decision{kind: decideContinue, sign: sign}
	}
	if action == Stop {
		return decision{kind: decideStop}
	}
	if evalErr != nil {
		return decision{kind: decideFail, err: evalErr}
	}
	return decision{kind: decideContinue, sign: SignOf(residual)}
}
