package solve

import "fmt"

// Stage identifies which step of an evaluation failed.
type Stage int

const (
	// StageInput covers failures constructing the model input from the
	// solver variable.
	StageInput Stage = iota
	// StageModel covers failures of the model call itself.
	StageModel
	// StageScore covers failures computing the residual or objective from
	// the input/output pair.
	StageScore
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageModel:
		return "model"
	case StageScore:
		return "score"
	default:
		return "unknown"
	}
}

// EvalError classifies a failed evaluation by the stage that produced it.
// Callers and observers use the stage to react differently to input
// construction, model, and score failures.
type EvalError struct {
	Stage Stage
	Err   error
}

// Error returns the string representation of the error.
func (e *EvalError) Error() string {
	switch e.Stage {
	case StageInput:
		return fmt.Sprintf("failed to compute input: %v", e.Err)
	case StageModel:
		return fmt.Sprintf("model call failed: %v", e.Err)
	case StageScore:
		return fmt.Sprintf("failed to compute score: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying cause.
func (e *EvalError) Unwrap() error { return e.Err }

// InputError wraps err as an input-stage failure.
func InputError(err error) *EvalError { return &EvalError{Stage: StageInput, Err: err} }

// ModelError wraps err as a model-stage failure.
func ModelError(err error) *EvalError { return &EvalError{Stage: StageModel, Err: err} }

// ScoreError wraps err as a score-stage failure.
func ScoreError(err error) *EvalError { return &EvalError{Stage: StageScore, Err: err} }

// StageOf reports the evaluation stage recorded in err, if any.
func StageOf(err error) (Stage, bool) {
	if e, ok := err.(*EvalError); ok {
		return e.Stage, true
	}
	return 0, false
}
