package equation

import "github.com/solverforge/bracket/internal/solve"

// Evaluation records one successful model evaluation at x.
type Evaluation[I, O any] struct {
	X        float64
	Residual float64
	Snapshot solve.Snapshot[I, O]
}

// Evaluate maps x to a model input, calls the model, and computes the
// residual. A failure at any step is returned as a *solve.EvalError tagged
// with the stage that produced it.
func Evaluate[I, O any](model solve.Model[I, O], problem Problem[I, O], x float64) (*Evaluation[I, O], error) {
	input, err := problem.Input(x)
	if err != nil {
		return nil, solve.InputError(err)
	}

	output, err := model.Call(input)
	if err != nil {
		return nil, solve.ModelError(err)
	}

	residual, err := problem.Residual(input, output)
	if err != nil {
		return nil, solve.ScoreError(err)
	}

	return &Evaluation[I, O]{
		X:        x,
		Residual: residual,
		Snapshot: solve.Snapshot[I, O]{Input: input, Output: output},
	}, nil
}
