package optimization

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverforge/bracket/internal/solve"
)

type scoreProblem struct {
	inputErr error
	scoreErr error
}

func (p scoreProblem) Input(x float64) (float64, error) {
	return x, p.inputErr
}

func (p scoreProblem) Objective(_ float64, output float64) (float64, error) {
	if p.scoreErr != nil {
		return 0, p.scoreErr
	}
	return output * output, nil
}

func doubler() solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		return 2 * x, nil
	})
}

func TestEvaluateSuccess(t *testing.T) {
	eval, err := Evaluate(doubler(), scoreProblem{}, 3)
	require.NoError(t, err)

	assert.Equal(t, 3.0, eval.X)
	assert.Equal(t, 36.0, eval.Objective)
	assert.Equal(t, 3.0, eval.Snapshot.Input)
	assert.Equal(t, 6.0, eval.Snapshot.Output)
}

func TestEvaluateClassifiesFailures(t *testing.T) {
	boom := errors.New("boom")
	failingModel := solve.ModelFunc[float64, float64](func(float64) (float64, error) {
		return 0, boom
	})

	tests := []struct {
		name    string
		model   solve.Model[float64, float64]
		problem Problem[float64, float64]
		stage   solve.Stage
	}{
		{"input stage", doubler(), scoreProblem{inputErr: boom}, solve.StageInput},
		{"model stage", failingModel, scoreProblem{}, solve.StageModel},
		{"score stage", doubler(), scoreProblem{scoreErr: boom}, solve.StageScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := Evaluate(tt.model, tt.problem, 1)
			assert.Nil(t, eval)

			var evalErr *solve.EvalError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.stage, evalErr.Stage)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestNegateFlipsObjective(t *testing.T) {
	neg := Negate[float64, float64]{Problem: scoreProblem{}}

	eval, err := Evaluate(doubler(), neg, 3)
	require.NoError(t, err)
	assert.Equal(t, -36.0, eval.Objective)
}

func TestNegatePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	neg := Negate[float64, float64]{Problem: scoreProblem{scoreErr: boom}}

	_, err := Evaluate(doubler(), neg, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
