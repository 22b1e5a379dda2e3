package bisection

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/equation"
)

// offsetProblem feeds x straight to the model and measures the output
// against a target value.
type offsetProblem struct {
	target float64
}

func (p offsetProblem) Input(x float64) (float64, error) { return x, nil }

func (p offsetProblem) Residual(_ float64, output float64) (float64, error) {
	return output - p.target, nil
}

func identity() solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		return x, nil
	})
}

func square() solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		return x * x, nil
	})
}

// thresholdModel fails for inputs beyond the cutoff, standing in for a
// simulation that diverges in part of the search range.
func thresholdModel(cutoff float64) solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		if x > cutoff {
			return 0, errors.New("diverged")
		}
		return x, nil
	})
}

func TestSolveFindsSquareRoot(t *testing.T) {
	sol, err := SolveUnobserved(square(), offsetProblem{target: 9}, [2]float64{0, 10}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 3, sol.X, 1e-9)
	assert.InDelta(t, 0, sol.Residual, 1e-9)
	assert.Equal(t, sol.X, sol.Snapshot.Input)
	assert.InDelta(t, 9, sol.Snapshot.Output, 1e-8)
}

func TestSolveLinearRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XAbsTol = 1e-12
	cfg.XRelTol = 1e-12
	cfg.ResidualTol = 1e-12

	sol, err := SolveUnobserved(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, cfg)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 3, sol.X, 1e-9)
	assert.LessOrEqual(t, math.Abs(sol.Residual), 1e-9)
}

func TestSolveReversedBracket(t *testing.T) {
	sol, err := SolveUnobserved(identity(), offsetProblem{target: 3}, [2]float64{10, 0}, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 3, sol.X, 1e-9)
}

func TestSolveNoBracket(t *testing.T) {
	_, err := SolveUnobserved(identity(), offsetProblem{target: -5}, [2]float64{0, 10}, DefaultConfig())

	var noBracket *NoBracketError
	require.ErrorAs(t, err, &noBracket)
	assert.Equal(t, 0.0, noBracket.Left)
	assert.Equal(t, 10.0, noBracket.Right)
	assert.Equal(t, 5.0, noBracket.LeftResidual)
	assert.Equal(t, 15.0, noBracket.RightResidual)
}

func TestSolveRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIters = -1

	_, err := SolveUnobserved(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSolveZeroMaxItersReturnsBestEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIters = 0
	cfg.ResidualTol = 0

	sol, err := SolveUnobserved(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, cfg)
	require.NoError(t, err)

	assert.Equal(t, MaxIters, sol.Status)
	assert.Equal(t, 0, sol.Iters)
	// f(0)=-3 beats f(10)=7.
	assert.Equal(t, 0.0, sol.X)
}

func TestSolveObserverStop(t *testing.T) {
	var events []EventKind
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		events = append(events, ev.Kind)
		if ev.Kind == Midpoint {
			return Stop
		}
		return None
	})

	sol, err := Solve(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, StoppedByObserver, sol.Status)
	assert.Equal(t, 1, sol.Iters)
	assert.Equal(t, []EventKind{LeftEndpoint, RightEndpoint, Midpoint}, events)
}

func TestSolveObserverStopAtEndpoint(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Kind == RightEndpoint {
			return Stop
		}
		return None
	})

	sol, err := Solve(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, StoppedByObserver, sol.Status)
	assert.Equal(t, 0, sol.Iters)
	assert.Equal(t, 0.0, sol.X)
}

func TestSolveEventShape(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		switch ev.Kind {
		case LeftEndpoint, RightEndpoint:
			assert.Nil(t, ev.Bracket)
		case Midpoint:
			require.NotNil(t, ev.Bracket)
			left, right := ev.Bracket.Bounds()
			assert.LessOrEqual(t, left, ev.X)
			assert.LessOrEqual(t, ev.X, right)
		}
		require.NotNil(t, ev.Eval)
		assert.NoError(t, ev.Err)
		return None
	})

	_, err := Solve(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig(), observer)
	require.NoError(t, err)
}

func TestSolveAssumeSignRecoversFromFailures(t *testing.T) {
	// The model diverges past x=4; the root at x=3 is still reachable when the
	// observer treats divergence as a positive residual.
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Err != nil {
			return AssumePositive
		}
		return None
	})

	sol, err := Solve(thresholdModel(4), offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 3, sol.X, 1e-9)
}

func TestSolveAssumedEvaluationsExcludedFromBest(t *testing.T) {
	// Force an assumed sign on the right endpoint, which evaluates closer to
	// the target than the left. The assumed evaluation must not become best.
	cfg := DefaultConfig()
	cfg.MaxIters = 0
	cfg.ResidualTol = 0

	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Kind == RightEndpoint {
			return AssumePositive
		}
		return None
	})

	sol, err := Solve(identity(), offsetProblem{target: 9}, [2]float64{0, 10}, cfg, observer)
	require.NoError(t, err)

	// Only the left endpoint counts, even though f(10)=1 is closer than f(0)=-9.
	assert.Equal(t, 0.0, sol.X)
	assert.Equal(t, -9.0, sol.Residual)
}

func TestSolveNoSuccessfulEvaluation(t *testing.T) {
	failing := solve.ModelFunc[float64, float64](func(float64) (float64, error) {
		return 0, errors.New("diverged")
	})
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		switch ev.Kind {
		case LeftEndpoint:
			return AssumeNegative
		case RightEndpoint:
			return AssumePositive
		default:
			return Stop
		}
	})

	_, err := Solve(failing, offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig(), observer)
	assert.ErrorIs(t, err, ErrNoSuccessfulEvaluation)
}

func TestSolveNoBracketAssumedResidualIsNaN(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Kind == LeftEndpoint {
			return AssumePositive
		}
		return None
	})

	_, err := Solve(identity(), offsetProblem{target: 3}, [2]float64{5, 10}, DefaultConfig(), observer)

	var noBracket *NoBracketError
	require.ErrorAs(t, err, &noBracket)
	assert.True(t, math.IsNaN(noBracket.LeftResidual))
	assert.Equal(t, 7.0, noBracket.RightResidual)
}

func TestSolveXToleranceConvergence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResidualTol = 0
	cfg.XAbsTol = 1e-6
	cfg.XRelTol = 0

	sol, err := SolveUnobserved(identity(), offsetProblem{target: 3}, [2]float64{0, 10}, cfg)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 3, sol.X, 1e-6)
	// Halving a width-10 bracket below 1e-6 takes 24 steps.
	assert.Equal(t, 24, sol.Iters)
}

func TestSolvePropagatesUnhandledFailure(t *testing.T) {
	_, err := SolveUnobserved(thresholdModel(4), offsetProblem{target: 3}, [2]float64{0, 10}, DefaultConfig())

	var evalErr *solve.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, solve.StageModel, evalErr.Stage)
}

func TestSolveResidualConvergenceAtEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResidualTol = 0.5

	sol, err := SolveUnobserved(identity(), offsetProblem{target: 0.25}, [2]float64{0, 10}, cfg)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.Equal(t, 0, sol.Iters)
	assert.Equal(t, 0.0, sol.X)
}

var _ equation.Problem[float64, float64] = offsetProblem{}
