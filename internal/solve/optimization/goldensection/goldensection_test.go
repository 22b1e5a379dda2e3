package goldensection

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/optimization"
)

// parabola scores the model output by its squared distance from a center.
type parabola struct {
	center float64
}

func (p parabola) Input(x float64) (float64, error) { return x, nil }

func (p parabola) Objective(_ float64, output float64) (float64, error) {
	d := output - p.center
	return d * d, nil
}

// cubic scores the output as x^3 - 4x, unimodal on either side of zero.
type cubic struct{}

func (cubic) Input(x float64) (float64, error) { return x, nil }

func (cubic) Objective(_ float64, output float64) (float64, error) {
	return output*output*output - 4*output, nil
}

func identityModel() solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		return x, nil
	})
}

// failAbove models a simulation that diverges past a cutoff.
func failAbove(cutoff float64) solve.Model[float64, float64] {
	return solve.ModelFunc[float64, float64](func(x float64) (float64, error) {
		if x > cutoff {
			return 0, errors.New("diverged")
		}
		return x, nil
	})
}

func TestMinimizeParabola(t *testing.T) {
	sol, err := MinimizeUnobserved(identityModel(), parabola{center: 2}, [2]float64{-10, 10}, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 2, sol.X, 1e-6)
	assert.InDelta(t, 0, sol.Objective, 1e-9)
	assert.Equal(t, sol.X, sol.Snapshot.Input)
}

func TestMinimizeCubic(t *testing.T) {
	sol, err := MinimizeUnobserved(identityModel(), cubic{}, [2]float64{0, 2}, DefaultConfig())
	require.NoError(t, err)

	want := 2 / math.Sqrt(3)
	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, want, sol.X, 1e-6)
}

func TestMaximizeCubic(t *testing.T) {
	sol, err := MaximizeUnobserved(identityModel(), cubic{}, [2]float64{-2, 0}, DefaultConfig())
	require.NoError(t, err)

	want := -2 / math.Sqrt(3)
	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, want, sol.X, 1e-6)
	assert.InDelta(t, 16/(3*math.Sqrt(3)), sol.Objective, 1e-6)
}

func TestMinimizeReversedBracket(t *testing.T) {
	sol, err := MinimizeUnobserved(identityModel(), parabola{center: 2}, [2]float64{10, -10}, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2, sol.X, 1e-6)
}

func TestMinimizeRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XAbsTol = math.NaN()

	_, err := MinimizeUnobserved(identityModel(), parabola{center: 2}, [2]float64{0, 1}, cfg)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestMinimizeMaxItersStatus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIters = 3

	sol, err := MinimizeUnobserved(identityModel(), parabola{center: 2}, [2]float64{-10, 10}, cfg)
	require.NoError(t, err)

	assert.Equal(t, MaxIters, sol.Status)
	assert.Equal(t, 3, sol.Iters)
}

func TestMinimizeObserverStopInLoop(t *testing.T) {
	calls := 0
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		calls++
		if calls == 3 {
			return Stop
		}
		return None
	})

	sol, err := Minimize(identityModel(), parabola{center: 2}, [2]float64{-10, 10}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, StoppedByObserver, sol.Status)
	// One init event plus two loop events.
	assert.Equal(t, 2, sol.Iters)
}

func TestMinimizeObserverStopAtInit(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(*Event[float64, float64]) Action {
		return Stop
	})

	sol, err := Minimize(identityModel(), parabola{center: 2}, [2]float64{0, 1}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, StoppedByObserver, sol.Status)
	assert.Equal(t, 0, sol.Iters)
	// The init event reports the second interior point; a stop keeps the first.
	assert.InDelta(t, 1-invPhi, sol.X, 1e-12)
}

func TestMinimizeAssumeWorseRecoversFromFailures(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Err != nil {
			return AssumeWorse
		}
		return None
	})

	sol, err := Minimize(failAbove(7), parabola{center: 5}, [2]float64{0, 10}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 5, sol.X, 1e-6)
}

func TestMinimizeAssumedPointsExcludedFromBest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIters = 5

	init := true
	observer := ObserverFunc[float64, float64](func(*Event[float64, float64]) Action {
		if init {
			init = false
			return None
		}
		return AssumeWorse
	})

	sol, err := Minimize(identityModel(), parabola{center: 0.4}, [2]float64{0, 1}, cfg, observer)
	require.NoError(t, err)

	// Every loop evaluation was assumed away, so the best is still the
	// closer of the two init points.
	assert.Equal(t, MaxIters, sol.Status)
	assert.InDelta(t, 1-invPhi, sol.X, 1e-12)
}

func TestMinimizeInitBothFail(t *testing.T) {
	failing := solve.ModelFunc[float64, float64](func(float64) (float64, error) {
		return 0, errors.New("diverged")
	})

	var seen *Event[float64, float64]
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		seen = &Event[float64, float64]{X: ev.X, Err: ev.Err, Other: ev.Other}
		return None
	})

	_, err := Minimize(failing, parabola{center: 2}, [2]float64{0, 1}, DefaultConfig(), observer)
	require.Error(t, err)

	var evalErr *solve.EvalError
	require.ErrorAs(t, err, &evalErr)
	require.NotNil(t, seen)
	assert.Error(t, seen.Err)
	assert.True(t, math.IsNaN(seen.Other.Objective))
}

func TestMinimizeInitOneFailUnhandled(t *testing.T) {
	// innerRight of [0, 1] is above the cutoff, so init cannot complete
	// without observer help.
	_, err := MinimizeUnobserved(failAbove(0.5), parabola{center: 0.2}, [2]float64{0, 1}, DefaultConfig())

	var evalErr *solve.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, solve.StageModel, evalErr.Stage)
}

func TestMinimizeInitOneFailAssumeWorse(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Err != nil {
			return AssumeWorse
		}
		return None
	})

	sol, err := Minimize(failAbove(0.5), parabola{center: 0.2}, [2]float64{0, 1}, DefaultConfig(), observer)
	require.NoError(t, err)

	assert.Equal(t, Converged, sol.Status)
	assert.InDelta(t, 0.2, sol.X, 1e-6)
}

func TestMinimizeEventsCarryComparisonPartner(t *testing.T) {
	observer := ObserverFunc[float64, float64](func(ev *Event[float64, float64]) Action {
		if ev.Eval != nil {
			assert.False(t, math.IsNaN(ev.Other.Objective))
			assert.NotEqual(t, ev.X, ev.Other.X)
		}
		return None
	})

	_, err := Minimize(identityModel(), parabola{center: 2}, [2]float64{-10, 10}, DefaultConfig(), observer)
	require.NoError(t, err)
}

var (
	_ optimization.Problem[float64, float64] = parabola{}
	_ optimization.Problem[float64, float64] = cubic{}
)
