package goldensection

import (
	"math"

	"github.com/solverforge/bracket/internal/solve"
	"github.com/solverforge/bracket/internal/solve/optimization"
)

// initState evaluates both interior points and builds the initial search
// state. A non-nil Solution means the observer stopped the search during
// initialization.
//
// Only the second point (or a failure) triggers an observer event, since a
// valid comparison partner is needed first. If both evaluations fail, one
// failure event is emitted with a synthetic partner so the observer is
// aware, then the error is returned: recovery is impossible because
// AssumeWorse needs one real point and Stop needs a snapshot.
func initState[I, O any](
	model solve.Model[I, O],
	problem optimization.Problem[I, O],
	bracket goldenBracket,
	observer Observer[I, O],
	transform func(float64) float64,
) (*state[I, O], *Solution[I, O], error) {
	leftEval, leftErr := optimization.Evaluate(model, problem, bracket.innerLeft)
	rightEval, rightErr := optimization.Evaluate(model, problem, bracket.innerRight)

	if leftErr != nil && rightErr != nil {
		observer.Observe(&Event[I, O]{
			X:     bracket.innerLeft,
			Err:   leftErr,
			Other: Point{X: bracket.innerRight, Objective: math.NaN()},
		})
		return nil, nil, leftErr
	}

	if leftErr == nil && rightErr == nil {
		leftPt := pointOf(leftEval)
		rightPt := pointOf(rightEval)

		action := observer.Observe(&Event[I, O]{
			X:     rightPt.X,
			Eval:  rightEval,
			Other: leftPt,
		})
		switch action {
		case Stop:
			return nil, &Solution[I, O]{
				Status:    StoppedByObserver,
				X:         leftPt.X,
				Objective: leftPt.Objective,
				Snapshot:  leftEval.Snapshot,
				Iters:     0,
			}, nil
		case AssumeWorse:
			worse := Point{X: rightPt.X, Objective: transform(math.Inf(1))}
			return &state[I, O]{
				bracket:      bracket,
				left:         leftPt,
				right:        worse,
				bestPoint:    leftPt,
				bestSnapshot: leftEval.Snapshot,
			}, nil, nil
		default:
			bestPt, bestSnap := leftPt, leftEval.Snapshot
			if transform(rightPt.Objective) < transform(leftPt.Objective) {
				bestPt, bestSnap = rightPt, rightEval.Snapshot
			}
			return &state[I, O]{
				bracket:      bracket,
				left:         leftPt,
				right:        rightPt,
				bestPoint:    bestPt,
				bestSnapshot: bestSnap,
			}, nil, nil
		}
	}

	// Exactly one evaluation failed.
	okEval, failedX, evalErr := leftEval, bracket.innerRight, rightErr
	if leftErr != nil {
		okEval, failedX, evalErr = rightEval, bracket.innerLeft, leftErr
	}
	okPt := pointOf(okEval)

	action := observer.Observe(&Event[I, O]{
		X:     failedX,
		Err:   evalErr,
		Other: okPt,
	})
	switch action {
	case Stop:
		return nil, &Solution[I, O]{
			Status:    StoppedByObserver,
			X:         okPt.X,
			Objective: okPt.Objective,
			Snapshot:  okEval.Snapshot,
			Iters:     0,
		}, nil
	case AssumeWorse:
		worse := Point{X: failedX, Objective: transform(math.Inf(1))}
		leftPt, rightPt := okPt, worse
		if worse.X < okPt.X {
			leftPt, rightPt = worse, okPt
		}
		return &state[I, O]{
			bracket:      bracket,
			left:         leftPt,
			right:        rightPt,
			bestPoint:    okPt,
			bestSnapshot: okEval.Snapshot,
		}, nil, nil
	default:
		return nil, nil, evalErr
	}
}
