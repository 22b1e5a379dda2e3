package goldensection

import (
	"math"

	"github.com/solverforge/bracket/internal/solve"
)

// shrinkSide selects which outer bound the next step discards.
type shrinkSide int

const (
	// shrinkLeftSide discards the outer left bound; the new evaluation
	// becomes the interior right point.
	shrinkLeftSide shrinkSide = iota
	// shrinkRightSide discards the outer right bound; the new evaluation
	// becomes the interior left point.
	shrinkRightSide
)

// state owns the search bracket, the two interior points, and the best real
// evaluation for the duration of one search.
type state[I, O any] struct {
	bracket      goldenBracket
	left, right  Point
	bestPoint    Point
	bestSnapshot solve.Snapshot[I, O]
}

// nextStep decides which direction to shrink and where to evaluate next.
// The worse-scoring side's outer bound is discarded.
func (s *state[I, O]) nextStep(transform func(float64) float64) (shrinkSide, float64) {
	if transform(s.left.Objective) <= transform(s.right.Objective) {
		return shrinkRightSide, s.bracket.nextInnerLeft()
	}
	return shrinkLeftSide, s.bracket.nextInnerRight()
}

// apply shrinks the bracket and installs the new point, reusing the
// surviving interior point on the opposite side.
func (s *state[I, O]) apply(side shrinkSide, p Point) {
	switch side {
	case shrinkRightSide:
		s.bracket.shrinkRight()
		s.right = s.left
		s.left = p
	case shrinkLeftSide:
		s.bracket.shrinkLeft()
		s.left = s.right
		s.right = p
	}
}

// maybeUpdateBest records p as best when its transformed score strictly
// improves. Call only with real evaluations; assumed points must not reach
// the best tracker.
func (s *state[I, O]) maybeUpdateBest(p Point, transform func(float64) float64, snap solve.Snapshot[I, O]) {
	if transform(p.Objective) < transform(s.bestPoint.Objective) {
		s.bestPoint = p
		s.bestSnapshot = snap
	}
}

// converged reports whether the interior-point gap satisfies the x
// tolerances.
func (s *state[I, O]) converged(cfg Config) bool {
	gap := math.Abs(s.bracket.innerRight - s.bracket.innerLeft)
	mid := 0.5 * (s.bracket.innerLeft + s.bracket.innerRight)
	return gap <= cfg.XAbsTol+cfg.XRelTol*math.Abs(mid)
}

// solution builds the terminal result from the best point.
func (s *state[I, O]) solution(status Status, iters int) *Solution[I, O] {
	return &Solution[I, O]{
		Status:    status,
		X:         s.bestPoint.X,
		Objective: s.bestPoint.Objective,
		Snapshot:  s.bestSnapshot,
		Iters:     iters,
	}
}
