package goldensection

import "github.com/solverforge/bracket/internal/solve/optimization"

// Point pairs an x value with its objective.
type Point struct {
	X         float64
	Objective float64
}

func pointOf[I, O any](eval *optimization.Evaluation[I, O]) Point {
	return Point{X: eval.X, Objective: eval.Objective}
}
