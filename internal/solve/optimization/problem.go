// Package optimization provides the evaluation pipeline for problems that
// score a model with a scalar objective to be minimized or maximized.
package optimization

// Problem defines an optimization problem over a one-variable model.
//
// Input maps the solver variable to a model input, and Objective computes
// the scalar score from the resulting input/output pair. Each step may fail
// independently; the pipeline tags failures by stage.
type Problem[I, O any] interface {
	Input(x float64) (I, error)
	Objective(input I, output O) (float64, error)
}
