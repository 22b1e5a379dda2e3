// Package equation provides the evaluation pipeline for root-finding
// problems: mapping a solver variable to a model input, calling the model,
// and deriving a signed residual that a solver drives to zero.
package equation

// Problem defines a root-finding problem over a one-variable model.
//
// Input maps the solver variable to a model input, and Residual computes the
// signed discrepancy from the resulting input/output pair. Each step may fail
// independently; the pipeline tags failures by stage.
type Problem[I, O any] interface {
	Input(x float64) (I, error)
	Residual(input I, output O) (float64, error)
}
