// Package solve defines the shared capabilities consumed by the bracketing
// solvers: deterministic models, captured snapshots, and staged evaluation
// errors.
package solve

// Model is a deterministic calculation mapping an input to an output.
// Implementations must return the same output for the same input; the
// solvers treat every call as referentially transparent.
type Model[I, O any] interface {
	Call(input I) (O, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc[I, O any] func(input I) (O, error)

// Call invokes the function.
func (f ModelFunc[I, O]) Call(input I) (O, error) { return f(input) }

// Snapshot is a captured input/output pair from one model call. It has no
// lifecycle of its own; it is owned by the evaluation (or best tracker) that
// holds it.
type Snapshot[I, O any] struct {
	Input  I
	Output O
}
