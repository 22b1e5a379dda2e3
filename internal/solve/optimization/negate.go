package optimization

// Negate wraps a problem and flips the sign of its objective. Maximizing a
// problem is minimizing its negation, so one search algorithm serves both
// directions.
type Negate[I, O any] struct {
	Problem Problem[I, O]
}

// Input delegates to the wrapped problem.
func (n Negate[I, O]) Input(x float64) (I, error) { return n.Problem.Input(x) }

// Objective returns the wrapped objective with its sign flipped.
func (n Negate[I, O]) Objective(input I, output O) (float64, error) {
	v, err := n.Problem.Objective(input, output)
	if err != nil {
		return 0, err
	}
	return -v, nil
}
