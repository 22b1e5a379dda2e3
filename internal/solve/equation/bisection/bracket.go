package bisection

import "math"

// Sign classifies a residual for bracket bookkeeping.
type Sign int

const (
	// Positive covers residuals greater than or equal to zero.
	Positive Sign = iota
	// Negative covers residuals less than zero.
	Negative
)

// String returns the sign name.
func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// SignOf returns the sign of a residual value.
func SignOf(v float64) Sign {
	if v >= 0 {
		return Positive
	}
	return Negative
}

// bounds holds ordered finite endpoints prior to sign validation.
type bounds struct {
	left, right float64
}

// newBounds validates and orders the bracket endpoints.
func newBounds(bracket [2]float64) (bounds, error) {
	left, right := bracket[0], bracket[1]

	if !isFinite(left) || !isFinite(right) {
		return bounds{}, &BracketError{Reason: "non-finite endpoint"}
	}
	if left == right {
		return bounds{}, &BracketError{Reason: "zero width"}
	}
	if left > right {
		left, right = right, left
	}
	return bounds{left: left, right: right}, nil
}

// Bracket is a search interval whose endpoint residuals have opposite signs,
// guaranteeing it contains a root. It is narrowed once per iteration by
// replacing whichever bound shares the midpoint's sign.
type Bracket struct {
	left, right         float64
	leftSign, rightSign Sign
}

func newBracket(b bounds, leftSign, rightSign Sign) (*Bracket, bool) {
	if leftSign == rightSign {
		return nil, false
	}
	return &Bracket{
		left:      b.left,
		right:     b.right,
		leftSign:  leftSign,
		rightSign: rightSign,
	}, true
}

// Bounds returns the current left and right endpoints.
func (b *Bracket) Bounds() (left, right float64) { return b.left, b.right }

// Midpoint returns the midpoint of the bracket.
func (b *Bracket) Midpoint() float64 { return 0.5 * (b.left + b.right) }

// Width returns the bracket width.
func (b *Bracket) Width() float64 { return b.right - b.left }

// xConverged reports whether the bracket width satisfies the x tolerances.
func (b *Bracket) xConverged(xAbsTol, xRelTol float64) bool {
	return b.Width() <= xAbsTol+xRelTol*math.Abs(b.Midpoint())
}

// shrink replaces the bound that shares the sign of the new point,
// preserving the bracketing invariant.
func (b *Bracket) shrink(x float64, sign Sign) {
	if b.leftSign == sign {
		b.left = x
	} else {
		b.right = x
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
