package goldensection

// invPhi is the inverse golden ratio 1/φ = φ − 1.
const invPhi = 0.6180339887498949

// goldenBracket maintains the outer interval [left, right] and two interior
// points positioned by the golden ratio, so that one interior point survives
// every shrink and its evaluation is reused.
//
// Invariant: left < innerLeft < innerRight < right.
type goldenBracket struct {
	left, right           float64
	innerLeft, innerRight float64
}

// newGoldenBracket places the interior points inside the bounds, swapping
// reversed bounds.
func newGoldenBracket(bracket [2]float64) goldenBracket {
	left, right := bracket[0], bracket[1]
	if left > right {
		left, right = right, left
	}
	width := right - left
	return goldenBracket{
		left:       left,
		right:      right,
		innerLeft:  left + (1-invPhi)*width,
		innerRight: left + invPhi*width,
	}
}

func (b *goldenBracket) width() float64 { return b.right - b.left }

// shrinkRight discards the outer right bound: the interval becomes
// [left, innerRight], the old innerLeft becomes the new innerRight, and a
// new innerLeft is placed by the golden ratio.
func (b *goldenBracket) shrinkRight() {
	b.right = b.innerRight
	b.innerRight = b.innerLeft
	b.innerLeft = b.left + (1-invPhi)*b.width()
}

// shrinkLeft discards the outer left bound: the interval becomes
// [innerLeft, right], the old innerRight becomes the new innerLeft, and a
// new innerRight is placed by the golden ratio.
func (b *goldenBracket) shrinkLeft() {
	b.left = b.innerLeft
	b.innerLeft = b.innerRight
	b.innerRight = b.left + invPhi*b.width()
}

// nextInnerLeft returns the evaluation point a shrinkRight step would
// introduce, without mutating.
func (b *goldenBracket) nextInnerLeft() float64 {
	newWidth := b.innerRight - b.left
	return b.left + (1-invPhi)*newWidth
}

// nextInnerRight returns the evaluation point a shrinkLeft step would
// introduce, without mutating.
func (b *goldenBracket) nextInnerRight() float64 {
	newLeft := b.innerLeft
	return newLeft + invPhi*(b.right-newLeft)
}
