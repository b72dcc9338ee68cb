package curves

import "errors"

var (
	ErrLengthMismatch = errors.New("curves: xs, y1 and y2 differ in length")
	ErrTooFewPoints   = errors.New("curves: need at least 2 points")
	ErrNonMonotonic   = errors.New("curves: xs not strictly ascending")
)
