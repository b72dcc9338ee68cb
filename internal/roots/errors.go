package roots

import "errors"

var (
	// ErrNotBracketed indicates f(a) and f(b) have the same sign.
	ErrNotBracketed = errors.New("roots: root not bracketed")

	// ErrMaxEvaluations indicates the evaluation budget ran out. The best
	// estimate is returned with it.
	ErrMaxEvaluations = errors.New("roots: maximum evaluations exceeded")

	// ErrNaN indicates f returned NaN.
	ErrNaN = errors.New("roots: function returned NaN")
)
