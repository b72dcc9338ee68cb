package quad

import "errors"

var (
	// ErrUnknownMethod indicates a method name with no registered integrator.
	ErrUnknownMethod = errors.New("quad: unknown method")

	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("quad: xs and ys differ in length")

	// ErrTooFewPoints indicates a table with fewer than two points.
	ErrTooFewPoints = errors.New("quad: need at least 2 points")

	// ErrMaxIterations indicates RK45 ran out of steps before reaching the
	// upper bound, or a refining rule did not converge within its budget.
	// The best available estimate is returned with it.
	ErrMaxIterations = errors.New("quad: maximum iterations exceeded")
)
