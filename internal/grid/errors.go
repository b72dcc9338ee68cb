package grid

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrDimensionMismatch indicates an axis length differs from the grid extent.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch between axis and data")

	// ErrAxisTooShort indicates an axis with fewer than two points.
	ErrAxisTooShort = errors.New("grid: too few points on axis (need at least 2)")

	// ErrNonMonotonicAxis indicates an axis that is not strictly ascending.
	ErrNonMonotonicAxis = errors.New("grid: axis values not strictly ascending")

	// ErrNilInput indicates a missing axis or data slice.
	ErrNilInput = errors.New("grid: nil axis or data")

	// ErrArity indicates a coordinate count that differs from the rank.
	ErrArity = errors.New("grid: wrong number of coordinates")
)

// ConstructionError records where in an interpolator tree construction failed.
// Depth is the axis index and Index the position along the enclosing axes.
type ConstructionError struct {
	Depth   int
	Index   []int
	Wrapped error
}

func (e *ConstructionError) Error() string {
	if len(e.Index) == 0 {
		return fmt.Sprintf("axis %d: %v", e.Depth, e.Wrapped)
	}
	return fmt.Sprintf("axis %d at %v: %v", e.Depth, e.Index, e.Wrapped)
}

func (e *ConstructionError) Unwrap() error {
	return e.Wrapped
}

func wrapAt(depth int, index []int, err error) error {
	var ce *ConstructionError
	if errors.As(err, &ce) {
		return err
	}
	idx := make([]int, len(index))
	copy(idx, index)
	return &ConstructionError{Depth: depth, Index: idx, Wrapped: err}
}
