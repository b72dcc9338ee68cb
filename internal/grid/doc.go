// Package grid provides structured-grid interpolation over tabulated data.
//
// The package is built around one recursive type:
//
//   - [Axis]: strictly increasing coordinate values for one dimension
//   - [Grid]: dense row-major values, one dimension per axis
//   - [Axis1D]: 1D interpolant (piecewise linear, or natural cubic spline)
//   - [Multilinear]: n-D interpolator built from len(axis0) children of rank n-1
//   - [Bilinear], [Trilinear], [Quadrilinear]: fixed-arity wrappers
//
// Evaluation with one coordinate per axis never fails: every coordinate is
// clamped to its axis range before it is used. Construction fails with
// [ErrDimensionMismatch], [ErrAxisTooShort] or [ErrNonMonotonicAxis].
//
// # Example
//
//	bi, err := grid.NewBilinear(mach, alpha, cd)
//	if err != nil {
//	    return err
//	}
//	v := bi.Value(0.78, 2.5)
//
// # Direct lookups
//
// [Interpolate2DLinear] and [Interpolate3DLinear] evaluate a single point
// without building an interpolator. They return the same values as the
// interpolators built with linear leaves.
//
// # Thread Safety
//
// Interpolators are immutable once constructed and may be shared between
// goroutines without locking.
package grid
