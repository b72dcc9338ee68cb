package grid

import "math"

// Interpolate2DLinear interpolates g[i0][i1] at (v0, v1) without building an
// interpolator. Both coordinates are clamped. The result is identical to a
// Bilinear over the same table.
func Interpolate2DLinear(axis0, axis1 []float64, g [][]float64, v0, v1 float64) (float64, error) {
	if axis0 == nil || axis1 == nil || g == nil {
		return math.NaN(), ErrNilInput
	}
	if len(axis0) < 2 || len(axis1) < 2 {
		return math.NaN(), ErrAxisTooShort
	}
	if len(g) != len(axis0) {
		return math.NaN(), ErrDimensionMismatch
	}
	for _, row := range g {
		if len(row) != len(axis1) {
			return math.NaN(), ErrDimensionMismatch
		}
	}
	return lookup2D(axis0, axis1, g, v0, v1), nil
}

func lookup2D(axis0, axis1 []float64, g [][]float64, v0, v1 float64) float64 {
	n := len(axis0)
	switch {
	case v0 <= axis0[0]:
		return Lookup(axis1, g[0], v1)
	case v0 >= axis0[n-1]:
		return Lookup(axis1, g[n-1], v1)
	}
	i, t := Bracket(axis0, v0)
	return lerp(Lookup(axis1, g[i], v1), Lookup(axis1, g[i+1], v1), t)
}

// Interpolate3DLinear interpolates g[i0][i1][i2] at (v0, v1, v2), blending
// the two pages that bracket v0. Only those pages are checked for shape, so
// a ragged page elsewhere in g goes unreported.
func Interpolate3DLinear(axis0, axis1, axis2 []float64, g [][][]float64, v0, v1, v2 float64) (float64, error) {
	if axis0 == nil || axis1 == nil || axis2 == nil || g == nil {
		return math.NaN(), ErrNilInput
	}
	if len(axis0) < 2 {
		return math.NaN(), ErrAxisTooShort
	}
	if len(g) != len(axis0) {
		return math.NaN(), ErrDimensionMismatch
	}

	n := len(axis0)
	switch {
	case v0 <= axis0[0]:
		return Interpolate2DLinear(axis1, axis2, g[0], v1, v2)
	case v0 >= axis0[n-1]:
		return Interpolate2DLinear(axis1, axis2, g[n-1], v1, v2)
	}

	i, t := Bracket(axis0, v0)
	lo, err := Interpolate2DLinear(axis1, axis2, g[i], v1, v2)
	if err != nil {
		return math.NaN(), err
	}
	hi, err := Interpolate2DLinear(axis1, axis2, g[i+1], v1, v2)
	if err != nil {
		return math.NaN(), err
	}
	return lerp(lo, hi, t), nil
}
