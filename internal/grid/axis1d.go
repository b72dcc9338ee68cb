package grid

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// LeafKind selects the 1D interpolant used along the innermost axis.
type LeafKind int

const (
	// LeafLinear always builds a piecewise-linear interpolant.
	LeafLinear LeafKind = iota
	// LeafSpline is a natural cubic spline. It is reported by Kind, and
	// chosen by LeafAuto for four or more points.
	LeafSpline
	// LeafAuto builds a spline for four or more points and a linear
	// interpolant otherwise.
	LeafAuto
)

func (k LeafKind) String() string {
	switch k {
	case LeafLinear:
		return "linear"
	case LeafSpline:
		return "spline"
	case LeafAuto:
		return "auto"
	}
	return "unknown"
}

// ParseLeafKind maps "linear", "spline" and "auto" to a LeafKind. The empty
// string is LeafLinear.
func ParseLeafKind(s string) (LeafKind, bool) {
	switch s {
	case "", "linear":
		return LeafLinear, true
	case "auto", "spline":
		return LeafAuto, true
	}
	return LeafLinear, false
}

// Axis1D interpolates values tabulated along one axis.
type Axis1D struct {
	xs, ys []float64
	kind   LeafKind
	spline *interp.NaturalCubic
}

// NewAxis1D builds a natural cubic spline through (xs, ys) when there are at
// least four points, and a piecewise-linear interpolant otherwise.
func NewAxis1D(xs, ys []float64) (*Axis1D, error) {
	return newAxis1D(xs, ys, LeafAuto)
}

// NewLinear1D builds a piecewise-linear interpolant regardless of length.
func NewLinear1D(xs, ys []float64) (*Axis1D, error) {
	return newAxis1D(xs, ys, LeafLinear)
}

func newAxis1D(xs, ys []float64, leaf LeafKind) (*Axis1D, error) {
	if xs == nil || ys == nil {
		return nil, ErrNilInput
	}
	if err := checkAxis(xs); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, ErrDimensionMismatch
	}

	a := &Axis1D{
		xs:   make([]float64, len(xs)),
		ys:   make([]float64, len(ys)),
		kind: LeafLinear,
	}
	copy(a.xs, xs)
	copy(a.ys, ys)

	if leaf == LeafAuto && len(xs) >= 4 {
		a.spline = &interp.NaturalCubic{}
		if err := a.spline.Fit(a.xs, a.ys); err != nil {
			return nil, err
		}
		a.kind = LeafSpline
	}
	return a, nil
}

// Kind reports whether a is linear or a spline.
func (a *Axis1D) Kind() LeafKind { return a.kind }

func (a *Axis1D) Min() float64 { return a.xs[0] }
func (a *Axis1D) Max() float64 { return a.xs[len(a.xs)-1] }

// Value evaluates the interpolant at x clamped into [Min(), Max()]. At or
// beyond an endpoint the stored endpoint value is returned exactly.
func (a *Axis1D) Value(x float64) float64 {
	n := len(a.xs)
	if x <= a.xs[0] {
		return a.ys[0]
	}
	if x >= a.xs[n-1] {
		return a.ys[n-1]
	}
	if a.spline != nil {
		return a.spline.Predict(x)
	}
	i, t := Bracket(a.xs, x)
	return lerp(a.ys[i], a.ys[i+1], t)
}

// Values evaluates the interpolant at every x. If an output slice is given
// the result is written there and returned; only the first is used.
func (a *Axis1D) Values(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = a.Value(x)
	}
	return out[0]
}

// Lookup is the clamped linear lookup of x in the table (xs, ys). xs must be
// ascending and as long as ys. Queries at or beyond an end return that end's
// value.
func Lookup(xs, ys []float64, x float64) float64 {
	n := len(xs)
	switch {
	case n == 0:
		return math.NaN()
	case n == 1 || x <= xs[0]:
		return ys[0]
	case x >= xs[n-1]:
		return ys[n-1]
	}
	i, t := Bracket(xs, x)
	return lerp(ys[i], ys[i+1], t)
}

// LookupAll applies Lookup to every query in qs.
func LookupAll(xs, ys, qs []float64) []float64 {
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = Lookup(xs, ys, q)
	}
	return out
}
