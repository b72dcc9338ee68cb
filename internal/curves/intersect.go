// Package curves finds where two curves sampled on a shared abscissa cross.
package curves

import (
	"gonum.org/v1/gonum/interp"

	"github.com/san-kum/tabula/internal/grid"
	"github.com/san-kum/tabula/internal/roots"
)

// Point is an intersection location.
type Point struct {
	X, Y float64
}

func check(xs, y1, y2 []float64) error {
	if len(xs) != len(y1) || len(xs) != len(y2) {
		return ErrLengthMismatch
	}
	if len(xs) < 2 {
		return ErrTooFewPoints
	}
	if !grid.IsAscending(xs) {
		return ErrNonMonotonic
	}
	return nil
}

// Intersections returns the crossings of y1 and y2 in ascending x. A sample
// where the curves are equal is reported as (xs[i], y1[i]). Between samples
// i and i+1 where y1-y2 changes sign, x is the zero of the linear
// interpolant of the difference and y averages the four bracketing samples.
func Intersections(xs, y1, y2 []float64) ([]Point, error) {
	if err := check(xs, y1, y2); err != nil {
		return nil, err
	}

	var out []Point
	for i := range xs {
		d0 := y1[i] - y2[i]
		if d0 == 0 {
			out = append(out, Point{X: xs[i], Y: y1[i]})
			continue
		}
		if i == len(xs)-1 {
			break
		}
		d1 := y1[i+1] - y2[i+1]
		if d1 == 0 || (d0 > 0) == (d1 > 0) {
			continue
		}
		x := xs[i] - d0*(xs[i+1]-xs[i])/(d1-d0)
		y := (y1[i]+y1[i+1])/4 + (y2[i]+y2[i+1])/4
		out = append(out, Point{X: x, Y: y})
	}
	return out, nil
}

// Refine locates the same crossings as Intersections, solving for each with
// Brent on the difference of the two piecewise-linear interpolants. Y is the
// first curve's interpolated value at X.
func Refine(xs, y1, y2 []float64, opts roots.Options) ([]Point, error) {
	if err := check(xs, y1, y2); err != nil {
		return nil, err
	}

	var c1, c2 interp.PiecewiseLinear
	if err := c1.Fit(xs, y1); err != nil {
		return nil, err
	}
	if err := c2.Fit(xs, y2); err != nil {
		return nil, err
	}
	diff := roots.Difference(c1.Predict, c2.Predict)

	var out []Point
	for i := range xs {
		d0 := y1[i] - y2[i]
		if d0 == 0 {
			out = append(out, Point{X: xs[i], Y: y1[i]})
			continue
		}
		if i == len(xs)-1 {
			break
		}
		d1 := y1[i+1] - y2[i+1]
		if d1 == 0 || (d0 > 0) == (d1 > 0) {
			continue
		}
		x, err := roots.Brent(diff, xs[i], xs[i+1], opts)
		if err != nil {
			return out, err
		}
		out = append(out, Point{X: x, Y: c1.Predict(x)})
	}
	return out, nil
}
