// Package chart generates plot data from interpolators: sampled curves,
// curve families and whole-grid sweeps.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/tabula/internal/grid"
)

var (
	ErrTooFewSamples = errors.New("chart: need at least 2 samples")
	ErrRank          = errors.New("chart: unsupported rank")
	ErrFixed         = errors.New("chart: wrong number of fixed coordinates")
)

// Series is one labelled curve.
type Series struct {
	Label string    `json:"label"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Sample evaluates f at n uniformly spaced points over [lo, hi].
func Sample(label string, f func(float64) float64, lo, hi float64, n int) (Series, error) {
	if n < 2 {
		return Series{}, ErrTooFewSamples
	}
	s := Series{
		Label: label,
		X:     floats.Span(make([]float64, n), lo, hi),
		Y:     make([]float64, n),
	}
	for i, x := range s.X {
		s.Y[i] = f(x)
	}
	return s, nil
}

// Slice samples m along one axis over its full range. at holds a coordinate
// for every axis; the entry for the sampled axis is ignored. A nil at fixes
// every other axis at its minimum.
func Slice(m *grid.Multilinear, at []float64, axis, n int) (Series, error) {
	rank := m.Rank()
	if axis < 0 || axis >= rank {
		return Series{}, fmt.Errorf("%w: axis %d of %d", ErrRank, axis, rank)
	}
	lo, hi := m.Bounds()
	if at == nil {
		at = lo
	}
	if len(at) != rank {
		return Series{}, fmt.Errorf("%w: have %d, want %d", ErrFixed, len(at), rank)
	}

	if n < 2 {
		return Series{}, ErrTooFewSamples
	}

	xs := floats.Span(make([]float64, n), lo[axis], hi[axis])
	points := make([][]float64, n)
	for i, x := range xs {
		p := make([]float64, rank)
		copy(p, at)
		p[axis] = x
		points[i] = p
	}
	ys, err := m.EvalAll(points)
	if err != nil {
		return Series{}, err
	}
	return Series{X: xs, Y: ys}, nil
}

// Family samples the innermost axis of m once per grid point of the
// second-innermost axis, such as one drag polar per Mach number. outer fixes
// the remaining rank-2 outer axes.
func Family(m *grid.Multilinear, outer []float64, n int) ([]Series, error) {
	rank := m.Rank()
	if rank < 2 {
		return nil, fmt.Errorf("%w: family needs rank 2 or more, have %d", ErrRank, rank)
	}
	if len(outer) != rank-2 {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrFixed, len(outer), rank-2)
	}

	at := make([]float64, rank)
	copy(at, outer)
	members := m.Axes()[rank-2]

	out := make([]Series, 0, len(members))
	for _, v := range members {
		at[rank-2] = v
		s, err := Slice(m, at, rank-1, n)
		if err != nil {
			return nil, err
		}
		s.Label = fmt.Sprintf("%g", v)
		out = append(out, s)
	}
	return out, nil
}
