package chart

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/tabula/internal/grid"
)

// Extremum holds the smallest and largest values found by Sweep and where
// they occur.
type Extremum struct {
	Min, Max       float64
	ArgMin, ArgMax []float64
	Evaluations    int
}

type sweeper struct {
	m      *grid.Multilinear
	ranges [][]float64
	best   Extremum
}

// Sweep evaluates m on an n-point uniform grid over every axis and reports
// the extrema. The cost is n^rank evaluations.
func Sweep(m *grid.Multilinear, n int) (Extremum, error) {
	if n < 2 {
		return Extremum{}, ErrTooFewSamples
	}
	lo, hi := m.Bounds()
	s := &sweeper{
		m:      m,
		ranges: make([][]float64, len(lo)),
		best:   Extremum{Min: math.Inf(1), Max: math.Inf(-1)},
	}
	for d := range lo {
		s.ranges[d] = floats.Span(make([]float64, n), lo[d], hi[d])
	}

	s.searchRecursive(0, make([]float64, len(lo)))
	return s.best, nil
}

func (s *sweeper) searchRecursive(depth int, current []float64) {
	if depth == len(s.ranges) {
		v := s.m.MustEval(current...)
		s.best.Evaluations++
		if v < s.best.Min {
			s.best.Min = v
			s.best.ArgMin = append(s.best.ArgMin[:0], current...)
		}
		if v > s.best.Max {
			s.best.Max = v
			s.best.ArgMax = append(s.best.ArgMax[:0], current...)
		}
		return
	}

	for _, val := range s.ranges[depth] {
		current[depth] = val
		s.searchRecursive(depth+1, current)
	}
}
