package quad

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	gquad "gonum.org/v1/gonum/integrate/quad"

	"github.com/san-kum/tabula/internal/grid"
)

// Refinement stops here even if MaxIter allows more doublings.
const (
	maxPanels = 1 << 20
	maxNodes  = 1 << 14
)

type trapezoid struct{}

func (trapezoid) Leaf() grid.LeafKind { return grid.LeafLinear }

func (trapezoid) Integrate(f func(float64) float64, lo, hi float64, breaks []float64, _ Options) (float64, error) {
	x := segments(lo, hi, breaks)
	fx := make([]float64, len(x))
	for i, v := range x {
		fx[i] = f(v)
	}
	return integrate.Trapezoidal(x, fx), nil
}

// converged reports whether two successive estimates agree within tol,
// relative to scale, an estimate of the integral of |f|.
func converged(prev, next, scale, tol float64) bool {
	return math.Abs(next-prev) <= tol*scale
}

type simpson struct{}

func (simpson) Leaf() grid.LeafKind { return grid.LeafAuto }

func (simpson) Integrate(f func(float64) float64, lo, hi float64, breaks []float64, opts Options) (float64, error) {
	pts := segments(lo, hi, breaks)
	var sum float64
	for s := 0; s < len(pts)-1; s++ {
		v, err := simpsonSegment(f, pts[s], pts[s+1], opts)
		sum += v
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// simpsonSegment doubles the panel count on [a, b] until two estimates
// agree. Samples of the coarser level are reused at the even indices.
func simpsonSegment(f func(float64) float64, a, b float64, opts Options) (float64, error) {
	n := opts.Panels
	x := floats.Span(make([]float64, 2*n+1), a, b)
	fx := make([]float64, len(x))
	for i, v := range x {
		fx[i] = f(v)
	}
	prev := integrate.Simpsons(x, fx)

	for round := 0; ; round++ {
		if round >= opts.MaxIter || 2*n > maxPanels {
			return prev, ErrMaxIterations
		}
		n *= 2

		nx := floats.Span(make([]float64, 2*n+1), a, b)
		nfx := make([]float64, len(nx))
		for i, v := range nx {
			if i%2 == 0 {
				nfx[i] = fx[i/2]
			} else {
				nfx[i] = f(v)
			}
		}
		x, fx = nx, nfx

		next := integrate.Simpsons(x, fx)
		abs := make([]float64, len(fx))
		for i, v := range fx {
			abs[i] = math.Abs(v)
		}
		if converged(prev, next, integrate.Simpsons(x, abs), opts.RelTol) {
			return next, nil
		}
		prev = next
	}
}

type gaussLegendre struct{}

func (gaussLegendre) Leaf() grid.LeafKind { return grid.LeafAuto }

func (gaussLegendre) Integrate(f func(float64) float64, lo, hi float64, breaks []float64, opts Options) (float64, error) {
	pts := segments(lo, hi, breaks)
	absf := func(x float64) float64 { return math.Abs(f(x)) }

	var sum float64
	for s := 0; s < len(pts)-1; s++ {
		a, b := pts[s], pts[s+1]
		n := opts.Nodes
		prev := gquad.Fixed(f, a, b, n, gquad.Legendre{}, 0)

		for round := 0; ; round++ {
			if round >= opts.MaxIter || 2*n > maxNodes {
				return sum + prev, ErrMaxIterations
			}
			n *= 2
			next := gquad.Fixed(f, a, b, n, gquad.Legendre{}, 0)
			if converged(prev, next, gquad.Fixed(absf, a, b, n, gquad.Legendre{}, 0), opts.RelTol) {
				prev = next
				break
			}
			prev = next
		}
		sum += prev
	}
	return sum, nil
}
