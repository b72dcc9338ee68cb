package roots

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bracket is an interval that contains a zero. Lo == Hi marks a sample
// where f is exactly zero.
type Bracket struct {
	Lo, Hi float64
}

// ScanBrackets samples f at n uniformly spaced points over [a, b] and
// returns every subinterval across which f changes sign, in order. Samples
// where f is NaN break the chain.
func ScanBrackets(f func(float64) float64, a, b float64, n int) []Bracket {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), a, b)

	var out []Bracket
	prevX, prevF := math.NaN(), math.NaN()
	for _, x := range xs {
		fx := f(x)
		switch {
		case math.IsNaN(fx):
		case fx == 0:
			out = append(out, Bracket{Lo: x, Hi: x})
		case !math.IsNaN(prevF) && prevF != 0 && (prevF > 0) != (fx > 0):
			out = append(out, Bracket{Lo: prevX, Hi: x})
		}
		prevX, prevF = x, fx
	}
	return out
}

// FindAll locates every zero ScanBrackets finds with n samples and refines
// each with Brent. Brackets Brent cannot refine within the budget still
// contribute their best estimate; the first such error is returned.
func FindAll(f func(float64) float64, a, b float64, n int, opts Options) ([]float64, error) {
	var (
		out      []float64
		firstErr error
	)
	for _, br := range ScanBrackets(f, a, b, n) {
		if br.Lo == br.Hi {
			out = append(out, br.Lo)
			continue
		}
		x, err := Brent(f, br.Lo, br.Hi, opts)
		if err != nil {
			if !errors.Is(err, ErrMaxEvaluations) {
				return out, err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		out = append(out, x)
	}
	return out, firstErr
}

// Difference returns x -> f(x) - g(x), whose zeros are the intersections of
// f and g.
func Difference(f, g func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return f(x) - g(x) }
}

// Level returns x -> f(x) - target, whose zeros are where f reaches target.
func Level(f func(float64) float64, target float64) func(float64) float64 {
	return func(x float64) float64 { return f(x) - target }
}
