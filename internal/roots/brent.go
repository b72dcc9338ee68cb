package roots

import (
	"math"
)

const machEps = 2.220446049250313e-16

// Options controls convergence. The search stops when the bracket is
// narrower than AbsTol + RelTol*|x| or when |f(x)| <= FTol.
type Options struct {
	AbsTol  float64
	RelTol  float64
	FTol    float64
	MaxEval int
}

func DefaultOptions() Options {
	return Options{
		AbsTol:  1e-12,
		RelTol:  1e-10,
		FTol:    0,
		MaxEval: 100,
	}
}

// Brent finds a zero of f in [a, b]. f(a) and f(b) must differ in sign,
// otherwise ErrNotBracketed is returned. An endpoint where f is exactly zero
// is returned as is.
func Brent(f func(float64) float64, a, b float64, opts Options) (float64, error) {
	if opts.MaxEval <= 0 {
		opts.MaxEval = DefaultOptions().MaxEval
	}

	fa, fb := f(a), f(b)
	evals := 2
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return math.NaN(), ErrNaN
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return math.NaN(), ErrNotBracketed
	}

	c, fc := b, fb
	var d, e float64

	for {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEps*math.Abs(b) + 0.5*(opts.AbsTol+opts.RelTol*math.Abs(b))
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol || fb == 0 || math.Abs(fb) <= opts.FTol {
			return b, nil
		}
		if evals >= opts.MaxEval {
			return b, ErrMaxEvaluations
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// Secant.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			if 2*p < math.Min(3*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb = f(b)
		evals++
		if math.IsNaN(fb) {
			return b, ErrNaN
		}
	}
}
