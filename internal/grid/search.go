package grid

import "math"

// Clamp returns lo if value < lo, hi if value > hi, and value otherwise.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// FindClosest returns the index and value of the element of sorted closest to
// target. Targets at or beyond either end return that end. The binary search
// stops early at any midpoint within tolerance of target. When the search
// narrows to two neighbours the closer one wins, and a tie goes to the upper
// neighbour.
//
// An empty slice returns (-1, NaN).
func FindClosest(sorted []float64, target, tolerance float64) (int, float64) {
	n := len(sorted)
	if n == 0 {
		return -1, math.NaN()
	}
	if target <= sorted[0] {
		return 0, sorted[0]
	}
	if target >= sorted[n-1] {
		return n - 1, sorted[n-1]
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if math.Abs(sorted[mid]-target) <= tolerance {
			return mid, sorted[mid]
		}
		if target < sorted[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	if target-sorted[lo] >= sorted[hi]-target {
		return hi, sorted[hi]
	}
	return lo, sorted[lo]
}

// Bracket clamps x into [xs[0], xs[n-1]] and returns the index i of the lower
// bracketing point together with the fractional position t of x between
// xs[i] and xs[i+1]. xs must be strictly ascending with at least two points.
func Bracket(xs []float64, x float64) (int, float64) {
	n := len(xs)
	if math.IsNaN(x) {
		return 0, math.NaN()
	}
	x = Clamp(x, xs[0], xs[n-1])

	i := -1

	// Guess under the assumption of uniform spacing.
	dx := (xs[n-1] - xs[0]) / float64(n-1)
	guess := int((x - xs[0]) / dx)
	if guess >= 0 && guess < n-1 && xs[guess] <= x && x <= xs[guess+1] {
		i = guess
	} else {
		lo, hi := 0, n-1
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if x >= xs[mid] {
				lo = mid
			} else {
				hi = mid
			}
		}
		i = lo
	}

	return i, (x - xs[i]) / (xs[i+1] - xs[i])
}

// lerp is the one blend shared by every linear path, so that interpolators
// and direct lookups agree exactly. lerp(a, b, 0) == a and lerp(a, b, 1) == b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// checkAxis validates that xs can serve as an axis.
func checkAxis(xs []float64) error {
	if xs == nil {
		return ErrNilInput
	}
	if len(xs) < 2 {
		return ErrAxisTooShort
	}
	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			return ErrNonMonotonicAxis
		}
	}
	return nil
}

// IsAscending reports whether xs is strictly ascending.
func IsAscending(xs []float64) bool {
	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			return false
		}
	}
	return true
}
