// Package roots finds zeros of scalar functions, typically interpolated
// tables.
//
// Brent combines bisection, the secant method and inverse quadratic
// interpolation and needs a bracketing interval [a, b] with f(a) and f(b) of
// opposite sign. ScanBrackets finds such intervals by sampling, and FindAll
// refines every one of them.
//
// # Example
//
//	f := roots.Level(axis.Value, 0.5)
//	x, err := roots.Brent(f, 0, 10, roots.DefaultOptions())
package roots
