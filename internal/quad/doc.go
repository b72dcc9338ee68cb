// Package quad integrates tabulated 1D functions.
//
// A table (xs, ys) is first turned into an interpolant, piecewise linear for
// Trapezoid and a natural cubic spline (when at least four points exist) for
// the other methods. The interpolant is then integrated segment by segment
// between the table's abscissae, so every rule sees a smooth integrand.
//
// # Methods
//
//   - Trapezoid: exact for the piecewise-linear interpolant.
//   - Simpson: composite Simpson rule on each segment, doubling the panel
//     count until two estimates agree within RelTol.
//   - GaussLegendre: Gauss-Legendre nodes on each segment, doubling the
//     node count the same way.
//   - RK45: adaptive Dormand-Prince stepping of y' = f(x).
//
// # Degenerate input
//
// A table whose abscissae are not strictly ascending integrates to 0 without
// an error. Reversed bounds negate the result.
package quad
