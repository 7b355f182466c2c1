// Package integration approximates definite integrals of uniformly sampled
// curves with Simpson's 1/3 rule.
//
// ✨ Key features:
//   - Simpson: composite 1/3 rule over an even number of subintervals
//   - CompositeSimpson: 1/3 rule plus a trapezoid over the final subinterval
//     when the subinterval count is odd
//
// ⚙️ Usage:
//
//	import "github.com/flimlab/flimgo/integration"
//
//	area, err := integration.Simpson(samples, 0.5)          // even subintervals
//	area, err := integration.CompositeSimpson(samples, 0.5) // any count ≥ 1
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
//
// Simpson's rule is exact for polynomials up to degree three on each pair of
// subintervals; the trapezoid tail degrades the final subinterval to
// first-order accuracy.
package integration
