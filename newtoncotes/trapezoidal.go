package newtoncotes

import "github.com/katalvlaran/numint/integrand"

// Trapezoidal integrates f over [x1, x2] with the composite trapezoidal rule
// on n equal panels.
//
// For panel [x_i, x_{i+1}] it accumulates 0.5·(x_{i+1}−x_i)·(f(x_i)+f(x_{i+1})).
//
// Edge cases:
//   - absent f ⇒ 0;
//   - n < 1 ⇒ n = 1 (single trapezoid over the whole interval);
//   - x1 == x2 ⇒ 0; x1 > x2 ⇒ negated integral.
//
// Complexity: O(n) time, 2n integrand evaluations.
func Trapezoidal(x1, x2 float64, n int, f integrand.Func, opts ...Option) float64 {
	return composite(x1, x2, n, f, trapezoidPanel, gatherOptions(opts...))
}
