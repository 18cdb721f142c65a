package newtoncotes

import "github.com/katalvlaran/numint/integrand"

// Simpson integrates f over [x1, x2] with the composite Simpson rule on n
// equal panels.
//
// For panel [x_i, x_{i+1}] with midpoint m it accumulates
// (x_{i+1}−x_i)/6·(f(x_i) + 4·f(m) + f(x_{i+1})), tripling the evaluation
// cost of Trapezoidal for the same n. Edge cases match Trapezoidal.
//
// Complexity: O(n) time, 3n integrand evaluations.
func Simpson(x1, x2 float64, n int, f integrand.Func, opts ...Option) float64 {
	return composite(x1, x2, n, f, simpsonPanel, gatherOptions(opts...))
}
