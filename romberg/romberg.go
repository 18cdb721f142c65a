package romberg

import (
	"github.com/katalvlaran/numint/integrand"
	"github.com/katalvlaran/numint/newtoncotes"
)

// Integrate builds the n×n Romberg table for f over [x1, x2].
//
// Algorithm Outline:
//  1. Coerce n < 1 to 1 and allocate the zero table.
//  2. Absent f ⇒ return the zero table unchanged.
//  3. R[0][0] = single trapezoid over [x1, x2].
//  4. For level = 1..n−1: halve h, add the 2^(level−1) new midpoints to get
//     R[level][0], then extrapolate R[level][1..level] from the row above.
//
// Edge cases:
//   - n == 1 returns the 1×1 table holding the single trapezoid estimate.
//   - x1 == x2 returns zeros everywhere (every sampled width is 0).
//
// Complexity: 2^(n−1)+1 integrand evaluations, O(n²) arithmetic and memory.
func Integrate(x1, x2 float64, n int, f integrand.Func) Table {
	if n < 1 {
		n = 1
	}
	table := newTable(n)
	if !f.Present() {
		return table
	}

	table[0][0] = newtoncotes.Trapezoidal(x1, x2, 1, f)

	h := x2 - x1
	points := 1 // 2^(level−1): new midpoints introduced at this level
	for level := 1; level < n; level++ {
		h *= 0.5

		var sum float64
		for k := 1; k <= points; k++ {
			sum += f.Eval(x1 + float64(2*k-1)*h)
		}
		table[level][0] = 0.5*table[level-1][0] + sum*h

		factor := 1.0
		for order := 1; order <= level; order++ {
			factor *= 4
			table[level][order] = (factor*table[level][order-1] - table[level-1][order-1]) / (factor - 1)
		}
		points *= 2
	}

	return table
}

// Estimate returns Integrate(x1, x2, n, f).Estimate().
func Estimate(x1, x2 float64, n int, f integrand.Func) float64 {
	return Integrate(x1, x2, n, f).Estimate()
}
