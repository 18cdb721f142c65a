// Package romberg implements Romberg integration: repeated trapezoidal
// refinement combined with Richardson extrapolation in a triangular table.
//
// What is a Romberg table?
//
//	Row r (refinement level) starts with the trapezoidal estimate on 2^r
//	panels. Each level halves the step h and only evaluates f at the 2^(r−1)
//	newly introduced midpoints; previously sampled points are never
//	re-evaluated:
//
//	  R[r][0] = ½·R[r−1][0] + h·Σ_{k=1..2^(r−1)} f(x1 + (2k−1)·h)
//
//	Column c (extrapolation order) cancels the leading h^{2c} error term:
//
//	  R[r][c] = (4^c·R[r][c−1] − R[r−1][c−1]) / (4^c − 1)
//
//	Column 1 reproduces Simpson's rule and column 2 Boole's rule. The final
//	estimate is R[N−1][N−1].
//
// Contract:
//   - N < 1 is coerced to 1, and the table is always N×N;
//   - an absent integrand yields the zero-filled N×N table;
//   - x1 == x2 yields zeros in every cell.
//
// Complexity: O(2^N) integrand evaluations, O(N²) table memory.
package romberg
