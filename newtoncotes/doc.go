// Package newtoncotes implements the composite closed Newton–Cotes rules
// used by numint: the trapezoidal rule and Simpson's rule.
//
// 🚀 What is a composite rule?
//
//	The interval [x1, x2] is cut into N equal panels of width w = (x2−x1)/N.
//	A low-order rule is applied on every panel and the panel results are
//	summed left to right:
//
//	  Trapezoidal:  (b−a)/2 · (f(a) + f(b))                 2 evaluations/panel
//	  Simpson:      (b−a)/6 · (f(a) + 4·f((a+b)/2) + f(b))  3 evaluations/panel
//
// ✨ Contract shared by both rules:
//   - an absent integrand yields 0 (no error);
//   - N < 1 is coerced to N = 1;
//   - x1 == x2 yields 0 and x1 > x2 flips the sign, both through the
//     panel width alone;
//   - NaN/±Inf bounds or integrand values propagate into the result.
//
// ⚙️ Usage:
//
//	f := integrand.Of(math.Sin)
//	area := newtoncotes.Simpson(0, math.Pi, 64, f)
//
//	// Opt-in concurrent reduction for very fine partitions:
//	area = newtoncotes.Trapezoidal(0, math.Pi, 1<<20, f, newtoncotes.WithWorkers(8))
//
// Determinism:
//
//	With the default single worker the sum is strictly sequential and
//	bit-reproducible. WithWorkers(k>1) sums contiguous chunks concurrently
//	and then adds the partial sums in chunk order; this changes the
//	floating-point rounding relative to the sequential sum, so results may
//	differ in the last bits.
//
// Complexity: O(N) time, O(1) memory sequential, O(k) memory with k workers.
package newtoncotes
