// Package gausslegendre implements Gauss–Legendre quadrature together with
// the Newton–Raphson solver for the nodes and weights of the Legendre
// polynomial P_N.
//
// 🚀 How it works
//
//	An N-point Gauss–Legendre rule integrates every polynomial of degree
//	≤ 2N−1 exactly on [−1, 1]. Its nodes are the N roots of P_N and its
//	weights are w_i = 2 / ((1 − x_i²) · P_N'(x_i)²).
//
//	Roots are found by Newton–Raphson seeded with the Chebyshev-like guess
//	x = cos(π·(i − ¼)/(N + ½)), i = 1..N. P_N and P_N' are evaluated with
//	the three-term recurrence
//
//	  P_k(x)  = ((2k−1)·x·P_{k−1}(x) − (k−1)·P_{k−2}(x)) / k
//	  P_N'(x) = N/(x²−1) · (x·P_N(x) − P_{N−1}(x))
//
//	and iterated until |P_N/P_N'| ≤ Tolerance. Iterations are capped at
//	MaxIterations; exceeding the cap or hitting a non-finite iterate
//	returns ErrNoConvergence instead of looping forever.
//
//	An arbitrary interval [x1, x2] is mapped onto [−1, 1]:
//
//	  ∫ f ≈ width · Σ w_i · f(width·x_i + mean),
//	  width = (x2 − x1)/2, mean = (x1 + x2)/2.
//
// ⚙️ Usage
//
//	// One-shot:
//	v, err := gausslegendre.Integrate(0, math.Pi, 8, integrand.Of(math.Sin))
//
//	// Reusable rule for many integrands over the same interval:
//	g, err := gausslegendre.New(0, 1, 16)
//	a := g.Integrate(integrand.Of(math.Exp))
//	b := g.Integrate(integrand.Of(math.Cos))
//
// Indexing
//
//	Rule.Nodes and Rule.Weights are 0-based slices of length N. Node i is
//	the root seeded with i+1, so nodes run from just below +1 down to just
//	above −1.
//
// Contract
//   - N < 1 is coerced to 1;
//   - an absent integrand yields 0;
//   - x1 == x2 yields 0 and x1 > x2 flips the sign;
//   - non-finite bounds or integrand values propagate.
package gausslegendre
