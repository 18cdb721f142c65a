// Package numint computes definite integrals of real functions of one
// variable over a finite interval [x1, x2].
//
// 🚀 What is numint?
//
//	A small, dependency-light quadrature toolkit with four classical rules:
//		• Trapezoidal: composite, O(h²)
//		• Simpson: composite, O(h⁴)
//		• Romberg: Richardson extrapolation of halved trapezoids, full table
//		• Gauss-Legendre: N-node rule with a Newton-Raphson root solver
//
// ✨ Shared contract
//
//   - Absent integrand – every method returns 0 (Romberg: an all-zero table)
//   - N < 1 – treated as 1
//   - x1 == x2 – result is 0; x2 < x1 – sign flips
//   - Pure – no shared state, safe for concurrent use
//
// Under the hood, everything is organized in subpackages:
//
//	integrand/     : Func, an integrand that is either present or absent
//	newtoncotes/   : Trapezoidal, Simpson, Integrate(rule, …), worker options
//	romberg/       : Integrate → Table (N×N), Estimate
//	gausslegendre/ : Solve(degree) → Rule, Integrator (solve once, reuse)
//	cmd/numint/    : command line (integrate, rule, batch, funcs)
//
// Quick example:
//
//	f := integrand.Of(math.Sin)
//	v := newtoncotes.Simpson(0, math.Pi, 100, f)        // ≈ 2
//	g, _ := gausslegendre.Integrate(0, math.Pi, 8, f)   // ≈ 2, 8 evaluations
//
//	go get github.com/katalvlaran/numint
package numint
