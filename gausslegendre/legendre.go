package gausslegendre

import (
	"fmt"
	"math"
)

const (
	// Tolerance is the Newton–Raphson stopping threshold on |P_N(x)/P_N'(x)|.
	Tolerance = 1e-15

	// MaxIterations caps Newton–Raphson per node.
	MaxIterations = 100
)

// Rule is the set of nodes and weights of an N-point Gauss–Legendre rule on
// [−1, 1]. Nodes[i] pairs with Weights[i].
type Rule struct {
	// Degree is N, the degree of the Legendre polynomial.
	Degree int

	// Nodes are the roots of P_N, in descending order.
	Nodes []float64

	// Weights are the quadrature weights matching Nodes.
	Weights []float64
}

// Len returns the number of nodes.
func (r Rule) Len() int {
	return len(r.Nodes)
}

// Clone returns a deep copy of r.
func (r Rule) Clone() Rule {
	return Rule{
		Degree:  r.Degree,
		Nodes:   append([]float64(nil), r.Nodes...),
		Weights: append([]float64(nil), r.Weights...),
	}
}

// Legendre evaluates P_n(x) and its derivative P_n'(x) with the three-term
// recurrence. n < 1 is coerced to 1.
//
// The derivative formula divides by x²−1 and is therefore undefined at
// x = ±1; the solver never evaluates there.
func Legendre(n int, x float64) (p, dp float64) {
	if n < 1 {
		n = 1
	}

	prev, cur := 1.0, x // P_0, P_1
	for k := 2; k <= n; k++ {
		kf := float64(k)
		prev, cur = cur, ((2*kf-1)*x*cur-(kf-1)*prev)/kf
	}
	dp = float64(n) / (x*x - 1) * (x*cur - prev)

	return cur, dp
}

// Solve computes the N-point Gauss–Legendre rule for degree N.
//
// Algorithm Outline:
//  1. Coerce degree < 1 to 1.
//  2. For node i = 0..N−1 seed x = cos(π·(i+1−¼)/(N+½)).
//  3. Newton–Raphson: x ← x − P_N(x)/P_N'(x) until the step is ≤ Tolerance.
//  4. Weight w = 2/((1−x²)·P_N'(x)²), with P_N' evaluated at the final x.
//
// Errors:
//   - ErrNoConvergence (wrapped with degree and node index) when a node does
//     not converge within MaxIterations or an iterate becomes non-finite.
//
// Complexity: O(N²·iterations) time, O(N) memory. The returned Rule is owned
// by the caller; nothing is cached between calls.
func Solve(degree int) (Rule, error) {
	if degree < 1 {
		degree = 1
	}

	rule := Rule{
		Degree:  degree,
		Nodes:   make([]float64, degree),
		Weights: make([]float64, degree),
	}
	for i := 0; i < degree; i++ {
		seed := math.Cos(math.Pi * (float64(i+1) - 0.25) / (float64(degree) + 0.5))
		x, err := newtonRoot(degree, seed)
		if err != nil {
			return Rule{}, fmt.Errorf("solve degree %d, node %d: %w", degree, i, err)
		}
		_, dp := Legendre(degree, x)
		rule.Nodes[i] = x
		rule.Weights[i] = 2 / ((1 - x*x) * dp * dp)
	}

	return rule, nil
}

// newtonRoot refines seed towards a root of P_n.
func newtonRoot(n int, seed float64) (float64, error) {
	x := seed
	for iter := 0; iter < MaxIterations; iter++ {
		p, dp := Legendre(n, x)
		step := p / dp
		x -= step
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("non-finite iterate from seed %g: %w", seed, ErrNoConvergence)
		}
		if math.Abs(step) <= Tolerance {
			return x, nil
		}
	}

	return 0, fmt.Errorf("no convergence from seed %g after %d iterations: %w", seed, MaxIterations, ErrNoConvergence)
}
