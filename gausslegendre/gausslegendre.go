package gausslegendre

import "github.com/katalvlaran/numint/integrand"

// Integrator is a Gauss–Legendre rule bound to an interval [x1, x2].
// It is immutable after New, so Integrate may be called concurrently;
// Reconfigure is not safe for concurrent use.
type Integrator struct {
	x1, x2 float64
	rule   Rule
}

// New solves the n-point rule once and binds it to [x1, x2].
// n < 1 is coerced to 1.
func New(x1, x2 float64, n int) (*Integrator, error) {
	rule, err := Solve(n)
	if err != nil {
		return nil, err
	}

	return &Integrator{x1: x1, x2: x2, rule: rule}, nil
}

// Bounds returns the bound interval.
func (g *Integrator) Bounds() (x1, x2 float64) {
	return g.x1, g.x2
}

// Degree returns the number of nodes N.
func (g *Integrator) Degree() int {
	return g.rule.Degree
}

// Rule returns a copy of the solved rule.
func (g *Integrator) Rule() Rule {
	return g.rule.Clone()
}

// Reconfigure rebinds the integrator to [x1, x2] and degree n. The rule is
// re-solved only when the (coerced) degree changes. On error the integrator
// is left unchanged.
func (g *Integrator) Reconfigure(x1, x2 float64, n int) error {
	if n < 1 {
		n = 1
	}
	if n != g.rule.Degree {
		rule, err := Solve(n)
		if err != nil {
			return err
		}
		g.rule = rule
	}
	g.x1, g.x2 = x1, x2

	return nil
}

// Integrate applies the bound rule to f. An absent f yields 0.
func (g *Integrator) Integrate(f integrand.Func) float64 {
	return g.rule.Apply(g.x1, g.x2, f)
}

// Apply evaluates width·Σ w_i·f(width·x_i + mean) for the interval [x1, x2].
// An absent f yields 0.
func (r Rule) Apply(x1, x2 float64, f integrand.Func) float64 {
	if !f.Present() {
		return 0
	}

	width := 0.5 * (x2 - x1)
	mean := 0.5 * (x1 + x2)

	var sum float64
	for i, node := range r.Nodes {
		sum += r.Weights[i] * f.Eval(width*node+mean)
	}

	return width * sum
}

// Integrate is the one-shot form: solve the n-point rule and apply it to f
// over [x1, x2]. An absent f yields 0 without solving.
func Integrate(x1, x2 float64, n int, f integrand.Func) (float64, error) {
	if !f.Present() {
		return 0, nil
	}
	g, err := New(x1, x2, n)
	if err != nil {
		return 0, err
	}

	return g.Integrate(f), nil
}
