package newtoncotes

import "fmt"

// Rule selects a composite Newton–Cotes rule.
type Rule int

const (
	// TrapezoidalRule is the composite trapezoidal rule (order 2).
	TrapezoidalRule Rule = iota

	// SimpsonRule is the composite Simpson rule (order 4).
	SimpsonRule
)

// String returns the lower-case rule name.
func (r Rule) String() string {
	switch r {
	case TrapezoidalRule:
		return "trapezoidal"
	case SimpsonRule:
		return "simpson"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// EvaluationsPerPanel reports how many integrand evaluations the rule makes
// on each panel (shared panel endpoints are evaluated twice).
func (r Rule) EvaluationsPerPanel() int {
	if r == SimpsonRule {
		return 3
	}

	return 2
}

// panelFunc integrates f over a single panel [a, b].
type panelFunc func(a, b float64, f func(float64) float64) float64

// trapezoidPanel is (b−a)/2 · (f(a)+f(b)).
func trapezoidPanel(a, b float64, f func(float64) float64) float64 {
	return 0.5 * (b - a) * (f(a) + f(b))
}

// simpsonPanel is (b−a)/6 · (f(a) + 4f(m) + f(b)), m the panel midpoint.
func simpsonPanel(a, b float64, f func(float64) float64) float64 {
	mid := 0.5 * (a + b)

	return (b - a) / 6.0 * (f(a) + 4.0*f(mid) + f(b))
}

// panel returns the panel kernel for r. Unknown rules fall back to the
// trapezoidal kernel.
func (r Rule) panel() panelFunc {
	if r == SimpsonRule {
		return simpsonPanel
	}

	return trapezoidPanel
}
