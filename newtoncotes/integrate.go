package newtoncotes

import "github.com/katalvlaran/numint/integrand"

// Integrate dispatches to the composite rule r. Unknown rules use the
// trapezoidal kernel.
func Integrate(r Rule, x1, x2 float64, n int, f integrand.Func, opts ...Option) float64 {
	return composite(x1, x2, n, f, r.panel(), gatherOptions(opts...))
}
