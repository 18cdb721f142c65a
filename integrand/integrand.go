package integrand

// Func is an optional single-variable real function.
// The zero value is the absent integrand.
type Func struct {
	fn func(float64) float64
}

// Of wraps fn as a present integrand. A nil fn yields the absent integrand.
func Of(fn func(float64) float64) Func {
	return Func{fn: fn}
}

// None returns the absent integrand.
func None() Func {
	return Func{}
}

// Present reports whether f carries a callable.
func (f Func) Present() bool {
	return f.fn != nil
}

// Eval evaluates f at x. An absent integrand evaluates to 0 everywhere,
// which keeps every quadrature sum over it at exactly 0.
func (f Func) Eval(x float64) float64 {
	if f.fn == nil {
		return 0
	}

	return f.fn(x)
}

// Unwrap returns the wrapped callable, or nil when f is absent.
func (f Func) Unwrap() func(float64) float64 {
	return f.fn
}
