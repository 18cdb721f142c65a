// Package integrand defines the single-variable real function handed to
// every integrator in numint.
//
// What is an Integrand?
//
//	A Func is a tagged value: it either carries a callable f: ℝ → ℝ
//	(present) or carries nothing at all (absent). Integrators inspect the
//	tag exactly once at entry and return 0 for an absent integrand, so
//	"no function provided" is a defined input rather than a nil dereference.
//
// Construction:
//
//	f := integrand.Of(math.Sin) // present
//	g := integrand.None()       // absent
//	var h integrand.Func        // zero value is absent, same as None()
//	k := integrand.Of(nil)      // a nil callable also yields absent
//
// Ownership:
//
//	The callable is owned by the caller and only borrowed by an integrator
//	for the duration of one call. A Func is an immutable value and may be
//	copied and shared freely across goroutines, provided the wrapped
//	callable itself is safe for concurrent use.
package integrand
