// Package testutil holds numeric comparison helpers shared by numint tests.
//
// RelClose is the acceptance predicate used by every oracle test: a result
// is valid when it lies within a relative tolerance of the expected value,
// or when both are indistinguishable from zero.
package testutil

import (
	"math"
	"testing"

	"github.com/katalvlaran/numint/internal/catalog"
)

// closestToZero is the smallest positive normal float64. Magnitudes below it
// are treated as zero, so an exact 0 result matches an exact 0 expectation.
const closestToZero = 0x1p-1022

// ReferenceIntegrand is 5/(e^π − 2)·e^{2x}·cos(x). Its integral over [0, π/2]
// is exactly 1.
func ReferenceIntegrand(x float64) float64 {
	return catalog.Reference(x)
}

// RelClose reports whether result equals expected within relative tolerance eps.
//
// Policy:
//   - both magnitudes ≥ closestToZero: |result/expected − 1| ≤ eps;
//   - both magnitudes < closestToZero: true;
//   - otherwise (one zero, the other not): false.
//
// NaN never compares close.
func RelClose(result, expected, eps float64) bool {
	r, e := math.Abs(result), math.Abs(expected)
	if r >= closestToZero && e >= closestToZero {
		return math.Abs(result/expected-1) <= eps
	}
	if r < closestToZero && e < closestToZero {
		return true
	}

	return false
}

// AssertRelClose fails t (non-fatally) when RelClose(got, want, eps) is false.
func AssertRelClose(t testing.TB, got, want, eps float64, msgAndArgs ...any) bool {
	t.Helper()
	if RelClose(got, want, eps) {
		return true
	}
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			t.Errorf(format, msgAndArgs[1:]...)
		}
	}
	t.Errorf("relative mismatch: got=%.17g want=%.17g (eps=%.1e)", got, want, eps)

	return false
}
