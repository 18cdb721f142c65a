package newtoncotes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/numint/integrand"
	"github.com/katalvlaran/numint/internal/testutil"
	"github.com/katalvlaran/numint/newtoncotes"
)

var reference = integrand.Of(testutil.ReferenceIntegrand)

// TestTrapezoidal_ValidCase integrates the reference integrand, whose exact
// integral over [0, π/2] is 1.
func TestTrapezoidal_ValidCase(t *testing.T) {
	result := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 100, reference)
	testutil.AssertRelClose(t, result, 1.0, 1e-3)
}

// TestTrapezoidal_ZeroRange verifies x1 == x2 yields exactly 0.
func TestTrapezoidal_ZeroRange(t *testing.T) {
	assert.Equal(t, 0.0, newtoncotes.Trapezoidal(0, 0, 100, reference))
	assert.Equal(t, 0.0, newtoncotes.Trapezoidal(1.25, 1.25, 7, reference))
}

// TestTrapezoidal_ZeroSteps verifies n = 0 (and negative n) behaves as n = 1.
func TestTrapezoidal_ZeroSteps(t *testing.T) {
	one := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 1, reference)
	assert.Equal(t, one, newtoncotes.Trapezoidal(0, 0.5*math.Pi, 0, reference))
	assert.Equal(t, one, newtoncotes.Trapezoidal(0, 0.5*math.Pi, -3, reference))
	testutil.AssertRelClose(t, one, 0.18575, 1e-3)
}

// TestTrapezoidal_AbsentFunction verifies an absent integrand yields 0.
func TestTrapezoidal_AbsentFunction(t *testing.T) {
	assert.Equal(t, 0.0, newtoncotes.Trapezoidal(0, 0.5*math.Pi, 0, integrand.None()))
	assert.Equal(t, 0.0, newtoncotes.Trapezoidal(0, 0.5*math.Pi, 100, integrand.Of(nil)))
}

// TestTrapezoidal_ReversedBounds checks the sign flip for x1 > x2.
func TestTrapezoidal_ReversedBounds(t *testing.T) {
	fwd := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 64, reference)
	rev := newtoncotes.Trapezoidal(0.5*math.Pi, 0, 64, reference)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

// TestTrapezoidal_ExactForLinear checks the rule integrates affine functions exactly.
func TestTrapezoidal_ExactForLinear(t *testing.T) {
	f := integrand.Of(func(x float64) float64 { return 3*x + 1 })
	for _, n := range []int{1, 2, 3, 10} {
		assert.InDelta(t, 8.0, newtoncotes.Trapezoidal(0, 2, n, f), 1e-12, "n=%d", n)
	}
}

// TestTrapezoidal_MatchesGonum compares against gonum's sampled trapezoidal rule.
func TestTrapezoidal_MatchesGonum(t *testing.T) {
	const n = 50
	x := make([]float64, n+1)
	y := make([]float64, n+1)
	width := 0.5 * math.Pi / n
	for i := range x {
		x[i] = float64(i) * width
		y[i] = testutil.ReferenceIntegrand(x[i])
	}
	want := integrate.Trapezoidal(x, y)
	got := newtoncotes.Trapezoidal(0, 0.5*math.Pi, n, reference)
	testutil.AssertRelClose(t, got, want, 1e-12)
}

// TestTrapezoidal_EvaluationCount verifies two evaluations per panel.
func TestTrapezoidal_EvaluationCount(t *testing.T) {
	calls := 0
	f := integrand.Of(func(x float64) float64 { calls++; return x })
	newtoncotes.Trapezoidal(0, 1, 10, f)
	assert.Equal(t, 10*newtoncotes.TrapezoidalRule.EvaluationsPerPanel(), calls)
}

// TestTrapezoidal_Idempotent checks repeated calls are bit-identical.
func TestTrapezoidal_Idempotent(t *testing.T) {
	a := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 333, reference)
	b := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 333, reference)
	assert.Equal(t, a, b)
}

// TestTrapezoidal_NonFinitePropagates documents that NaN bounds are not rejected.
func TestTrapezoidal_NonFinitePropagates(t *testing.T) {
	assert.True(t, math.IsNaN(newtoncotes.Trapezoidal(math.NaN(), 1, 4, reference)))
}
