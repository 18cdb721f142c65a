package testutil_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numint/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// TestRelClose covers the three branches of the comparison policy.
func TestRelClose(t *testing.T) {
	cases := []struct {
		name             string
		result, expected float64
		eps              float64
		want             bool
	}{
		{"exact", 1, 1, 0, true},
		{"within eps", 1.0005, 1, 1e-3, true},
		{"outside eps", 1.01, 1, 1e-3, false},
		{"negative pair", -2.001, -2, 1e-3, true},
		{"opposite signs", -1, 1, 1e-3, false},
		{"both zero", 0, 0, 1e-3, true},
		{"signed zeros", math.Copysign(0, -1), 0, 0, true},
		{"subnormal vs zero", 1e-310, 0, 1e-3, true},
		{"zero vs one", 0, 1, 1e-3, false},
		{"one vs zero", 1, 0, 1e-3, false},
		{"nan", math.NaN(), 1, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testutil.RelClose(tc.result, tc.expected, tc.eps))
		})
	}
}

// TestReferenceIntegrand checks the closed-form endpoints of the reference
// integrand.
func TestReferenceIntegrand(t *testing.T) {
	scale := 5.0 / (math.Exp(math.Pi) - 2.0)
	assert.InDelta(t, scale, testutil.ReferenceIntegrand(0), 1e-15)
	assert.InDelta(t, 0.0, testutil.ReferenceIntegrand(math.Pi/2), 1e-14)
}

// TestAssertRelClose exercises the passing path of the assertion helper.
func TestAssertRelClose(t *testing.T) {
	assert.True(t, testutil.AssertRelClose(t, 1.0, 1.0, 0))
}
