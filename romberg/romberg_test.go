package romberg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/numint/integrand"
	"github.com/katalvlaran/numint/internal/testutil"
	"github.com/katalvlaran/numint/newtoncotes"
	"github.com/katalvlaran/numint/romberg"
)

var reference = integrand.Of(testutil.ReferenceIntegrand)

// TestRomberg_ValidCase reads R[3][3] for the reference integrand.
func TestRomberg_ValidCase(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 4, reference)
	require.Equal(t, 4, table.Size())
	testutil.AssertRelClose(t, table[3][3], 1.0, 1e-5)
	assert.Equal(t, table[3][3], table.Estimate())
}

// TestRomberg_ZeroRange verifies every cell is 0 when x1 == x2.
func TestRomberg_ZeroRange(t *testing.T) {
	table := romberg.Integrate(0, 0, 5, reference)
	for level := range table {
		for order := range table[level] {
			assert.Equal(t, 0.0, table[level][order], "R[%d][%d]", level, order)
		}
	}
}

// TestRomberg_ZeroSteps verifies n = 0 yields the 1×1 single-trapezoid table.
func TestRomberg_ZeroSteps(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 0, reference)
	require.Equal(t, 1, table.Size())
	require.Len(t, table[0], 1)
	testutil.AssertRelClose(t, table[0][0], 0.18575, 1e-3)
	assert.Equal(t, newtoncotes.Trapezoidal(0, 0.5*math.Pi, 1, reference), table[0][0])
	assert.Equal(t, table, romberg.Integrate(0, 0.5*math.Pi, 1, reference))
}

// TestRomberg_AbsentFunction verifies the zero table keeps its N×N shape.
func TestRomberg_AbsentFunction(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 4, integrand.None())
	require.Equal(t, 4, table.Size())
	for _, row := range table {
		require.Len(t, row, 4)
		for _, v := range row {
			assert.Equal(t, 0.0, v)
		}
	}
	assert.Equal(t, 0.0, table[3][3])

	coerced := romberg.Integrate(0, 0.5*math.Pi, 0, integrand.None())
	require.Equal(t, 1, coerced.Size())
	assert.Equal(t, 0.0, coerced[0][0])
}

// TestRomberg_UpperTriangleZero checks cells with order > level stay 0.
func TestRomberg_UpperTriangleZero(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 6, reference)
	for level := range table {
		for order := level + 1; order < table.Size(); order++ {
			assert.Equal(t, 0.0, table[level][order], "R[%d][%d]", level, order)
		}
	}
}

// TestRomberg_FirstColumnIsTrapezoidal checks R[r][0] equals the trapezoidal
// rule on 2^r panels.
func TestRomberg_FirstColumnIsTrapezoidal(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 7, reference)
	for level := 0; level < table.Size(); level++ {
		want := newtoncotes.Trapezoidal(0, 0.5*math.Pi, 1<<level, reference)
		testutil.AssertRelClose(t, table[level][0], want, 1e-12, "level %d", level)
	}
}

// TestRomberg_SecondColumnIsSimpson checks the Richardson identity
// R[r][1] == Simpson on 2^(r−1) panels for every r ≥ 1.
func TestRomberg_SecondColumnIsSimpson(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 7, reference)
	for level := 1; level < table.Size(); level++ {
		want := newtoncotes.Simpson(0, 0.5*math.Pi, 1<<(level-1), reference)
		testutil.AssertRelClose(t, table[level][1], want, 1e-12, "level %d", level)
	}
}

// TestRomberg_ThirdColumnIsBoole checks R[r][2] equals composite Boole's rule
// on 2^(r−2) panels for every r ≥ 2.
func TestRomberg_ThirdColumnIsBoole(t *testing.T) {
	table := romberg.Integrate(0, 0.5*math.Pi, 6, reference)
	for level := 2; level < table.Size(); level++ {
		want := boole(0, 0.5*math.Pi, 1<<(level-2), testutil.ReferenceIntegrand)
		testutil.AssertRelClose(t, table[level][2], want, 1e-12, "level %d", level)
	}
}

// TestRomberg_EvaluationCount checks each level only samples new midpoints:
// 2 endpoint evaluations plus 2^(n−1)−1 midpoints.
func TestRomberg_EvaluationCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		calls := 0
		f := integrand.Of(func(x float64) float64 { calls++; return math.Exp(x) })
		romberg.Integrate(0, 1, n, f)
		assert.Equal(t, (1<<(n-1))+1, calls, "n=%d", n)
	}
}

// TestRomberg_MatchesGonum compares the extrapolated estimate with gonum's
// Romberg on the same 2^(n−1)+1 samples.
func TestRomberg_MatchesGonum(t *testing.T) {
	const n = 6
	samples := (1 << (n - 1)) + 1
	dx := 0.5 * math.Pi / float64(samples-1)
	y := make([]float64, samples)
	for i := range y {
		y[i] = testutil.ReferenceIntegrand(float64(i) * dx)
	}
	testutil.AssertRelClose(t, romberg.Estimate(0, 0.5*math.Pi, n, reference), integrate.Romberg(y, dx), 1e-9)
}

// TestRomberg_ReversedBounds checks the sign flip for x1 > x2.
func TestRomberg_ReversedBounds(t *testing.T) {
	fwd := romberg.Estimate(0, 0.5*math.Pi, 5, reference)
	rev := romberg.Estimate(0.5*math.Pi, 0, 5, reference)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

// TestRomberg_ConvergesAlongDiagonal checks the diagonal error shrinks.
func TestRomberg_ConvergesAlongDiagonal(t *testing.T) {
	diag := romberg.Integrate(0, 0.5*math.Pi, 6, reference).Diagonal()
	require.Len(t, diag, 6)
	for i := 1; i < len(diag); i++ {
		assert.Less(t, math.Abs(diag[i]-1), math.Abs(diag[i-1]-1), "diag[%d]", i)
	}
}

// TestRomberg_Idempotent checks repeated calls are bit-identical and do not
// share storage.
func TestRomberg_Idempotent(t *testing.T) {
	a := romberg.Integrate(0, 0.5*math.Pi, 5, reference)
	b := romberg.Integrate(0, 0.5*math.Pi, 5, reference)
	assert.Equal(t, a, b)
	a[4][4] = 42
	assert.NotEqual(t, a[4][4], b[4][4])
}

// boole is the composite Boole rule on m panels, each split into 4 steps.
func boole(x1, x2 float64, m int, f func(float64) float64) float64 {
	width := (x2 - x1) / float64(m)
	h := width / 4
	var sum float64
	for i := 0; i < m; i++ {
		a := x1 + float64(i)*width
		sum += 2 * h / 45 * (7*f(a) + 32*f(a+h) + 12*f(a+2*h) + 32*f(a+3*h) + 7*f(a+4*h))
	}

	return sum
}
