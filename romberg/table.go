package romberg

// Table is an N×N Romberg table indexed [level][order]. Cells above the
// diagonal (order > level) are always 0.
//
// A Table is built append-only, one level at a time, and returned to the
// caller by value; the integrator keeps no reference to it.
type Table [][]float64

// newTable allocates a zero-filled n×n table from a single backing slice.
func newTable(n int) Table {
	cells := make([]float64, n*n)
	t := make(Table, n)
	for level := range t {
		t[level] = cells[level*n : (level+1)*n : (level+1)*n]
	}

	return t
}

// Size returns N.
func (t Table) Size() int {
	return len(t)
}

// At returns the cell at (level, order). It panics on out-of-range indices,
// like plain slice indexing.
func (t Table) At(level, order int) float64 {
	return t[level][order]
}

// Estimate returns the most extrapolated value R[N−1][N−1], or 0 for an
// empty table.
func (t Table) Estimate() float64 {
	n := len(t)
	if n == 0 {
		return 0
	}

	return t[n-1][n-1]
}

// Diagonal returns a copy of R[i][i] for i = 0..N−1.
func (t Table) Diagonal() []float64 {
	diag := make([]float64, len(t))
	for i := range t {
		diag[i] = t[i][i]
	}

	return diag
}

// Column returns a copy of R[level][order] for level = order..N−1, the valid
// entries of one extrapolation order. It returns nil when order is out of range.
func (t Table) Column(order int) []float64 {
	if order < 0 || order >= len(t) {
		return nil
	}
	col := make([]float64, 0, len(t)-order)
	for level := order; level < len(t); level++ {
		col = append(col, t[level][order])
	}

	return col
}
