package markovfootball

import (
	"errors"
	"math"
)

// pivotEpsilon is the smallest pivot magnitude accepted during elimination
// before the system is declared singular.
const pivotEpsilon = 1e-12

var errSingularMatrix = errors.New("matrix is singular")

// newMatrix allocates a zeroed rows x cols dense matrix.
func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// solveLinearSystem solves A X = B for X, where A is n x n and B is n x m,
// using Gaussian elimination with partial pivoting. Both inputs are
// consumed: rows are swapped and reduced in place.
func solveLinearSystem(a, b [][]float64) ([][]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	m := len(b[0])

	// Forward elimination with row pivoting
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < pivotEpsilon {
			return nil, errSingularMatrix
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			for k := 0; k < m; k++ {
				b[row][k] -= factor * b[col][k]
			}
		}
	}

	// Back substitution, one column of B at a time
	x := newMatrix(n, m)
	for row := n - 1; row >= 0; row-- {
		for k := 0; k < m; k++ {
			sum := b[row][k]
			for col := row + 1; col < n; col++ {
				sum -= a[row][col] * x[col][k]
			}
			x[row][k] = sum / a[row][row]
		}
	}

	return x, nil
}
