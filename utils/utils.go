package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrRaggedRows = errors.New("rows have different lengths")

// Vector of ones. Zero length yields an empty vector.
func Ones(n int) *mat.VecDense {
	if n == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return mat.NewVecDense(n, data)
}

// Identity Matrix.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// Add jitter to the diagonal of a square matrix, in place.
func AddJitter(m *mat.Dense, eps float64) {
	n, _ := m.Dims()
	m.Add(m, scaled(Eye(n), eps))
}

func scaled(m *mat.Dense, f float64) *mat.Dense {
	m.Scale(f, m)
	return m
}

// Build a matrix from a slice of rows. Every row must have the length of
// the first; no rows, or rows that are all empty, give an empty matrix.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return &mat.Dense{}, nil
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrRaggedRows, i, len(row), c)
		}
		data = append(data, row...)
	}
	if c == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(rows), c, data), nil
}

// Copy the rows of a matrix out as slices.
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

// Check that a matrix is square and symmetric up to tol.
func IsSymmetric(m mat.Matrix, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Symmetric view of the upper triangle of a square matrix.
func Symmetrize(m mat.Matrix) *mat.SymDense {
	n, _ := m.Dims()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, m.At(i, j))
		}
	}
	return out
}

// Smallest eigenvalue of a symmetric matrix. Reports false when the
// decomposition fails.
func MinEigen(m mat.Symmetric) (float64, bool) {
	var eig mat.EigenSym
	if !eig.Factorize(m, false) {
		return 0, false
	}
	// Values are returned in ascending order.
	return eig.Values(nil)[0], true
}
