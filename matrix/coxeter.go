// SPDX-License-Identifier: MIT
// Package: matrix
//
// coxeter.go: the Coxeter matrix value type.
//
// Contract:
//   • Immutable after construction; Rows returns a deep copy.
//   • Row-major flat storage, like Dense.
//   • Indexers return ErrOutOfRange, never panic.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Infinity marks an off-diagonal pair with no braid relation.
const Infinity = 0

// positiveTol guards the leading-minor test against rounding noise.
const positiveTol = 1e-12

// Coxeter is a validated r×r Coxeter matrix.
type Coxeter struct {
	r    int   // rank
	data []int // flat backing storage, length == r*r
}

// NewCoxeter validates rows and returns the matrix.
// Stage 1 (Validate): square, symmetric, unit diagonal, entries ≥ 2 or Infinity.
// Stage 2 (Prepare): copy into flat storage.
// Complexity: O(r²).
func NewCoxeter(rows [][]int) (*Coxeter, error) {
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("NewCoxeter: %w", err)
	}
	if err := ValidateSymmetric(rows); err != nil {
		return nil, fmt.Errorf("NewCoxeter: %w", err)
	}
	if err := ValidateCoxeterEntries(rows); err != nil {
		return nil, fmt.Errorf("NewCoxeter: %w", err)
	}

	r := len(rows)
	data := make([]int, 0, r*r)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Coxeter{r: r, data: data}, nil
}

// Dihedral returns [[1, n], [n, 1]], the matrix of the dihedral group of order 2n.
func Dihedral(n int) (*Coxeter, error) {
	return NewCoxeter([][]int{{1, n}, {n, 1}})
}

// Rank returns r.
func (m *Coxeter) Rank() int { return m.r }

// At returns m[row][col] (0-based).
func (m *Coxeter) At(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.r {
		return 0, fmt.Errorf("Coxeter.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.r+col], nil
}

// Rows returns a deep copy as a slice of rows.
func (m *Coxeter) Rows() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = make([]int, m.r)
		copy(out[i], m.data[i*m.r:(i+1)*m.r])
	}

	return out
}

// Equal reports entry-wise equality.
func (m *Coxeter) Equal(other *Coxeter) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// BilinearForm returns B with B[i][j] = -cos(π/m_ij); entries for Infinity are -1.
// The diagonal is 1 since cos(π) = -1.
func (m *Coxeter) BilinearForm() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.r)
		for j := 0; j < m.r; j++ {
			v := m.data[i*m.r+j]
			if v == Infinity {
				out[i][j] = -1
				continue
			}
			out[i][j] = -math.Cos(math.Pi / float64(v))
		}
	}

	return out
}

// IsFinite reports whether the Coxeter group is finite, i.e. whether the
// bilinear form is positive definite (all leading principal minors > 0).
// Complexity: O(r³).
func (m *Coxeter) IsFinite() bool {
	b := m.BilinearForm()
	// Gaussian elimination without pivoting; for a positive definite matrix
	// every pivot is the ratio of consecutive leading minors and stays > 0.
	for k := 0; k < m.r; k++ {
		if b[k][k] <= positiveTol {
			return false
		}
		for i := k + 1; i < m.r; i++ {
			f := b[i][k] / b[k][k]
			for j := k; j < m.r; j++ {
				b[i][j] -= f * b[k][j]
			}
		}
	}

	return true
}

// String renders one bracketed row per line, columns right-aligned:
//
//	[1 6]
//	[6 1]
//
// Infinity prints as "+Infinity".
func (m *Coxeter) String() string {
	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		if v == Infinity {
			cells[i] = "+Infinity"
		} else {
			cells[i] = strconv.Itoa(v)
		}
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.r; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%*s", width, cells[i*m.r+j]))
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
