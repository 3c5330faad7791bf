// SPDX-License-Identifier: MIT
// Package matrix: Dense is the n×n block a correlation Array holds at one
// grid point. It is a row-major matrix storing elements in a flat slice for
// cache friendliness; the per-point kernels of the solver work on Dense
// scratch blocks and scatter results back into symmetric Arrays.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns I_n.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewDenseFrom builds a rows×cols Dense from row-major values (copied).
func NewDenseFrom(rows, cols int, values []float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	copy(d.data, values)

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RawRowMajor returns the backing slice (aliased, not copied).
func (m *Dense) RawRowMajor() []float64 { return m.data }

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom overwrites m with src; shapes must match.
func (m *Dense) CopyFrom(src *Dense) error {
	if m.r != src.r || m.c != src.c {
		return ErrDimensionMismatch
	}
	copy(m.data, src.data)

	return nil
}

// Mul stores a·b into m. m must not alias a or b.
// Stage 1 (Validate): a.Cols == b.Rows and m is a.Rows×b.Cols.
// Stage 2 (Execute): i→k→j loop order for row-major locality.
// Complexity: O(r·c·k).
func (m *Dense) Mul(a, b *Dense) error {
	if a.c != b.r || m.r != a.r || m.c != b.c {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	for idx := range m.data {
		m.data[idx] = 0
	}
	var (
		i, j, k int
		aik     float64
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				m.data[i*m.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return nil
}

// IdentityMinus stores I − a into m (square only).
func (m *Dense) IdentityMinus(a *Dense) error {
	if a.r != a.c || m.r != a.r || m.c != a.c {
		return ErrDimensionMismatch
	}
	n := a.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -a.data[i*n+j]
			if i == j {
				v += 1
			}
			m.data[i*n+j] = v
		}
	}

	return nil
}

// Symmetrize replaces m by (m + mᵀ)/2 in place (square only).
func (m *Dense) Symmetrize() error {
	if m.r != m.c {
		return ErrDimensionMismatch
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (m.data[i*n+j] + m.data[j*n+i])
			m.data[i*n+j] = avg
			m.data[j*n+i] = avg
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
