// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lielath/field"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of rationals.
// r is rows, c is columns, and data holds r*c non-nil cells in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): rows and cols must be ≥ 0.
// Stage 2 (Prepare): allocate one zero rational per cell.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows builds a Dense whose i-th row is a copy of rows[i].
// cols fixes the width so that an empty row list still has a shape.
// Nil cells are read as 0.
func NewFromRows(cols int, rows [][]*big.Rat) (*Dense, error) {
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has length %d, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		for j, v := range row {
			if v != nil {
				m.data[i*cols+j].Set(v)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		m.data[idx].SetInt64(0)
		return nil
	}
	m.data[idx].Set(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]*big.Rat, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// RowSlices returns a copy of all rows.
func (m *Dense) RowSlices() [][]*big.Rat {
	out := make([][]*big.Rat, m.r)
	for i := range out {
		out[i], _ = m.Row(i) // i is always in range
	}

	return out
}

// IsZero reports whether every cell is 0. A 0×c matrix is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and cells.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// String prints one bracketed row per line, e.g. "[1 0 1/2]".
// Columns are right-aligned to the widest entry.
func (m *Dense) String() string {
	width := 1
	cells := make([]string, len(m.data))
	for i, v := range m.data {
		cells[i] = field.Q.Format(v)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, cells[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
