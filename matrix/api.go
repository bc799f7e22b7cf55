// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical
//     constructors and kernels. No logic lives here.

package matrix

import "math/big"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i].SetInt64(1)
	}

	return I, nil
}

// NewFromInts builds a Dense from integer rows; handy for fixtures.
func NewFromInts(cols int, rows [][]int64) (*Dense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rr[i][j] = new(big.Rat).SetInt64(v)
		}
	}

	return NewFromRows(cols, rr)
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// Product is an alias for Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// RowSpaceEqual reports whether a and b span the same row space.
// Both must have the same number of columns.
func RowSpaceEqual(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if a.Cols() != b.Cols() {
		return false, matrixErrorf("RowSpaceEqual", ErrDimensionMismatch)
	}
	ea, err := EchelonRows(a)
	if err != nil {
		return false, err
	}
	eb, err := EchelonRows(b)
	if err != nil {
		return false, err
	}

	return ea.Equal(eb), nil
}
