// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface.
// Kept as an interface so kernels can be exercised against wrappers that hide
// the concrete *Dense type (see tests).
package matrix

import "math/big"

// Matrix is a two-dimensional mutable array of rationals.
//
// At returns a copy of the stored value; Set stores a copy of v. Callers can
// therefore never alias a cell.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (*big.Rat, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange. A nil v stores 0.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy.
	Clone() Matrix
}
