// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative dimension
	// or when row slices passed to NewFromRows have differing lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInconsistent is returned by SolveLeft when v is not in the row space.
	ErrInconsistent = errors.New("matrix: system has no solution")

	// ErrRankDeficient is returned by SolveLeft when the rows of B are not
	// linearly independent, so the solution would not be unique.
	ErrRankDeficient = errors.New("matrix: rows are linearly dependent")
)
