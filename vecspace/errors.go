// SPDX-License-Identifier: MIT

package vecspace

import "errors"

var (
	// ErrBadDimension is returned for a negative space dimension.
	ErrBadDimension = errors.New("vecspace: invalid dimension")

	// ErrDimensionMismatch indicates a vector whose length does not match the
	// space, or two operands of different lengths.
	ErrDimensionMismatch = errors.New("vecspace: dimension mismatch")

	// ErrNotInSubmodule is returned by Coordinates when the vector lies
	// outside the submodule.
	ErrNotInSubmodule = errors.New("vecspace: vector not in submodule")

	// ErrDependent is returned by SubmoduleWithBasis when the proposed basis
	// is not linearly independent.
	ErrDependent = errors.New("vecspace: basis vectors are linearly dependent")

	// ErrOutOfRange indicates an invalid coordinate index.
	ErrOutOfRange = errors.New("vecspace: index out of range")
)
