// SPDX-License-Identifier: MIT

package lie

import "errors"

var (
	// ErrForeignElement indicates an element whose parent is not the algebra
	// performing the operation (or a zero-value Element with no parent).
	ErrForeignElement = errors.New("lie: element belongs to a different algebra")

	// ErrDimensionMismatch indicates a coordinate vector of the wrong length.
	ErrDimensionMismatch = errors.New("lie: dimension mismatch")

	// ErrUnknownBasis indicates a basis name or index that does not exist.
	ErrUnknownBasis = errors.New("lie: unknown basis element")

	// ErrDuplicateBasis indicates two basis elements with the same name.
	ErrDuplicateBasis = errors.New("lie: duplicate basis name")

	// ErrInvalidName indicates an empty or malformed basis name.
	ErrInvalidName = errors.New("lie: invalid basis name")

	// ErrAntisymmetry indicates a bracket table that is not antisymmetric.
	ErrAntisymmetry = errors.New("lie: bracket is not antisymmetric")

	// ErrJacobi indicates a bracket table violating the Jacobi identity.
	ErrJacobi = errors.New("lie: Jacobi identity violated")

	// ErrParse indicates a malformed linear-combination literal.
	ErrParse = errors.New("lie: cannot parse element")

	// ErrInvalidInput indicates a value Coerce cannot interpret.
	ErrInvalidInput = errors.New("lie: unsupported input")
)
