// SPDX-License-Identifier: MIT
// Package: lielath/subalgebra
//
// errors.go: sentinel errors and the NotInSubalgebraError type.
//
// Error policy:
//   • Sentinels are compared with errors.Is; context is attached with %w.
//   • *NotInSubalgebraError carries the offending element and subalgebra and
//     matches ErrNotInSubalgebra under errors.Is.
//   • Nothing is retried.

package subalgebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lielath/lie"
)

var (
	// ErrNotInSubalgebra is matched by every *NotInSubalgebraError.
	ErrNotInSubalgebra = errors.New("subalgebra: element not in subalgebra")

	// ErrUnsupportedAlgebra: nil algebra, or a parent kind this package
	// cannot flatten.
	ErrUnsupportedAlgebra = errors.New("subalgebra: unsupported algebra")

	// ErrForeignElement: an element of a different ambient algebra.
	ErrForeignElement = errors.New("subalgebra: element of a different algebra")

	// ErrDifferentParent: subalgebra elements with different parents.
	ErrDifferentParent = errors.New("subalgebra: elements have different parents")

	// ErrDimensionMismatch: a vector whose length is neither the ambient nor
	// the subalgebra dimension.
	ErrDimensionMismatch = errors.New("subalgebra: vector length mismatch")

	// ErrClosureDefect: the bracket of two subalgebra elements left the
	// subalgebra. Indicates a bug in the closure, not bad input.
	ErrClosureDefect = errors.New("subalgebra: closure defect")

	// ErrInvalidInput: an Input with an unknown kind or missing payload.
	ErrInvalidInput = errors.New("subalgebra: invalid input")
)

// NotInSubalgebraError reports an ambient element outside a subalgebra.
type NotInSubalgebraError struct {
	Element    lie.Element
	Subalgebra *Subalgebra
}

func (e *NotInSubalgebraError) Error() string {
	return fmt.Sprintf("the element %s is not in %s", e.Element, e.Subalgebra)
}

// Is makes errors.Is(err, ErrNotInSubalgebra) hold.
func (e *NotInSubalgebraError) Is(target error) bool { return target == ErrNotInSubalgebra }
