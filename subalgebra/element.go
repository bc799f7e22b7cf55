// SPDX-License-Identifier: MIT

package subalgebra

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lielath/field"
	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/vecspace"
)

// Element is an element of a Subalgebra: an ambient value known to lie in
// its parent. Elements are immutable.
type Element struct {
	parent *Subalgebra
	value  lie.Element
}

// Parent returns the subalgebra x belongs to.
func (x *Element) Parent() *Subalgebra { return x.parent }

// Value returns the ambient value of x.
func (x *Element) Value() lie.Element { return x.value }

// Lift is Value; it lets lie.Algebra.Coerce accept subalgebra elements.
func (x *Element) Lift() lie.Element { return x.value }

// IsZero reports whether x is zero.
func (x *Element) IsZero() bool { return x.value.IsZero() }

// Equal compares ambient values, so elements of different subalgebras of
// the same ambient are equal when they lift to the same element.
func (x *Element) Equal(y *Element) bool {
	if x == nil || y == nil {
		return x == y
	}

	return x.value.Equal(y.value)
}

// Add returns x + y. Errors: ErrInvalidInput for a nil x, ErrDifferentParent.
func (x *Element) Add(y *Element) (*Element, error) {
	if x == nil {
		return nil, fmt.Errorf("Add: nil element: %w", ErrInvalidInput)
	}
	if y == nil || x.parent != y.parent {
		return nil, fmt.Errorf("Add(%s, %s): %w", x, y, ErrDifferentParent)
	}
	v, err := x.value.Add(y.value)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	return &Element{parent: x.parent, value: v}, nil
}

// Scale returns c·x; a nil c scales by 0 and a nil x stays nil.
func (x *Element) Scale(c *big.Rat) *Element {
	if x == nil {
		return nil
	}

	return &Element{parent: x.parent, value: x.value.Scale(c)}
}

// Bracket returns [x, y] in the common parent.
//
// Errors: ErrDifferentParent. ErrClosureDefect (wrapping the
// *NotInSubalgebraError) if the bracket escapes the parent, which a correct
// closure rules out.
func (x *Element) Bracket(y *Element) (*Element, error) {
	if x == nil || y == nil || x.parent != y.parent {
		return nil, fmt.Errorf("Bracket(%s, %s): %w", x, y, ErrDifferentParent)
	}
	z, err := x.parent.ambient.Bracket(x.value, y.value)
	if err != nil {
		return nil, fmt.Errorf("Bracket: %w", err)
	}
	e, err := x.parent.Retract(z)
	if err != nil {
		return nil, fmt.Errorf("Bracket(%s, %s): %w: %w", x, y, ErrClosureDefect, err)
	}

	return e, nil
}

// ToVector returns the coordinates of x relative to the parent's Basis.
func (x *Element) ToVector() (vecspace.Vector, error) {
	m, err := x.parent.Module()
	if err != nil {
		return vecspace.Vector{}, err
	}
	v, err := m.Coordinates(x.value.Vector())
	if err != nil {
		return vecspace.Vector{}, fmt.Errorf("ToVector(%s): %w", x, err)
	}

	return v, nil
}

// MonomialCoefficients maps basis index to the non-zero coordinates of x.
func (x *Element) MonomialCoefficients() (map[int]*big.Rat, error) {
	v, err := x.ToVector()
	if err != nil {
		return nil, err
	}
	out := make(map[int]*big.Rat)
	for _, i := range v.Support() {
		c, _ := v.At(i)
		out[i] = c
	}

	return out, nil
}

// Coefficient returns the i-th coordinate of x relative to the parent's
// Basis; zero when i is out of range.
func (x *Element) Coefficient(i int) *big.Rat {
	v, err := x.ToVector()
	if err != nil {
		return field.Q.Zero()
	}
	c, err := v.At(i)
	if err != nil {
		return field.Q.Zero()
	}

	return c
}

// String renders the ambient value.
func (x *Element) String() string {
	if x == nil {
		return "<nil>"
	}

	return x.value.String()
}
