// SPDX-License-Identifier: MIT

package lie

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lielath/field"
	"github.com/katalvlaran/lielath/vecspace"
)

// Element is an immutable element of an Algebra: a parent pointer and a
// coordinate vector relative to the parent's basis.
// The zero value has no parent and is rejected by every Algebra operation.
type Element struct {
	parent *Algebra
	v      vecspace.Vector
}

// Parent returns the owning algebra (nil for the zero value).
func (x Element) Parent() *Algebra { return x.parent }

// Vector returns the coordinates relative to the parent's basis.
func (x Element) Vector() vecspace.Vector { return x.v }

// IsZero reports whether all coordinates are 0.
func (x Element) IsZero() bool { return x.v.IsZero() }

// Equal reports whether x and y have the same parent and coordinates.
func (x Element) Equal(y Element) bool {
	return x.parent == y.parent && x.v.Equal(y.v)
}

// Add returns x + y; both must share a parent.
func (x Element) Add(y Element) (Element, error) {
	if x.parent == nil || x.parent != y.parent {
		return Element{}, fmt.Errorf("Add(%s, %s): %w", x, y, ErrForeignElement)
	}
	v, err := x.v.Add(y.v)
	if err != nil {
		return Element{}, err
	}

	return Element{parent: x.parent, v: v}, nil
}

// Sub returns x - y; both must share a parent.
func (x Element) Sub(y Element) (Element, error) {
	if x.parent == nil || x.parent != y.parent {
		return Element{}, fmt.Errorf("Sub(%s, %s): %w", x, y, ErrForeignElement)
	}
	v, err := x.v.Sub(y.v)
	if err != nil {
		return Element{}, err
	}

	return Element{parent: x.parent, v: v}, nil
}

// Scale returns s·x.
func (x Element) Scale(s *big.Rat) Element {
	return Element{parent: x.parent, v: x.v.Scale(s)}
}

// Neg returns -x.
func (x Element) Neg() Element { return Element{parent: x.parent, v: x.v.Neg()} }

// Coefficient returns the coordinate on e_i; 0 when i is out of range.
func (x Element) Coefficient(i int) *big.Rat {
	c, err := x.v.At(i)
	if err != nil {
		return field.Q.Zero()
	}

	return c
}

// MonomialCoefficients returns the non-zero coordinates keyed by basis index.
func (x Element) MonomialCoefficients() map[int]*big.Rat {
	out := make(map[int]*big.Rat)
	for _, i := range x.v.Support() {
		out[i] = x.Coefficient(i)
	}

	return out
}

// String prints x as a linear combination, e.g. "2*p + q - 1/2*z" or "0".
func (x Element) String() string {
	if x.parent == nil {
		return x.v.String()
	}

	return formatCombination(x.parent.names, x.v)
}

// formatCombination renders Σ v_i·names[i].
func formatCombination(names []string, v vecspace.Vector) string {
	var b strings.Builder
	for _, i := range v.Support() {
		c, _ := v.At(i)
		neg := c.Sign() < 0
		abs := new(big.Rat).Abs(c)

		switch {
		case b.Len() == 0 && neg:
			b.WriteString("-")
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if !(abs.IsInt() && abs.Num().IsInt64() && abs.Num().Int64() == 1) {
			b.WriteString(field.Q.Format(abs))
			b.WriteString("*")
		}
		b.WriteString(names[i])
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
