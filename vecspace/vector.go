// SPDX-License-Identifier: MIT

package vecspace

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lielath/field"
)

// Vector is an immutable coordinate vector over Q.
// The zero value is the empty vector of length 0.
type Vector struct {
	c []*big.Rat // owned; never exposed
}

// NewVector copies xs into a new Vector. Nil entries are read as 0.
func NewVector(xs ...*big.Rat) Vector {
	c := make([]*big.Rat, len(xs))
	for i, x := range xs {
		c[i] = field.Q.Copy(x)
	}

	return Vector{c: c}
}

// FromInts builds a Vector from integer coordinates.
func FromInts(xs ...int64) Vector {
	c := make([]*big.Rat, len(xs))
	for i, x := range xs {
		c[i] = field.Q.FromInt(x)
	}

	return Vector{c: c}
}

// Zero returns the zero vector of length n.
func Zero(n int) Vector {
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat)
	}

	return Vector{c: c}
}

// Unit returns the i-th standard basis vector of Q^n, or ErrOutOfRange.
func Unit(n, i int) (Vector, error) {
	if i < 0 || i >= n {
		return Vector{}, fmt.Errorf("Unit(%d,%d): %w", n, i, ErrOutOfRange)
	}
	v := Zero(n)
	v.c[i].SetInt64(1)

	return v, nil
}

// adopt wraps c without copying; callers hand over ownership.
func adopt(c []*big.Rat) Vector { return Vector{c: c} }

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v.c) }

// At returns a copy of coordinate i, or ErrOutOfRange.
func (v Vector) At(i int) (*big.Rat, error) {
	if i < 0 || i >= len(v.c) {
		return nil, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return new(big.Rat).Set(v.c[i]), nil
}

// Rats returns a copy of the coordinates.
func (v Vector) Rats() []*big.Rat {
	out := make([]*big.Rat, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

func (v Vector) sameLen(op string, o Vector) error {
	if len(v.c) != len(o.c) {
		return fmt.Errorf("Vector.%s(%d,%d): %w", op, len(v.c), len(o.c), ErrDimensionMismatch)
	}

	return nil
}

// Add returns v + o.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := v.sameLen("Add", o); err != nil {
		return Vector{}, err
	}
	out := make([]*big.Rat, len(v.c))
	for i := range v.c {
		out[i] = new(big.Rat).Add(v.c[i], o.c[i])
	}

	return adopt(out), nil
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) (Vector, error) {
	if err := v.sameLen("Sub", o); err != nil {
		return Vector{}, err
	}
	out := make([]*big.Rat, len(v.c))
	for i := range v.c {
		out[i] = new(big.Rat).Sub(v.c[i], o.c[i])
	}

	return adopt(out), nil
}

// Scale returns s·v. A nil s scales by 0.
func (v Vector) Scale(s *big.Rat) Vector {
	s = field.Q.Copy(s)
	out := make([]*big.Rat, len(v.c))
	for i := range v.c {
		out[i] = new(big.Rat).Mul(s, v.c[i])
	}

	return adopt(out)
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(big.NewRat(-1, 1)) }

// IsZero reports whether every coordinate is 0.
func (v Vector) IsZero() bool {
	for _, x := range v.c {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and o have the same length and coordinates.
func (v Vector) Equal(o Vector) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if v.c[i].Cmp(o.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Support returns the indices of the non-zero coordinates in increasing order.
func (v Vector) Support() []int {
	var idx []int
	for i, x := range v.c {
		if x.Sign() != 0 {
			idx = append(idx, i)
		}
	}

	return idx
}

// Key returns a canonical string usable as a map key.
func (v Vector) Key() string {
	parts := make([]string, len(v.c))
	for i, x := range v.c {
		parts[i] = x.RatString()
	}

	return strings.Join(parts, ",")
}

// String prints the vector as "(1, 0, -1/2)".
func (v Vector) String() string {
	parts := make([]string, len(v.c))
	for i, x := range v.c {
		parts[i] = field.Q.Format(x)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
