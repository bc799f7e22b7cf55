// SPDX-License-Identifier: MIT

package vecspace

import (
	"fmt"

	"github.com/katalvlaran/lielath/field"
)

// Space is Q^n with its standard basis. It is immutable and safe to share.
type Space struct {
	n int
}

// NewSpace returns Q^n. n may be 0 (the zero space).
func NewSpace(n int) (*Space, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewSpace(%d): %w", n, ErrBadDimension)
	}

	return &Space{n: n}, nil
}

// Dimension returns n.
func (s *Space) Dimension() int { return s.n }

// BaseField returns the coefficient field.
func (s *Space) BaseField() field.Rationals { return field.Q }

// Check returns ErrDimensionMismatch unless v has length n.
func (s *Space) Check(v Vector) error {
	if v.Len() != s.n {
		return fmt.Errorf("Space(%d): vector of length %d: %w", s.n, v.Len(), ErrDimensionMismatch)
	}

	return nil
}

// Zero returns the zero vector of the space.
func (s *Space) Zero() Vector { return Zero(s.n) }

// Basis returns the standard basis e_0..e_{n-1}.
func (s *Space) Basis() []Vector {
	out := make([]Vector, s.n)
	for i := range out {
		out[i], _ = Unit(s.n, i) // i < n
	}

	return out
}

// String implements fmt.Stringer.
func (s *Space) String() string {
	return fmt.Sprintf("Vector space of dimension %d over %s", s.n, field.Q.Name())
}
