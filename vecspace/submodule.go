// SPDX-License-Identifier: MIT

package vecspace

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lielath/field"
	"github.com/katalvlaran/lielath/matrix"
)

// Submodule is a subspace of a Space together with a chosen basis.
//
// Invariants:
//   - echelon holds the reduced echelon basis (unique per subspace) and
//     pivots its pivot columns.
//   - basis spans the same subspace as echelon and is linearly independent.
//   - Both are immutable after construction.
type Submodule struct {
	space   *Space
	basis   []Vector      // chosen basis, used for coordinates
	chosen  *matrix.Dense // rows = basis
	echelon *matrix.Dense // rows = reduced echelon basis
	pivots  []int
	user    bool // basis supplied by the caller rather than echelonized
}

// rowsOf packs vectors (already length-checked) into a Dense.
func rowsOf(n int, vs []Vector) *matrix.Dense {
	rows := make([][]*big.Rat, len(vs))
	for i, v := range vs {
		rows[i] = v.c
	}
	m, _ := matrix.NewFromRows(n, rows) // lengths checked by caller; copies cells

	return m
}

// vectorsOf unpacks the rows of m.
func vectorsOf(m *matrix.Dense) []Vector {
	rows := m.RowSlices()
	out := make([]Vector, len(rows))
	for i, r := range rows {
		out[i] = adopt(r)
	}

	return out
}

// echelonize returns the reduced echelon rows of vs together with pivots.
func echelonize(n int, vs []Vector) (*matrix.Dense, []int) {
	red, pivots, _ := matrix.RREF(rowsOf(n, vs)) // non-nil input
	ech, _ := matrix.NewFromRows(n, red.RowSlices()[:len(pivots)])

	return ech, pivots
}

// SubmoduleFromSpan returns the submodule spanned by vs. Zero vectors are
// skipped; the chosen basis is the reduced echelon basis, so the result does
// not depend on the order or scaling of vs.
// Errors: ErrDimensionMismatch for a vector of the wrong length.
func (s *Space) SubmoduleFromSpan(vs []Vector) (*Submodule, error) {
	nonzero := make([]Vector, 0, len(vs))
	for i, v := range vs {
		if err := s.Check(v); err != nil {
			return nil, fmt.Errorf("SubmoduleFromSpan: vector %d: %w", i, err)
		}
		if !v.IsZero() {
			nonzero = append(nonzero, v)
		}
	}
	ech, pivots := echelonize(s.n, nonzero)

	return &Submodule{
		space:   s,
		basis:   vectorsOf(ech),
		chosen:  ech,
		echelon: ech,
		pivots:  pivots,
	}, nil
}

// SubmoduleWithBasis returns the submodule with the given basis, kept in the
// given order and scaling.
// Errors: ErrDimensionMismatch, ErrDependent.
func (s *Space) SubmoduleWithBasis(vs []Vector) (*Submodule, error) {
	basis := make([]Vector, len(vs))
	for i, v := range vs {
		if err := s.Check(v); err != nil {
			return nil, fmt.Errorf("SubmoduleWithBasis: vector %d: %w", i, err)
		}
		basis[i] = NewVector(v.c...)
	}
	ech, pivots := echelonize(s.n, basis)
	if len(pivots) != len(basis) {
		return nil, fmt.Errorf("SubmoduleWithBasis: rank %d < %d: %w", len(pivots), len(basis), ErrDependent)
	}

	return &Submodule{
		space:   s,
		basis:   basis,
		chosen:  rowsOf(s.n, basis),
		echelon: ech,
		pivots:  pivots,
		user:    true,
	}, nil
}

// Space returns the ambient space.
func (m *Submodule) Space() *Space { return m.space }

// Dimension returns the number of basis vectors.
func (m *Submodule) Dimension() int { return len(m.basis) }

// Basis returns the chosen basis.
func (m *Submodule) Basis() []Vector {
	out := make([]Vector, len(m.basis))
	copy(out, m.basis) // Vectors are immutable; a shallow copy suffices

	return out
}

// EchelonBasis returns the reduced echelon basis.
func (m *Submodule) EchelonBasis() []Vector { return vectorsOf(m.echelon) }

// BasisMatrix returns a copy of the chosen basis as rows.
func (m *Submodule) BasisMatrix() *matrix.Dense { return m.chosen.Clone().(*matrix.Dense) }

// EchelonMatrix returns a copy of the reduced echelon basis as rows.
func (m *Submodule) EchelonMatrix() *matrix.Dense { return m.echelon.Clone().(*matrix.Dense) }

// HasUserBasis reports whether the chosen basis was supplied by the caller.
func (m *Submodule) HasUserBasis() bool { return m.user }

// reduce subtracts the echelon rows from v at their pivot columns.
// The result is zero iff v lies in the submodule.
func (m *Submodule) reduce(v Vector) Vector {
	r := v.Rats()
	tmp := new(big.Rat)
	for k, p := range m.pivots {
		if r[p].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(r[p])
		row, _ := m.echelon.Row(k)
		for j := range r {
			r[j].Sub(r[j], tmp.Mul(f, row[j]))
		}
	}

	return adopt(r)
}

// Contains reports whether v lies in the submodule. Vectors of the wrong
// length are never contained.
func (m *Submodule) Contains(v Vector) bool {
	if v.Len() != m.space.n {
		return false
	}

	return m.reduce(v).IsZero()
}

// IsSubmoduleOf reports whether m ⊆ o. Submodules of spaces of different
// dimension are never included in one another.
func (m *Submodule) IsSubmoduleOf(o *Submodule) bool {
	if o == nil || m.space.n != o.space.n || m.Dimension() > o.Dimension() {
		return false
	}
	for _, v := range m.basis {
		if !o.Contains(v) {
			return false
		}
	}

	return true
}

// Equal reports whether m and o are the same subspace (bases may differ).
func (m *Submodule) Equal(o *Submodule) bool {
	return o != nil && m.space.n == o.space.n && m.echelon.Equal(o.echelon)
}

// Coordinates returns the coordinates of v relative to the chosen basis.
// Errors: ErrDimensionMismatch, ErrNotInSubmodule.
func (m *Submodule) Coordinates(v Vector) (Vector, error) {
	if err := m.space.Check(v); err != nil {
		return Vector{}, fmt.Errorf("Coordinates: %w", err)
	}
	x, err := matrix.SolveLeft(m.chosen, v.c)
	if err != nil {
		if errors.Is(err, matrix.ErrInconsistent) {
			return Vector{}, fmt.Errorf("Coordinates(%s): %w", v, ErrNotInSubmodule)
		}

		return Vector{}, fmt.Errorf("Coordinates(%s): %w", v, err)
	}

	return adopt(x), nil
}

// FromCoordinates returns Σ c_i·basis_i.
// Errors: ErrDimensionMismatch when len(c) != Dimension().
func (m *Submodule) FromCoordinates(c Vector) (Vector, error) {
	if c.Len() != m.Dimension() {
		return Vector{}, fmt.Errorf("FromCoordinates: got %d coordinates, want %d: %w", c.Len(), m.Dimension(), ErrDimensionMismatch)
	}
	y, err := matrix.VecMat(c.c, m.chosen)
	if err != nil {
		return Vector{}, fmt.Errorf("FromCoordinates: %w", err)
	}

	return adopt(y), nil
}

// Key returns a canonical string for the subspace: equal subspaces of the
// same space have equal keys.
func (m *Submodule) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", m.space.n)
	for i, v := range vectorsOf(m.echelon) {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(v.Key())
	}

	return b.String()
}

// String mirrors the usual free-module description.
func (m *Submodule) String() string {
	kind := "Echelon basis matrix"
	if m.user {
		kind = "User basis matrix"
	}

	return fmt.Sprintf("Vector space of degree %d and dimension %d over %s\n%s:\n%s",
		m.space.n, m.Dimension(), field.Q.Name(), kind, m.chosen)
}
