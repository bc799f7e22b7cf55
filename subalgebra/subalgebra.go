// SPDX-License-Identifier: MIT
// Package: lielath/subalgebra
//
// subalgebra.go: the Subalgebra type: lazy closure, membership, coercions.
//
// Memoization:
//   • The closure is computed on first demand, inside a singleflight group,
//     and published through an atomic pointer. Concurrent first callers
//     share one computation; later callers read the pointer without locking.
//   • A failed computation is not published, so the next call retries it.

package subalgebra

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/vecspace"
)

// Subalgebra is the Lie subalgebra of a top-level algebra generated by a
// finite set of its elements. Obtain one with New or Registry.Subalgebra.
// A Subalgebra is immutable apart from internal caches and safe for
// concurrent use.
type Subalgebra struct {
	ambient *lie.Algebra
	gens    []lie.Element
	key     string
	log     logr.Logger
	reg     *Registry
	zero    *Element

	group singleflight.Group
	state atomic.Pointer[closed]

	idealMu    sync.Mutex
	idealCache map[string]bool
	idealGroup singleflight.Group
}

// closed is the published result of the closure.
type closed struct {
	module *vecspace.Submodule
	basis  []*Element
}

func newSubalgebra(r *Registry, ambient *lie.Algebra, gens []lie.Element, key string) *Subalgebra {
	s := &Subalgebra{
		ambient:    ambient,
		gens:       gens,
		key:        key,
		log:        r.log,
		reg:        r,
		idealCache: make(map[string]bool),
	}
	s.zero = &Element{parent: s, value: ambient.Zero()}

	return s
}

// resolve returns the memoized closure, computing it at most once.
func (s *Subalgebra) resolve() (*closed, error) {
	if c := s.state.Load(); c != nil {
		return c, nil
	}
	v, err, _ := s.group.Do("closure", func() (any, error) {
		if c := s.state.Load(); c != nil {
			return c, nil
		}
		vs := make([]vecspace.Vector, len(s.gens))
		for i, g := range s.gens {
			vs[i] = g.Vector()
		}
		m, st, err := closure(s.ambient, vs, s.log)
		if err != nil {
			return nil, err
		}
		c := &closed{module: m, basis: make([]*Element, m.Dimension())}
		for i, b := range m.Basis() {
			x, err := s.ambient.FromVector(b)
			if err != nil {
				return nil, err
			}
			c.basis[i] = &Element{parent: s, value: x}
		}
		s.state.Store(c)
		s.log.V(1).Info("closure computed", "subalgebra", s.String(),
			"dimension", m.Dimension(), "passes", st.passes, "brackets", st.brackets)

		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("closure of %s: %w", s, err)
	}

	return v.(*closed), nil
}

// Ambient returns the top-level algebra.
func (s *Subalgebra) Ambient() *lie.Algebra { return s.ambient }

// TopLevel returns the top-level algebra; it makes *Subalgebra a Parent.
func (s *Subalgebra) TopLevel() *lie.Algebra { return s.ambient }

// Generators returns the normalized generators (zeros removed) in the order
// they were first given.
func (s *Subalgebra) Generators() []lie.Element {
	out := make([]lie.Element, len(s.gens))
	copy(out, s.gens)

	return out
}

// Basis returns the echelon basis of the closure, wrapped as elements of s.
func (s *Subalgebra) Basis() ([]*Element, error) {
	c, err := s.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]*Element, len(c.basis))
	copy(out, c.basis)

	return out, nil
}

// BasisElements returns the basis lifted to the ambient algebra.
func (s *Subalgebra) BasisElements() ([]lie.Element, error) {
	c, err := s.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]lie.Element, len(c.basis))
	for i, b := range c.basis {
		out[i] = b.value
	}

	return out, nil
}

// Module returns the closure as a submodule of the ambient coordinate space.
func (s *Subalgebra) Module() (*vecspace.Submodule, error) {
	c, err := s.resolve()
	if err != nil {
		return nil, err
	}

	return c.module, nil
}

// BasisMatrix returns the d×n matrix whose rows are the basis in ambient
// coordinates.
func (s *Subalgebra) BasisMatrix() (*matrix.Dense, error) {
	c, err := s.resolve()
	if err != nil {
		return nil, err
	}

	return c.module.BasisMatrix(), nil
}

// Dimension returns the dimension of the closure.
func (s *Subalgebra) Dimension() (int, error) {
	c, err := s.resolve()
	if err != nil {
		return 0, err
	}

	return c.module.Dimension(), nil
}

// Contains reports whether x lies in s.
// Errors: ErrForeignElement when x belongs to another algebra.
func (s *Subalgebra) Contains(x lie.Element) (bool, error) {
	if x.Parent() != s.ambient {
		return false, fmt.Errorf("Contains(%s): %w", x, ErrForeignElement)
	}
	c, err := s.resolve()
	if err != nil {
		return false, err
	}

	return c.module.Contains(x.Vector()), nil
}

// Retract wraps x as an element of s.
// Errors: ErrForeignElement; *NotInSubalgebraError when x is outside s.
func (s *Subalgebra) Retract(x lie.Element) (*Element, error) {
	in, err := s.Contains(x)
	if err != nil {
		return nil, err
	}
	if !in {
		return nil, &NotInSubalgebraError{Element: x, Subalgebra: s}
	}

	return &Element{parent: s, value: x}, nil
}

// TryRetract is Retract reporting failure as ok == false.
func (s *Subalgebra) TryRetract(x lie.Element) (*Element, bool) {
	e, err := s.Retract(x)

	return e, err == nil
}

// Lift returns the ambient value of X. It never fails; a nil X lifts to the
// ambient zero.
func (s *Subalgebra) Lift(X *Element) lie.Element {
	if X == nil {
		return s.ambient.Zero()
	}

	return X.value
}

// FromVector builds an element from coordinates. A vector of the ambient
// length is read in ambient coordinates and retracted; a vector of the
// subalgebra's length is read against Basis(). When both lengths coincide the
// ambient reading wins.
//
// Errors: ErrDimensionMismatch for any other length; *NotInSubalgebraError.
func (s *Subalgebra) FromVector(v vecspace.Vector) (*Element, error) {
	if v.Len() == s.ambient.Dimension() {
		x, err := s.ambient.FromVector(v)
		if err != nil {
			return nil, fmt.Errorf("FromVector: %w", err)
		}

		return s.Retract(x)
	}
	c, err := s.resolve()
	if err != nil {
		return nil, err
	}
	if v.Len() != c.module.Dimension() {
		return nil, fmt.Errorf("FromVector: length %d, want %d or %d: %w",
			v.Len(), s.ambient.Dimension(), c.module.Dimension(), ErrDimensionMismatch)
	}
	w, err := c.module.FromCoordinates(v)
	if err != nil {
		return nil, fmt.Errorf("FromVector: %w: %w", ErrDimensionMismatch, err)
	}
	x, err := s.ambient.FromVector(w)
	if err != nil {
		return nil, fmt.Errorf("FromVector: %w", err)
	}

	return &Element{parent: s, value: x}, nil
}

// Bracket returns [a, b] for two ambient elements that both lie in s.
// Errors: ErrForeignElement; *NotInSubalgebraError when either operand is
// outside s, even if their bracket is not.
func (s *Subalgebra) Bracket(a, b lie.Element) (*Element, error) {
	if a.Parent() != s.ambient || b.Parent() != s.ambient {
		return nil, fmt.Errorf("Bracket(%s, %s): %w", a, b, ErrForeignElement)
	}
	x, err := s.Retract(a)
	if err != nil {
		return nil, err
	}
	y, err := s.Retract(b)
	if err != nil {
		return nil, err
	}

	return x.Bracket(y)
}

// Subalgebra returns the subalgebra of s generated by gens, interned in the
// registry that produced s. Elements of other subalgebras of the same
// ambient are accepted when they lie in s.
// Errors: ErrInvalidInput for a nil element, plus those of
// Registry.Subalgebra.
func (s *Subalgebra) Subalgebra(gens ...*Element) (*Subalgebra, error) {
	values := make([]lie.Element, len(gens))
	for i, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("Subalgebra: generator %d: %w", i, ErrInvalidInput)
		}
		values[i] = g.value
	}

	return s.reg.Subalgebra(s, values...)
}

// Zero returns the zero element of s.
func (s *Subalgebra) Zero() *Element { return s.zero }

// AnElement returns the first generator, or zero when there is none.
func (s *Subalgebra) AnElement() *Element {
	if len(s.gens) == 0 {
		return s.zero
	}

	return &Element{parent: s, value: s.gens[0]}
}

// IsSubalgebraOf reports whether s ⊆ other. Subalgebras of different
// ambients are never contained in one another.
func (s *Subalgebra) IsSubalgebraOf(other *Subalgebra) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("IsSubalgebraOf: %w", ErrUnsupportedAlgebra)
	}
	if s == other {
		return true, nil
	}
	if s.ambient != other.ambient {
		return false, nil
	}
	a, err := s.resolve()
	if err != nil {
		return false, err
	}
	b, err := other.resolve()
	if err != nil {
		return false, err
	}

	return a.module.IsSubmoduleOf(b.module), nil
}

// String renders "Subalgebra generated by (x, y) of <ambient>"; a single
// generator is printed without parentheses.
func (s *Subalgebra) String() string {
	names := make([]string, len(s.gens))
	for i, g := range s.gens {
		names[i] = g.String()
	}
	gens := "(" + strings.Join(names, ", ") + ")"
	if len(names) == 1 {
		gens = names[0]
	}

	return fmt.Sprintf("Subalgebra generated by %s of %s", gens, s.ambient)
}
