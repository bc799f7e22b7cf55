// SPDX-License-Identifier: MIT

package lie

import (
	"fmt"
	"math/big"
	"unicode"

	"github.com/katalvlaran/lielath/field"
	"github.com/katalvlaran/lielath/vecspace"
)

// Algebra is a finite-dimensional Lie algebra over Q with a named basis.
// It is immutable after New and safe for concurrent use.
type Algebra struct {
	name  string
	names []string
	index map[string]int
	space *vecspace.Space
	table [][]vecspace.Vector // table[i][j] = [e_i, e_j]; full n×n, antisymmetric
	basis []Element
}

// New builds the Lie algebra with the given basis names and brackets.
// Undeclared brackets of basis elements are zero.
//
// Stage 1 (Validate): names are non-empty identifiers and unique.
// Stage 2 (Resolve): every option relation is mapped onto indices and a
// coordinate vector; the antisymmetric partner is filled in.
// Stage 3 (Verify): Jacobi identity on all triples i<j<k.
//
// Errors: ErrInvalidName, ErrDuplicateBasis, ErrUnknownBasis,
// ErrDimensionMismatch, ErrAntisymmetry, ErrJacobi, ErrParse.
func New(name string, basisNames []string, opts ...Option) (*Algebra, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := len(basisNames)
	a := &Algebra{
		name:  name,
		names: make([]string, n),
		index: make(map[string]int, n),
	}
	for i, s := range basisNames {
		if !validName(s) {
			return nil, fmt.Errorf("New(%s): basis %d %q: %w", name, i, s, ErrInvalidName)
		}
		if _, dup := a.index[s]; dup {
			return nil, fmt.Errorf("New(%s): %q: %w", name, s, ErrDuplicateBasis)
		}
		a.names[i] = s
		a.index[s] = i
	}
	a.space, _ = vecspace.NewSpace(n) // n >= 0

	a.table = make([][]vecspace.Vector, n)
	declared := make([][]bool, n)
	for i := range a.table {
		a.table[i] = make([]vecspace.Vector, n)
		declared[i] = make([]bool, n)
		for j := range a.table[i] {
			a.table[i][j] = vecspace.Zero(n)
		}
	}

	a.basis = make([]Element, n)
	for i := range a.basis {
		u, _ := vecspace.Unit(n, i)
		a.basis[i] = Element{parent: a, v: u}
	}

	for _, r := range o.relations {
		i, j, v, err := a.resolve(r)
		if err != nil {
			return nil, fmt.Errorf("New(%s): %w", name, err)
		}
		if err = a.declare(declared, i, j, v); err != nil {
			return nil, fmt.Errorf("New(%s): %w", name, err)
		}
	}

	if o.jacobi {
		if err := a.checkJacobi(); err != nil {
			return nil, fmt.Errorf("New(%s): %w", name, err)
		}
	}

	return a, nil
}

// validName accepts identifiers: a letter or '_' followed by letters,
// digits or '_'.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// resolve maps a declared relation onto (i, j, [e_i,e_j]).
func (a *Algebra) resolve(r relation) (int, int, vecspace.Vector, error) {
	n := len(a.names)
	if !r.byName {
		if r.i < 0 || r.i >= n || r.j < 0 || r.j >= n {
			return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket (%d,%d): %w", r.i, r.j, ErrUnknownBasis)
		}
		if len(r.coeffs) != n {
			return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket (%d,%d): %d coefficients: %w", r.i, r.j, len(r.coeffs), ErrDimensionMismatch)
		}

		return r.i, r.j, vecspace.NewVector(r.coeffs...), nil
	}

	i, ok := a.index[r.a]
	if !ok {
		return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket [%s,%s]: %q: %w", r.a, r.b, r.a, ErrUnknownBasis)
	}
	j, ok := a.index[r.b]
	if !ok {
		return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket [%s,%s]: %q: %w", r.a, r.b, r.b, ErrUnknownBasis)
	}
	if r.isExpr {
		x, err := a.Parse(r.expr)
		if err != nil {
			return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket [%s,%s]: %w", r.a, r.b, err)
		}

		return i, j, x.v, nil
	}
	c := make([]*big.Rat, n)
	for k := range c {
		c[k] = new(big.Rat)
	}
	for s, x := range r.terms {
		k, ok := a.index[s]
		if !ok {
			return 0, 0, vecspace.Vector{}, fmt.Errorf("bracket [%s,%s]: term %q: %w", r.a, r.b, s, ErrUnknownBasis)
		}
		c[k] = field.Q.Copy(x)
	}

	return i, j, vecspace.NewVector(c...), nil
}

// declare stores [e_i,e_j] = v and [e_j,e_i] = -v, rejecting conflicts.
func (a *Algebra) declare(declared [][]bool, i, j int, v vecspace.Vector) error {
	if i == j {
		if !v.IsZero() {
			return fmt.Errorf("[%s,%s] = %s: %w", a.names[i], a.names[j], v, ErrAntisymmetry)
		}

		return nil
	}
	if declared[i][j] && !a.table[i][j].Equal(v) {
		return fmt.Errorf("[%s,%s] declared twice with different values: %w", a.names[i], a.names[j], ErrAntisymmetry)
	}
	a.table[i][j] = v
	a.table[j][i] = v.Neg()
	declared[i][j], declared[j][i] = true, true

	return nil
}

// checkJacobi verifies [e_i,[e_j,e_k]] + [e_j,[e_k,e_i]] + [e_k,[e_i,e_j]] = 0
// for all i<j<k. Triples with a repeated index follow from antisymmetry.
// Complexity: O(n^3) triples × O(n^2) per bracket.
func (a *Algebra) checkJacobi() error {
	n := len(a.names)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				s := a.bracket(a.basis[i].v, a.table[j][k])
				t := a.bracket(a.basis[j].v, a.table[k][i])
				u := a.bracket(a.basis[k].v, a.table[i][j])
				sum, _ := s.Add(t)
				sum, _ = sum.Add(u)
				if !sum.IsZero() {
					return fmt.Errorf("triple (%s,%s,%s): %w", a.names[i], a.names[j], a.names[k], ErrJacobi)
				}
			}
		}
	}

	return nil
}

// bracket computes [x, y] = Σ_{i,j} x_i y_j [e_i, e_j] on length-checked vectors.
func (a *Algebra) bracket(x, y vecspace.Vector) vecspace.Vector {
	n := len(a.names)
	acc := make([]*big.Rat, n)
	for k := range acc {
		acc[k] = new(big.Rat)
	}
	xs, ys := x.Rats(), y.Rats()
	coef := new(big.Rat)
	tmp := new(big.Rat)
	for i, xi := range xs {
		if xi.Sign() == 0 {
			continue
		}
		for j, yj := range ys {
			if yj.Sign() == 0 || i == j {
				continue
			}
			col := a.table[i][j]
			if col.IsZero() {
				continue
			}
			coef.Mul(xi, yj)
			for k, c := range col.Rats() {
				if c.Sign() != 0 {
					acc[k].Add(acc[k], tmp.Mul(coef, c))
				}
			}
		}
	}

	return vecspace.NewVector(acc...)
}

// Name returns the algebra's display name.
func (a *Algebra) Name() string { return a.name }

// String implements fmt.Stringer.
func (a *Algebra) String() string {
	return fmt.Sprintf("%s over %s", a.name, field.Q.Name())
}

// Dimension returns n.
func (a *Algebra) Dimension() int { return len(a.names) }

// BaseField returns the coefficient field.
func (a *Algebra) BaseField() field.Rationals { return field.Q }

// Module returns the coordinate space Q^n.
func (a *Algebra) Module() *vecspace.Space { return a.space }

// TopLevel returns a itself. Algebras defined by structure constants are
// their own ambient; subalgebras report the algebra they were cut from.
func (a *Algebra) TopLevel() *Algebra { return a }

// BasisNames returns a copy of the basis names in index order.
func (a *Algebra) BasisNames() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// Basis returns the basis elements in index order.
func (a *Algebra) Basis() []Element {
	out := make([]Element, len(a.basis))
	copy(out, a.basis)

	return out
}

// BasisElement returns e_i, or ErrUnknownBasis.
func (a *Algebra) BasisElement(i int) (Element, error) {
	if i < 0 || i >= len(a.basis) {
		return Element{}, fmt.Errorf("BasisElement(%d): %w", i, ErrUnknownBasis)
	}

	return a.basis[i], nil
}

// Gen returns the basis element called name, or ErrUnknownBasis.
func (a *Algebra) Gen(name string) (Element, error) {
	i, ok := a.index[name]
	if !ok {
		return Element{}, fmt.Errorf("Gen(%q): %w", name, ErrUnknownBasis)
	}

	return a.basis[i], nil
}

// Zero returns the zero element.
func (a *Algebra) Zero() Element {
	return Element{parent: a, v: a.space.Zero()}
}

// FromVector returns the element with coordinates v.
func (a *Algebra) FromVector(v vecspace.Vector) (Element, error) {
	if err := a.space.Check(v); err != nil {
		return Element{}, fmt.Errorf("FromVector: %w: %w", ErrDimensionMismatch, err)
	}

	return Element{parent: a, v: v}, nil
}

// Bracket returns [x, y]. Both operands must belong to a.
func (a *Algebra) Bracket(x, y Element) (Element, error) {
	if err := a.own("Bracket", x); err != nil {
		return Element{}, err
	}
	if err := a.own("Bracket", y); err != nil {
		return Element{}, err
	}

	return Element{parent: a, v: a.bracket(x.v, y.v)}, nil
}

// BracketVectors returns the coordinates of [x, y] for coordinate vectors.
func (a *Algebra) BracketVectors(x, y vecspace.Vector) (vecspace.Vector, error) {
	if err := a.space.Check(x); err != nil {
		return vecspace.Vector{}, fmt.Errorf("BracketVectors: %w: %w", ErrDimensionMismatch, err)
	}
	if err := a.space.Check(y); err != nil {
		return vecspace.Vector{}, fmt.Errorf("BracketVectors: %w: %w", ErrDimensionMismatch, err)
	}

	return a.bracket(x, y), nil
}

// StructureConstant returns c_ij^k, or ErrUnknownBasis for bad indices.
func (a *Algebra) StructureConstant(i, j, k int) (*big.Rat, error) {
	n := len(a.names)
	if i < 0 || i >= n || j < 0 || j >= n || k < 0 || k >= n {
		return nil, fmt.Errorf("StructureConstant(%d,%d,%d): %w", i, j, k, ErrUnknownBasis)
	}

	return a.table[i][j].At(k)
}

// Coerce converts x into an element of a.
// Accepted: an Element of a; a vecspace.Vector of length n; a string in
// Parse syntax; anything exposing Lift() Element whose result belongs to a.
func (a *Algebra) Coerce(x any) (Element, error) {
	switch v := x.(type) {
	case Element:
		if err := a.own("Coerce", v); err != nil {
			return Element{}, err
		}

		return v, nil
	case vecspace.Vector:
		return a.FromVector(v)
	case string:
		return a.Parse(v)
	case interface{ Lift() Element }:
		return a.Coerce(v.Lift())
	default:
		return Element{}, fmt.Errorf("Coerce(%T): %w", x, ErrInvalidInput)
	}
}

// own checks that x belongs to a.
func (a *Algebra) own(op string, x Element) error {
	if x.parent != a {
		return fmt.Errorf("%s(%s): not in %s: %w", op, x, a.name, ErrForeignElement)
	}

	return nil
}
