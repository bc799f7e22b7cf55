// SPDX-License-Identifier: MIT

package subalgebra_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/subalgebra"
	"github.com/katalvlaran/lielath/vecspace"
)

func TestHeisenbergScenario(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()

	pz := sub(t, r, L, el(t, L, "p"), el(t, L, "z"))
	assert.Equal(t, 2, dim(t, pz))
	assert.Equal(t, []string{"p", "z"}, basisStrings(t, pz))

	whole := sub(t, r, L, L.Basis()...)
	assert.NotSame(t, whole, pz)
	mw, err := whole.Module()
	require.NoError(t, err)
	mpz, err := pz.Module()
	require.NoError(t, err)
	assert.False(t, mpz.Equal(mw))

	pq := sub(t, r, L, el(t, L, "p"), el(t, L, "q"))
	assert.Equal(t, 3, dim(t, pq))
	assert.Equal(t, []string{"p", "q", "z"}, basisStrings(t, pq))
	mpq, err := pq.Module()
	require.NoError(t, err)
	assert.True(t, mpq.Equal(mw))
}

func TestFreeNilpotentScenario(t *testing.T) {
	L := freeNilpotent(t)
	r := subalgebra.NewRegistry()

	all := sub(t, r, L, el(t, L, "X_1"), el(t, L, "X_2"))
	assert.Equal(t, 3, dim(t, all))
	assert.Equal(t, []string{"X_1", "X_2", "X_12"}, basisStrings(t, all))

	one := sub(t, r, L, el(t, L, "X_1"))
	assert.Equal(t, 1, dim(t, one))
	in, err := one.Contains(el(t, L, "X_2"))
	require.NoError(t, err)
	assert.False(t, in)
}

func TestOrderIndependence(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	a, b := el(t, L, "p + 2*z"), el(t, L, "q")
	ab, err := a.Add(b)
	require.NoError(t, err)

	s1 := sub(t, r, L, a, b)
	s2 := sub(t, r, L, b, a)
	s3 := sub(t, r, L, a, b, ab)
	assert.Same(t, s1, s2)
	assert.Same(t, s1, s3)

	// A separate registry interns separately but computes the same module.
	s4 := sub(t, subalgebra.NewRegistry(), L, b, a)
	assert.NotSame(t, s1, s4)
	m1, err := s1.Module()
	require.NoError(t, err)
	m4, err := s4.Module()
	require.NoError(t, err)
	assert.True(t, m1.Equal(m4))
}

func TestZeroHandling(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()

	empty := sub(t, r, L)
	zero := sub(t, r, L, L.Zero())
	zeros := sub(t, r, L, L.Zero(), L.Zero())
	assert.Same(t, empty, zero)
	assert.Same(t, empty, zeros)

	assert.Equal(t, 0, dim(t, empty))
	b, err := empty.Basis()
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Empty(t, empty.Generators())
	assert.True(t, empty.Zero().IsZero())
	assert.True(t, empty.AnElement().IsZero())
	assert.Equal(t, "Subalgebra generated by () of H over Rational Field", empty.String())

	x, err := empty.Retract(L.Zero())
	require.NoError(t, err)
	assert.True(t, x.IsZero())

	// Zeros are dropped from generator lists that also carry non-zeros.
	s := sub(t, r, L, L.Zero(), el(t, L, "p"))
	assert.Len(t, s.Generators(), 1)
	assert.Equal(t, "Subalgebra generated by p of H over Rational Field", s.String())
}

func TestNestingFlattening(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()

	outer := sub(t, r, L, el(t, L, "p"), el(t, L, "q"))
	inner := sub(t, r, outer, el(t, L, "z"), el(t, L, "p"))
	assert.Same(t, L, inner.Ambient())

	direct := sub(t, r, L, el(t, L, "p"), el(t, L, "z"))
	assert.Same(t, direct, inner)
	assert.Equal(t, 2, dim(t, inner))

	// Three levels deep still lands on L.
	innermost := sub(t, r, inner, el(t, L, "z"))
	assert.Same(t, L, innermost.Ambient())
	assert.Equal(t, 1, dim(t, innermost))

	_, err := r.Subalgebra(inner, el(t, L, "q"))
	var nis *subalgebra.NotInSubalgebraError
	require.ErrorAs(t, err, &nis)
	assert.Same(t, inner, nis.Subalgebra)
	assert.Equal(t, "q", nis.Element.String())
}

func TestRetractLiftRoundTrip(t *testing.T) {
	L := heisenberg(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "p"), el(t, L, "z"))

	x := el(t, L, "3*p - 1/2*z")
	X, err := s.Retract(x)
	require.NoError(t, err)
	assert.True(t, s.Lift(X).Equal(x))
	assert.Same(t, s, X.Parent())

	y := el(t, L, "p + q")
	_, err = s.Retract(y)
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra)
	assert.EqualError(t, err, "the element p + q is not in Subalgebra generated by (p, z) of H over Rational Field")

	_, ok := s.TryRetract(y)
	assert.False(t, ok)
	Z, ok := s.TryRetract(el(t, L, "z"))
	require.True(t, ok)
	assert.Equal(t, "z", Z.String())

	assert.True(t, s.Lift(nil).IsZero())

	// Lifted elements coerce back into the ambient.
	back, err := L.Coerce(X)
	require.NoError(t, err)
	assert.True(t, back.Equal(x))
}

func TestBracketClosure(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	for _, gens := range [][]string{{"p"}, {"p", "z"}, {"p", "q"}, {"q + z", "p"}} {
		xs := make([]lie.Element, len(gens))
		for i, g := range gens {
			xs[i] = el(t, L, g)
		}
		s := sub(t, r, L, xs...)
		basis, err := s.Basis()
		require.NoError(t, err)
		for _, u := range basis {
			for _, v := range basis {
				w, err := u.Bracket(v)
				require.NoError(t, err, "%s: [%s, %s]", s, u, v)
				assert.Same(t, s, w.Parent())
			}
		}
	}
}

func TestForeignElements(t *testing.T) {
	L := heisenberg(t)
	M := freeNilpotent(t)
	r := subalgebra.NewRegistry()

	_, err := r.Subalgebra(L, el(t, M, "X_1"))
	require.ErrorIs(t, err, subalgebra.ErrForeignElement)

	_, err = r.Subalgebra(nil, el(t, L, "p"))
	require.ErrorIs(t, err, subalgebra.ErrUnsupportedAlgebra)
	var nilSub *subalgebra.Subalgebra
	_, err = r.Subalgebra(nilSub)
	require.ErrorIs(t, err, subalgebra.ErrUnsupportedAlgebra)

	s := sub(t, r, L, el(t, L, "p"))
	_, err = s.Contains(el(t, M, "X_1"))
	require.ErrorIs(t, err, subalgebra.ErrForeignElement)
	_, err = s.Retract(el(t, M, "X_1"))
	require.ErrorIs(t, err, subalgebra.ErrForeignElement)
	_, err = s.Bracket(el(t, M, "X_1"), el(t, L, "p"))
	require.ErrorIs(t, err, subalgebra.ErrForeignElement)
}

func TestFromVector(t *testing.T) {
	L := heisenberg(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "p"), el(t, L, "z"))

	x, err := s.FromVector(vecspace.FromInts(2, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, "2*p + 5*z", x.String())

	y, err := s.FromVector(vecspace.FromInts(2, 5))
	require.NoError(t, err)
	assert.True(t, x.Equal(y))

	_, err = s.FromVector(vecspace.FromInts(0, 1, 0))
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra)

	_, err = s.FromVector(vecspace.FromInts(1))
	require.ErrorIs(t, err, subalgebra.ErrDimensionMismatch)
}

func TestSubalgebraBracket(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	s := sub(t, r, L, el(t, L, "p"), el(t, L, "q"))

	z, err := s.Bracket(el(t, L, "p"), el(t, L, "q"))
	require.NoError(t, err)
	assert.Equal(t, "z", z.String())

	// [p, q] = z lies in <p, z>, but q does not.
	small := sub(t, r, L, el(t, L, "p"), el(t, L, "z"))
	_, err = small.Bracket(el(t, L, "p"), el(t, L, "q"))
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra)
	var nis *subalgebra.NotInSubalgebraError
	require.ErrorAs(t, err, &nis)
	assert.Equal(t, "q", nis.Element.String())

	_, err = small.Bracket(el(t, L, "q"), el(t, L, "p"))
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra)

	zero, err := small.Bracket(el(t, L, "p"), el(t, L, "z"))
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Same(t, small, zero.Parent())
}

func TestElementOperations(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	s := sub(t, r, L, el(t, L, "p"), el(t, L, "z"))
	other := sub(t, r, L, el(t, L, "z"))

	x, err := s.Retract(el(t, L, "2*p + z"))
	require.NoError(t, err)

	v, err := x.ToVector()
	require.NoError(t, err)
	assert.Equal(t, "(2, 1)", v.String())

	mc, err := x.MonomialCoefficients()
	require.NoError(t, err)
	require.Len(t, mc, 2)
	assert.Equal(t, "2", mc[0].RatString())
	assert.Equal(t, "1", mc[1].RatString())

	assert.Equal(t, "2", x.Coefficient(0).RatString())
	assert.Equal(t, "0", x.Coefficient(7).RatString())
	assert.Equal(t, "0", x.Coefficient(-1).RatString())

	zs, err := s.Retract(el(t, L, "z"))
	require.NoError(t, err)
	zo, err := other.Retract(el(t, L, "z"))
	require.NoError(t, err)
	assert.True(t, zs.Equal(zo), "equality is by ambient value")
	assert.False(t, zs.Equal(nil))

	_, err = zs.Add(zo)
	require.ErrorIs(t, err, subalgebra.ErrDifferentParent)
	_, err = zs.Bracket(zo)
	require.ErrorIs(t, err, subalgebra.ErrDifferentParent)

	sum, err := x.Add(zs)
	require.NoError(t, err)
	assert.Equal(t, "2*p + 2*z", sum.String())
	assert.Equal(t, "-4*p - 2*z", x.Scale(ratOf(-2)).String())
	assert.True(t, x.Value().Equal(x.Lift()))
}

func TestElementInput(t *testing.T) {
	L := heisenberg(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "p"), el(t, L, "q"))

	tests := []struct {
		name string
		in   subalgebra.Input
		want string
		err  error
	}{
		{"ambient", subalgebra.FromAmbient(el(t, L, "q")), "q", nil},
		{"coordinates", subalgebra.FromCoordinates(vecspace.FromInts(0, 0, 3)), "3*z", nil},
		{"pair", subalgebra.FromPair(el(t, L, "q"), el(t, L, "p")), "-z", nil},
		{"empty ambient", subalgebra.Input{Kind: subalgebra.AmbientValue}, "", subalgebra.ErrInvalidInput},
		{"half pair", subalgebra.Input{Kind: subalgebra.BracketPair, Left: el(t, L, "p")}, "", subalgebra.ErrInvalidInput},
		{"unknown kind", subalgebra.Input{}, "", subalgebra.ErrInvalidInput},
		{"bad length", subalgebra.FromCoordinates(vecspace.FromInts(1, 2)), "", subalgebra.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, err := s.Element(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, x.String())
		})
	}

	small := sub(t, subalgebra.NewRegistry(), L, el(t, L, "p"), el(t, L, "z"))
	_, err := small.Element(subalgebra.FromPair(el(t, L, "q"), el(t, L, "p")))
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra, "operand outside the subalgebra")

	assert.Equal(t, "BracketPair", subalgebra.BracketPair.String())
	assert.Equal(t, "InputKind(9)", subalgebra.InputKind(9).String())
}

func TestIsSubalgebraOf(t *testing.T) {
	L := heisenberg(t)
	M := freeNilpotent(t)
	r := subalgebra.NewRegistry()
	z := sub(t, r, L, el(t, L, "z"))
	pz := sub(t, r, L, el(t, L, "p"), el(t, L, "z"))
	q := sub(t, r, L, el(t, L, "q"))
	m := sub(t, r, M, el(t, M, "X_12"))

	for _, tc := range []struct {
		a, b *subalgebra.Subalgebra
		want bool
	}{
		{z, pz, true},
		{pz, z, false},
		{q, pz, false},
		{pz, pz, true},
		{z, m, false},
	} {
		got, err := tc.a.IsSubalgebraOf(tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s ⊆ %s", tc.a, tc.b)
	}
	_, err := z.IsSubalgebraOf(nil)
	require.ErrorIs(t, err, subalgebra.ErrUnsupportedAlgebra)
}

func TestAnElementAndGenerators(t *testing.T) {
	L := heisenberg(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "q"), el(t, L, "p"))
	assert.Equal(t, "q", s.AnElement().String())
	gens := s.Generators()
	require.Len(t, gens, 2)
	assert.Equal(t, "p", gens[1].String())
	assert.Equal(t, "Subalgebra generated by (q, p) of H over Rational Field", s.String())
	assert.Same(t, L, s.TopLevel())

	m, err := s.BasisMatrix()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
}

func TestConcurrentFirstUse(t *testing.T) {
	L := freeNilpotent(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "X_1"), el(t, L, "X_2"))

	const workers = 16
	var wg sync.WaitGroup
	results := make([][]*subalgebra.Element, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.Basis()
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 3)
		for k := range results[i] {
			assert.Same(t, results[0][k], results[i][k])
		}
	}
}

func TestRegistryListAndLen(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	assert.Zero(t, r.Len())
	sub(t, r, L, el(t, L, "p"))
	sub(t, r, L, el(t, L, "2*p"))
	sub(t, r, L, el(t, L, "z"))
	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.List(L), 2)
	assert.Empty(t, r.List(freeNilpotent(t)))
}

func TestNewUsesDefaultRegistry(t *testing.T) {
	L := heisenberg(t)
	a, err := subalgebra.New(L, el(t, L, "p"))
	require.NoError(t, err)
	b, err := subalgebra.DefaultRegistry.Subalgebra(L, el(t, L, "-p"))
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNotInSubalgebraErrorMatching(t *testing.T) {
	var err error = &subalgebra.NotInSubalgebraError{}
	assert.True(t, errors.Is(err, subalgebra.ErrNotInSubalgebra))
	assert.False(t, errors.Is(err, subalgebra.ErrForeignElement))
}

func TestSubalgebraOfOwnElements(t *testing.T) {
	L := heisenberg(t)
	r := subalgebra.NewRegistry()
	outer := sub(t, r, L, el(t, L, "p"), el(t, L, "q"))
	basis, err := outer.Basis()
	require.NoError(t, err)

	inner, err := outer.Subalgebra(basis[1:]...)
	require.NoError(t, err)
	assert.Same(t, L, inner.Ambient())
	assert.Equal(t, []string{"q", "z"}, basisStrings(t, inner))
	assert.Same(t, sub(t, r, L, el(t, L, "q"), el(t, L, "z")), inner)

	// Elements of a sibling subalgebra are accepted when they lie inside.
	z, err := sub(t, r, L, el(t, L, "z")).Retract(el(t, L, "z"))
	require.NoError(t, err)
	center, err := outer.Subalgebra(z)
	require.NoError(t, err)
	assert.Equal(t, 1, dim(t, center))

	_, err = inner.Subalgebra(basis[0])
	require.ErrorIs(t, err, subalgebra.ErrNotInSubalgebra)
	_, err = outer.Subalgebra(nil)
	require.ErrorIs(t, err, subalgebra.ErrInvalidInput)
}

func TestNilElementReceivers(t *testing.T) {
	L := heisenberg(t)
	s := sub(t, subalgebra.NewRegistry(), L, el(t, L, "p"))
	var x *subalgebra.Element

	_, err := x.Add(s.Zero())
	require.ErrorIs(t, err, subalgebra.ErrInvalidInput)
	assert.Nil(t, x.Scale(ratOf(2)))
	_, err = x.Bracket(s.Zero())
	require.ErrorIs(t, err, subalgebra.ErrDifferentParent)

	p, err := s.Retract(el(t, L, "p"))
	require.NoError(t, err)
	assert.True(t, p.Scale(nil).IsZero())
}
