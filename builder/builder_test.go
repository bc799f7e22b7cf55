// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/builder"
	"github.com/katalvlaran/lielath/lie"
)

func bracketByName(t *testing.T, L *lie.Algebra, a, b string) lie.Element {
	t.Helper()
	x, err := L.Gen(a)
	require.NoError(t, err)
	y, err := L.Gen(b)
	require.NoError(t, err)
	z, err := L.Bracket(x, y)
	require.NoError(t, err)

	return z
}

func gen(t *testing.T, L *lie.Algebra, name string) lie.Element {
	t.Helper()
	x, err := L.Gen(name)
	require.NoError(t, err)

	return x
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_TooSmall(t *testing.T) {
	cases := map[string]builder.Constructor{
		"abelian":    builder.Abelian(0),
		"heisenberg": builder.Heisenberg(0),
		"nilpotent":  builder.FreeNilpotentStep2(-1),
		"upper":      builder.UpperTriangular(0),
		"strict":     builder.StrictlyUpperTriangular(1),
	}
	for name, ctor := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.Build(ctor)
			require.ErrorIs(t, err, builder.ErrTooSmall)
		})
	}
}

func TestAbelian(t *testing.T) {
	L, err := builder.Build(builder.Abelian(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"X_1", "X_2", "X_3"}, L.BasisNames())
	assert.True(t, bracketByName(t, L, "X_1", "X_3").IsZero())

	L, err = builder.Build(builder.Abelian(2), builder.WithIDScheme(builder.LetterIDFn), builder.WithName("ab"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, L.BasisNames())
	assert.Equal(t, "ab", L.Name())

	L, err = builder.Build(builder.Abelian(2), builder.WithPrefix("v"))
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, L.BasisNames())
}

func TestHeisenberg(t *testing.T) {
	L, err := builder.Build(builder.Heisenberg(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "q1", "q2", "z"}, L.BasisNames())
	assert.Equal(t, "Heisenberg algebra of rank 2", L.Name())

	z := gen(t, L, "z")
	assert.True(t, bracketByName(t, L, "p1", "q1").Equal(z))
	assert.True(t, bracketByName(t, L, "q2", "p2").Equal(z.Neg()))
	assert.True(t, bracketByName(t, L, "p1", "q2").IsZero())
	assert.True(t, bracketByName(t, L, "p1", "z").IsZero())
}

func TestFreeNilpotentStep2(t *testing.T) {
	L, err := builder.Build(builder.FreeNilpotentStep2(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"X_1", "X_2", "X_3", "X_12", "X_13", "X_23"}, L.BasisNames())
	assert.True(t, bracketByName(t, L, "X_1", "X_3").Equal(gen(t, L, "X_13")))
	assert.True(t, bracketByName(t, L, "X_12", "X_3").IsZero())

	big10, err := builder.Build(builder.FreeNilpotentStep2(10), builder.WithTrustedTable())
	require.NoError(t, err)
	assert.Equal(t, 10+45, big10.Dimension())
	assert.True(t, bracketByName(t, big10, "X_1", "X_10").Equal(gen(t, big10, "X_1_10")))
}

func TestFreeNilpotentStep2_NameClash(t *testing.T) {
	clash := func(idx int) string { return "X_" + string(rune('1'+idx)) + "2" }
	_, err := builder.Build(builder.FreeNilpotentStep2(2), builder.WithIDScheme(clash))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, lie.ErrDuplicateBasis)
}

func TestSL2(t *testing.T) {
	L, err := builder.Build(builder.SL2())
	require.NoError(t, err)
	e, f, h := gen(t, L, "e"), gen(t, L, "f"), gen(t, L, "h")
	assert.True(t, bracketByName(t, L, "e", "f").Equal(h))
	assert.True(t, bracketByName(t, L, "h", "e").Equal(e.Scale(big.NewRat(2, 1))))
	assert.True(t, bracketByName(t, L, "h", "f").Equal(f.Scale(big.NewRat(-2, 1))))
}

func TestUpperTriangular(t *testing.T) {
	L, err := builder.Build(builder.UpperTriangular(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"E11", "E12", "E22"}, L.BasisNames())
	e12 := gen(t, L, "E12")
	assert.True(t, bracketByName(t, L, "E11", "E12").Equal(e12))
	assert.True(t, bracketByName(t, L, "E22", "E12").Equal(e12.Neg()))
	assert.True(t, bracketByName(t, L, "E11", "E22").IsZero())
}

func TestStrictlyUpperTriangular(t *testing.T) {
	L, err := builder.Build(builder.StrictlyUpperTriangular(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"E12", "E13", "E23"}, L.BasisNames())
	assert.True(t, bracketByName(t, L, "E12", "E23").Equal(gen(t, L, "E13")))
	assert.True(t, bracketByName(t, L, "E12", "E13").IsZero())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithName("") })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithPrefix("") })
	assert.Panics(t, func() { builder.LetterIDFn(26) })
	assert.Panics(t, func() { builder.MustBuild(builder.Abelian(0)) })
}
