// SPDX-License-Identifier: MIT

package subalgebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/builder"
	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/subalgebra"
)

// heisenberg returns the 3-dimensional algebra p, q, z with [p,q] = z.
func heisenberg(t testing.TB) *lie.Algebra {
	t.Helper()
	L, err := lie.New("H", []string{"p", "q", "z"}, lie.WithRelation("p", "q", "z"))
	require.NoError(t, err)

	return L
}

// freeNilpotent returns X_1, X_2, X_12 with [X_1, X_2] = X_12.
func freeNilpotent(t testing.TB) *lie.Algebra {
	t.Helper()
	L, err := builder.Build(builder.FreeNilpotentStep2(2))
	require.NoError(t, err)

	return L
}

func el(t testing.TB, L *lie.Algebra, expr string) lie.Element {
	t.Helper()
	x, err := L.Parse(expr)
	require.NoError(t, err)

	return x
}

func sub(t testing.TB, r *subalgebra.Registry, p subalgebra.Parent, gens ...lie.Element) *subalgebra.Subalgebra {
	t.Helper()
	s, err := r.Subalgebra(p, gens...)
	require.NoError(t, err)

	return s
}

func dim(t testing.TB, s *subalgebra.Subalgebra) int {
	t.Helper()
	d, err := s.Dimension()
	require.NoError(t, err)

	return d
}

func basisStrings(t testing.TB, s *subalgebra.Subalgebra) []string {
	t.Helper()
	b, err := s.Basis()
	require.NoError(t, err)
	out := make([]string, len(b))
	for i, x := range b {
		out[i] = x.String()
	}

	return out
}

func ratOf(n int64) *big.Rat { return big.NewRat(n, 1) }
