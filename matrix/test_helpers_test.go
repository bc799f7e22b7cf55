// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At-based fallback path.
type hide struct{ matrix.Matrix }

// mustInts builds a Dense from integer rows or fails the test.
func mustInts(t *testing.T, cols int, rows ...[]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(cols, rows)
	require.NoError(t, err)

	return m
}

// rats converts integers to fresh rationals.
func rats(xs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, x := range xs {
		out[i] = big.NewRat(x, 1)
	}

	return out
}

// requireRats asserts element-wise equality of rational slices.
func requireRats(t *testing.T, want, got []*big.Rat) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Zerof(t, want[i].Cmp(got[i]), "index %d: want %s got %s", i, want[i], got[i])
	}
}
