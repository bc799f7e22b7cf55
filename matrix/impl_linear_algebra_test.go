// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/matrix"
)

func TestMul(t *testing.T) {
	a := mustInts(t, 2, []int64{1, 2}, []int64{0, 1})
	b := mustInts(t, 3, []int64{1, 0, 1}, []int64{2, 1, 0})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustInts(t, 3, []int64{5, 2, 1}, []int64{2, 1, 0})))

	// fallback path must agree with the fast path
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.True(t, got.Equal(slow))

	_, err = matrix.Mul(b, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := mustInts(t, 3, []int64{1, 2, 3})
	tr, err := matrix.T(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.True(t, tr.Equal(mustInts(t, 1, []int64{1}, []int64{2}, []int64{3})))
}

func TestMatVecAndVecMat(t *testing.T) {
	m := mustInts(t, 2, []int64{1, 2}, []int64{3, 4})

	y, err := matrix.MatVec(m, rats(1, 1))
	require.NoError(t, err)
	requireRats(t, rats(3, 7), y)

	z, err := matrix.VecMat(rats(1, 1), m)
	require.NoError(t, err)
	requireRats(t, rats(4, 6), z)

	_, err = matrix.MatVec(m, rats(1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VecMat(rats(1, 2, 3), m)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRREF(t *testing.T) {
	m := mustInts(t, 3,
		[]int64{0, 2, 4},
		[]int64{1, 1, 1},
		[]int64{1, 2, 3},
	)
	r, pivots, err := matrix.RREF(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pivots)
	assert.True(t, r.Equal(mustInts(t, 3,
		[]int64{1, 0, -1},
		[]int64{0, 1, 2},
		[]int64{0, 0, 0},
	)))

	// the input is untouched
	assert.True(t, m.Equal(mustInts(t, 3, []int64{0, 2, 4}, []int64{1, 1, 1}, []int64{1, 2, 3})))

	rank, err := matrix.Rank(hide{m})
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
}

func TestEchelonRows_CanonicalForSameSpan(t *testing.T) {
	a := mustInts(t, 3, []int64{1, 0, 0}, []int64{0, 0, 1})
	b := mustInts(t, 3, []int64{2, 0, 3}, []int64{0, 0, -5}, []int64{1, 0, 1})

	ea, err := matrix.EchelonRows(a)
	require.NoError(t, err)
	eb, err := matrix.EchelonRows(b)
	require.NoError(t, err)
	assert.True(t, ea.Equal(eb))

	same, err := matrix.RowSpaceEqual(a, b)
	require.NoError(t, err)
	assert.True(t, same)

	empty, _ := matrix.NewDense(0, 3)
	ee, err := matrix.EchelonRows(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, ee.Rows())
}

func TestSolveLeft(t *testing.T) {
	b := mustInts(t, 3, []int64{1, 0, 0}, []int64{0, 1, 1})

	x, err := matrix.SolveLeft(b, rats(2, 5, 5))
	require.NoError(t, err)
	requireRats(t, rats(2, 5), x)

	_, err = matrix.SolveLeft(b, rats(0, 1, 0))
	assert.ErrorIs(t, err, matrix.ErrInconsistent)

	dep := mustInts(t, 2, []int64{1, 0}, []int64{2, 0})
	_, err = matrix.SolveLeft(dep, rats(1, 0))
	assert.ErrorIs(t, err, matrix.ErrRankDeficient)

	_, err = matrix.SolveLeft(b, rats(1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, _ := matrix.NewDense(0, 2)
	x, err = matrix.SolveLeft(empty, rats(0, 0))
	require.NoError(t, err)
	assert.Empty(t, x)
	_, err = matrix.SolveLeft(empty, rats(0, 1))
	assert.ErrorIs(t, err, matrix.ErrInconsistent)
}

func TestSolveLeft_Fractions(t *testing.T) {
	b := mustInts(t, 2, []int64{4, 0}, []int64{0, 3})
	x, err := matrix.SolveLeft(b, rats(1, 1))
	require.NoError(t, err)
	requireRats(t, []*big.Rat{big.NewRat(1, 4), big.NewRat(1, 3)}, x)
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	m := mustInts(t, 3, []int64{1, 2, 3}, []int64{4, 5, 6})
	p, err := matrix.Product(m, I)
	require.NoError(t, err)
	assert.True(t, p.Equal(m))
}
