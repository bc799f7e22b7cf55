// SPDX-License-Identifier: MIT
// Package matrix: exact linear-algebra kernels.
//
// Purpose:
//   - Products (Mul, MatVec, VecMat) and Transpose over *big.Rat.
//   - Gauss–Jordan elimination (RREF) and everything derived from it:
//     Rank, EchelonRows, SolveLeft.
//
// Determinism:
//   - Pivot search always takes the first non-zero entry at or below the
//     current row, so the reduced form is a pure function of the input.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opRREF      = "RREF"
	opSolveLeft = "SolveLeft"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cells copies any Matrix into a fresh [][]*big.Rat work buffer.
// *Dense takes a direct path; other implementations go through At.
func cells(m Matrix) ([][]*big.Rat, error) {
	r, c := m.Rows(), m.Cols()
	out := make([][]*big.Rat, r)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = make([]*big.Rat, c)
			for j := 0; j < c; j++ {
				out[i][j] = new(big.Rat).Set(d.data[i*c+j])
			}
		}

		return out, nil
	}
	for i := 0; i < r; i++ {
		out[i] = make([]*big.Rat, c)
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// fromCells adopts a work buffer as a Dense without copying.
func fromCells(cols int, rows [][]*big.Rat) *Dense {
	data := make([]*big.Rat, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense{r: len(rows), c: cols, data: data}
}

// Mul returns the product a×b.
// Complexity: O(r·n·c) rational multiply-adds.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ac, err := cells(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bc, err := cells(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, _ := NewDense(a.Rows(), b.Cols()) // shape already validated
	tmp := new(big.Rat)
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			if ac[i][k].Sign() == 0 {
				continue
			}
			for j := 0; j < b.Cols(); j++ {
				tmp.Mul(ac[i][k], bc[k][j])
				out.data[i*out.c+j].Add(out.data[i*out.c+j], tmp)
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	mc, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, _ := NewDense(m.Cols(), m.Rows())
	for i := range mc {
		for j := range mc[i] {
			out.data[j*out.c+i].Set(mc[i][j])
		}
	}

	return out, nil
}

// MatVec returns y = m·x (x is a column vector of length Cols).
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(len(x), m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	mc, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]*big.Rat, m.Rows())
	tmp := new(big.Rat)
	for i := range mc {
		y[i] = new(big.Rat)
		for j, v := range mc[i] {
			if x[j] == nil {
				continue
			}
			y[i].Add(y[i], tmp.Mul(v, x[j]))
		}
	}

	return y, nil
}

// VecMat returns y = x·m (x is a row vector of length Rows): the linear
// combination Σ x_i · row_i.
func VecMat(x []*big.Rat, m Matrix) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(len(x), m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	mc, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	y := make([]*big.Rat, m.Cols())
	for j := range y {
		y[j] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, row := range mc {
		if x[i] == nil || x[i].Sign() == 0 {
			continue
		}
		for j, v := range row {
			y[j].Add(y[j], tmp.Mul(x[i], v))
		}
	}

	return y, nil
}

// rref reduces rows in place to reduced row echelon form and returns the
// pivot columns in increasing order.
// Stage 1: for each column, pick the first non-zero entry at or below the
// current row and swap it up.
// Stage 2: scale the pivot row so the pivot is 1.
// Stage 3: clear the pivot column in every other row.
func rref(rows [][]*big.Rat, cols int) []int {
	pivots := make([]int, 0, len(rows))
	lead := 0
	tmp := new(big.Rat)
	for col := 0; col < cols && lead < len(rows); col++ {
		p := -1
		for i := lead; i < len(rows); i++ {
			if rows[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		rows[lead], rows[p] = rows[p], rows[lead]

		inv := new(big.Rat).Inv(rows[lead][col])
		for j := col; j < cols; j++ {
			rows[lead][j].Mul(rows[lead][j], inv)
		}

		for i := range rows {
			if i == lead || rows[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(rows[i][col])
			for j := col; j < cols; j++ {
				rows[i][j].Sub(rows[i][j], tmp.Mul(f, rows[lead][j]))
			}
		}
		pivots = append(pivots, col)
		lead++
	}

	return pivots
}

// RREF returns the reduced row echelon form of m together with its pivot
// columns. Zero rows end up at the bottom.
// Complexity: O(r·c·min(r,c)).
func RREF(m Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	work, err := cells(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	pivots := rref(work, m.Cols())

	return fromCells(m.Cols(), work), pivots, nil
}

// Rank returns the number of pivots of m.
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}

// EchelonRows returns the non-zero rows of RREF(m) as a rank×Cols matrix.
// Two matrices have the same row space iff their EchelonRows are equal.
func EchelonRows(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	work, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	pivots := rref(work, m.Cols())

	return fromCells(m.Cols(), work[:len(pivots)]), nil
}

// SolveLeft returns the unique x with x·B = v.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != B.Cols.
//   - ErrInconsistent when v is not in the row space of B.
//   - ErrRankDeficient when v is in the row space but the rows of B are
//     dependent (x would not be unique).
//
// Complexity: O(c·r·min(r,c)) for the elimination on [Bᵀ | v].
func SolveLeft(b Matrix, v []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolveLeft, err)
	}
	if err := ValidateVecLen(len(v), b.Cols()); err != nil {
		return nil, matrixErrorf(opSolveLeft, err)
	}
	bc, err := cells(b)
	if err != nil {
		return nil, matrixErrorf(opSolveLeft, err)
	}

	// Augmented system [Bᵀ | v]: one equation per ambient coordinate.
	r, c := b.Rows(), b.Cols()
	aug := make([][]*big.Rat, c)
	for j := 0; j < c; j++ {
		aug[j] = make([]*big.Rat, r+1)
		for i := 0; i < r; i++ {
			aug[j][i] = new(big.Rat).Set(bc[i][j])
		}
		aug[j][r] = new(big.Rat)
		if v[j] != nil {
			aug[j][r].Set(v[j])
		}
	}
	pivots := rref(aug, r+1)

	if len(pivots) > 0 && pivots[len(pivots)-1] == r {
		return nil, matrixErrorf(opSolveLeft, ErrInconsistent)
	}
	if len(pivots) < r {
		return nil, matrixErrorf(opSolveLeft, ErrRankDeficient)
	}

	// Full column rank on the Bᵀ block: pivots are exactly 0..r-1.
	x := make([]*big.Rat, r)
	for i := 0; i < r; i++ {
		x[i] = new(big.Rat).Set(aug[i][r])
	}

	return x, nil
}
