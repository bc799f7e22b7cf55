// SPDX-License-Identifier: MIT

// Package matrix provides exact dense matrices over the rationals and the
// linear-algebra kernels the rest of lielath is built on.
//
// What:
//
//   - Dense: row-major storage of *big.Rat cells behind the Matrix interface.
//   - Kernels: Mul, Transpose, MatVec, VecMat.
//   - Elimination: RREF (reduced row echelon form with pivot columns), Rank,
//     EchelonRows and SolveLeft (x·B = v for a full-row-rank B).
//
// Why exact:
//
//	Submodules are compared through their reduced echelon bases. With
//	floating point two spans of the same subspace could disagree in the last
//	ulp, which would break canonical keys and containment tests. Rational
//	arithmetic keeps every echelon form unique.
//
// Shapes:
//
//	Zero-row matrices are legal: the zero subspace of Q^n has an empty basis
//	and its basis matrix is 0×n. Negative sizes fail with ErrBadShape.
//
// Complexity:
//
//   - At/Set: O(1) plus the cost of copying one rational.
//   - RREF: O(r·c·min(r,c)) rational operations.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix,
//     ErrInconsistent, ErrRankDeficient.
package matrix
