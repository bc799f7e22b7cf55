// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// impl_triangular.go: upper-triangular matrix Lie algebras b(n) and n(n).
//
// Basis: elementary matrices E_ij restricted to i ≤ j (b) or i < j (n),
// ordered row-major. Bracket is the commutator
//
//	[E_ij, E_kl] = δ_jk·E_il − δ_li·E_kj.
//
// Stage 1: enumerate admissible (i,j) and name them "E" + index pair.
// Stage 2: for every basis pair a < b accumulate the commutator terms.
// Stage 3: drop pairs whose commutator vanishes.
//
// Complexity: O(m^2) with m = dim; both results stay inside the family
// because upper-triangularity is preserved by products.

package builder

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/lielath/lie"
)

// UpperTriangular returns a Constructor for the Lie algebra of n×n
// upper-triangular matrices (dimension n(n+1)/2).
//
// Errors: ErrTooSmall if n < 1.
func UpperTriangular(n int) Constructor {
	return triangular(methodUpperTriangular, n, true)
}

// StrictlyUpperTriangular returns a Constructor for the nilpotent algebra of
// strictly upper-triangular n×n matrices (dimension n(n-1)/2).
//
// Errors: ErrTooSmall if n < 2.
func StrictlyUpperTriangular(n int) Constructor {
	return triangular(methodStrictlyUpperTri, n, false)
}

type cell struct{ i, j int }

func triangular(method string, n int, diagonal bool) Constructor {
	return func(_ builderConfig) (table, error) {
		minN := 2
		if diagonal {
			minN = 1
		}
		if n < minN {
			return table{}, builderErrorf(method, fmt.Sprintf("n=%d", n), ErrTooSmall)
		}

		// Stage 1
		var cells []cell
		var basis []string
		names := make(map[cell]string)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if i == j && !diagonal {
					continue
				}
				c := cell{i, j}
				name := "E" + joinIndices(i, j, n)
				cells = append(cells, c)
				basis = append(basis, name)
				names[c] = name
			}
		}

		// Stage 2
		var rels []lie.Option
		for a := 0; a < len(cells); a++ {
			for b := a + 1; b < len(cells); b++ {
				x, y := cells[a], cells[b]
				terms := make(map[string]*big.Rat)
				if x.j == y.i {
					addTerm(terms, names[cell{x.i, y.j}], 1)
				}
				if y.j == x.i {
					addTerm(terms, names[cell{y.i, x.j}], -1)
				}
				// Stage 3
				for k, v := range terms {
					if v.Sign() == 0 {
						delete(terms, k)
					}
				}
				if len(terms) > 0 {
					rels = append(rels, lie.WithBracketByName(basis[a], basis[b], terms))
				}
			}
		}

		label := "Upper triangular"
		if !diagonal {
			label = "Strictly upper triangular"
		}

		return table{
			name:      label + " " + strconv.Itoa(n) + "x" + strconv.Itoa(n) + " matrices",
			basis:     basis,
			relations: rels,
		}, nil
	}
}

func addTerm(terms map[string]*big.Rat, name string, c int64) {
	if cur, ok := terms[name]; ok {
		cur.Add(cur, big.NewRat(c, 1))
		return
	}
	terms[name] = big.NewRat(c, 1)
}
