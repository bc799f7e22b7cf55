// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// impl_heisenberg.go: the Heisenberg algebra of rank r.
//
// Basis (in order): p1..pr, q1..qr, z.
// Relations: [p_i, q_i] = z; every other bracket of basis elements is zero.
// Dimension 2r+1; z spans the center.

package builder

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/lielath/lie"
)

// Heisenberg returns a Constructor for the Heisenberg algebra of the given
// rank. The naming scheme option does not apply; names are fixed.
//
// Errors: ErrTooSmall if rank < 1.
// Complexity: O(r) relations.
func Heisenberg(rank int) Constructor {
	return func(_ builderConfig) (table, error) {
		if rank < 1 {
			return table{}, builderErrorf(methodHeisenberg, fmt.Sprintf("rank=%d", rank), ErrTooSmall)
		}
		basis := make([]string, 0, 2*rank+1)
		for i := 1; i <= rank; i++ {
			basis = append(basis, "p"+strconv.Itoa(i))
		}
		for i := 1; i <= rank; i++ {
			basis = append(basis, "q"+strconv.Itoa(i))
		}
		basis = append(basis, "z")

		rels := make([]lie.Option, 0, rank)
		for i := 1; i <= rank; i++ {
			p, q := "p"+strconv.Itoa(i), "q"+strconv.Itoa(i)
			rels = append(rels, lie.WithBracketByName(p, q, map[string]*big.Rat{"z": big.NewRat(1, 1)}))
		}

		return table{
			name:      "Heisenberg algebra of rank " + strconv.Itoa(rank),
			basis:     basis,
			relations: rels,
		}, nil
	}
}
