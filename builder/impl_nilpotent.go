// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// impl_nilpotent.go: the free 2-step nilpotent Lie algebra on k generators.
//
// Basis (in order): idFn(0..k-1), then X_ij for i<j in lexicographic order.
// Relations: [X_i, X_j] = X_ij; brackets involving any X_ij vanish.
// Dimension k + k(k-1)/2.

package builder

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/lielath/lie"
)

// FreeNilpotentStep2 returns a Constructor for the free nilpotent Lie algebra
// of step 2 on k generators. Degree-2 basis names are "X_" followed by the
// one-based index pair ("X_12", or "X_1_12" once k ≥ 10).
//
// Errors: ErrTooSmall if k < 1.
// Complexity: O(k^2) relations.
func FreeNilpotentStep2(k int) Constructor {
	return func(cfg builderConfig) (table, error) {
		if k < 1 {
			return table{}, builderErrorf(methodFreeNilpotent, fmt.Sprintf("k=%d", k), ErrTooSmall)
		}
		gens := make([]string, k)
		for i := range gens {
			gens[i] = cfg.idFn(i)
		}
		basis := append([]string(nil), gens...)

		var rels []lie.Option
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				w := "X_" + joinIndices(i, j, k)
				basis = append(basis, w)
				rels = append(rels, lie.WithBracketByName(gens[i], gens[j], map[string]*big.Rat{w: big.NewRat(1, 1)}))
			}
		}

		return table{
			name:      "Free Nilpotent Lie algebra on " + strconv.Itoa(k) + " generators of step 2",
			basis:     basis,
			relations: rels,
		}, nil
	}
}
