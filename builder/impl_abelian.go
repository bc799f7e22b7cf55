// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// impl_abelian.go: the n-dimensional abelian Lie algebra.

package builder

import (
	"fmt"
	"strconv"
)

// Abelian returns a Constructor for the n-dimensional abelian algebra:
// basis idFn(0..n-1), every bracket zero.
//
// Errors: ErrTooSmall if n < 1.
// Complexity: O(n).
func Abelian(n int) Constructor {
	return func(cfg builderConfig) (table, error) {
		if n < 1 {
			return table{}, builderErrorf(methodAbelian, fmt.Sprintf("n=%d", n), ErrTooSmall)
		}
		basis := make([]string, n)
		for i := range basis {
			basis[i] = cfg.idFn(i)
		}

		return table{name: "Abelian Lie algebra of dimension " + strconv.Itoa(n), basis: basis}, nil
	}
}
