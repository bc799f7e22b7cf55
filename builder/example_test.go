// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lielath/builder"
)

// ExampleHeisenberg builds the rank-1 Heisenberg algebra and brackets p1 with q1.
func ExampleHeisenberg() {
	L := builder.MustBuild(builder.Heisenberg(1))
	p, _ := L.Gen("p1")
	q, _ := L.Gen("q1")
	z, _ := L.Bracket(p, q)
	fmt.Println(L)
	fmt.Println(L.BasisNames(), z)
	// Output:
	// Heisenberg algebra of rank 1 over Rational Field
	// [p1 q1 z] z
}
