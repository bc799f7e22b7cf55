// SPDX-License-Identifier: MIT

package subalgebra_test

import (
	"fmt"

	"github.com/katalvlaran/lielath/builder"
	"github.com/katalvlaran/lielath/subalgebra"
)

// ExampleNew closes {p1, q1} in the rank-1 Heisenberg algebra: one bracket
// step adds z.
func ExampleNew() {
	L := builder.MustBuild(builder.Heisenberg(1))
	p, _ := L.Gen("p1")
	q, _ := L.Gen("q1")

	S, _ := subalgebra.NewRegistry().Subalgebra(L, p, q)
	basis, _ := S.Basis()
	fmt.Println(S)
	fmt.Println(basis)
	// Output:
	// Subalgebra generated by (p1, q1) of Heisenberg algebra of rank 1 over Rational Field
	// [p1 q1 z]
}

// ExampleSubalgebra_IsIdeal shows that a single generator of the free
// nilpotent algebra does not span an ideal while its center does.
func ExampleSubalgebra_IsIdeal() {
	L := builder.MustBuild(builder.FreeNilpotentStep2(2))
	x1, _ := L.Gen("X_1")
	x12, _ := L.Gen("X_12")
	r := subalgebra.NewRegistry()

	S, _ := r.Subalgebra(L, x1)
	Z, _ := r.Subalgebra(L, x12)
	a, _ := S.IsIdeal(subalgebra.Whole(L))
	b, _ := Z.IsIdeal(subalgebra.Whole(L))
	fmt.Println(a, b)
	// Output:
	// false true
}

// ExampleSubalgebra_Retract shows the error for an element outside.
func ExampleSubalgebra_Retract() {
	L := builder.MustBuild(builder.SL2())
	e, _ := L.Gen("e")
	h, _ := L.Gen("h")
	f, _ := L.Gen("f")

	B, _ := subalgebra.NewRegistry().Subalgebra(L, e, h)
	_, err := B.Retract(f)
	fmt.Println(err)
	// Output:
	// the element f is not in Subalgebra generated by (e, h) of sl2 over Rational Field
}
