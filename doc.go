// Package lielath computes Lie subalgebras of finite-dimensional Lie
// algebras over the rationals: the smallest bracket-closed subspace that
// contains a given set of generators, with exact arithmetic throughout.
//
// What is inside?
//
//	field/      - the rational field Q on math/big.Rat (parse, format, compare)
//	matrix/     - exact Dense matrices: products, RREF, rank, left solves
//	vecspace/   - immutable vectors, Q^n and its submodules (echelon bases)
//	lie/        - algebras given by structure constants; elements; parsing
//	builder/    - standard families: abelian, Heisenberg, free nilpotent,
//	              sl(2), (strictly) upper-triangular matrices
//	subalgebra/ - closure engine, Subalgebra and its elements, ideal test,
//	              interning registry, prometheus metrics
//	config/     - YAML workspaces of algebras and subalgebra queries
//	cmd/liesub  - command-line front end
//	examples/   - runnable walkthroughs
//
// Quick start:
//
//	L := builder.MustBuild(builder.Heisenberg(1))
//	p, _ := L.Gen("p1")
//	q, _ := L.Gen("q1")
//	S, _ := subalgebra.New(L, p, q)
//	basis, _ := S.Basis() // [p1 q1 z]
//
// Guarantees:
//
//   - Exactness: no floating point; echelon bases are canonical.
//   - Determinism: equal spans give equal bases regardless of generator
//     order or scaling.
//   - Concurrency: Subalgebra values are safe for concurrent use; each
//     closure is computed once.
package lielath
