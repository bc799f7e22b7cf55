// SPDX-License-Identifier: MIT

// Package config loads YAML workspaces of Lie algebras and subalgebra
// queries.
//
// A workspace declares algebras, either as a builder family with a size or
// as explicit basis names plus bracket relations, and named subalgebras
// given by generator expressions in lie.Algebra.Parse syntax:
//
//	algebras:
//	  - name: H
//	    family: heisenberg
//	    size: 1
//	  - name: N
//	    basis: [x, y, w]
//	    brackets:
//	      - {left: x, right: y, result: w}
//	subalgebras:
//	  - name: S
//	    parent: H
//	    generators: ["p1", "q1"]
//
// A subalgebra's parent may name an algebra or an earlier subalgebra.
// Resolve turns a validated Config into a Catalog of live objects.
package config
