// SPDX-License-Identifier: MIT

// Package subalgebra computes and represents the Lie subalgebra generated by
// a finite set of elements of a finite-dimensional Lie algebra over Q.
//
// A Subalgebra is the smallest linear subspace containing its generators and
// closed under the ambient bracket. It is computed by a fixed-point
// iteration (Closure): span the generators, add every pairwise bracket of
// the current basis, re-span, stop when the dimension no longer grows.
// The result is held as a vecspace.Submodule whose chosen basis is the
// canonical echelon basis, so two generator sets spanning the same
// subalgebra produce identical bases.
//
// Construction is cheap. The closure runs on first use (Basis, Module,
// Contains, …) and at most once per Subalgebra, even under concurrent
// callers. Subalgebras are interned by a Registry keyed on the top-level
// ambient and the span of the generators; New uses DefaultRegistry.
//
// Elements move between the two levels asymmetrically:
//
//	Lift(X)     subalgebra → ambient, total
//	Retract(x)  ambient → subalgebra, fails with *NotInSubalgebraError
//	TryRetract  the (value, ok) form of Retract
//
// Nesting is flattened: a Subalgebra built on top of another Subalgebra
// takes the top-level algebra as its ambient.
//
// IsIdeal decides whether [a, S] ⊆ S for an enclosing algebra a, caching the
// answer per pair.
//
// Metrics are exported on the Metrics prometheus registry; logging goes
// through a logr.Logger supplied with WithLogger.
package subalgebra
