// SPDX-License-Identifier: MIT

// Package builder constructs the standard families of finite-dimensional
// Lie algebras used throughout lielath's tests, examples and CLI.
//
// The package offers:
//
//   - Build(ctor, opts...): the single orchestrator. It resolves the
//     functional options into a builderConfig, runs the Constructor to obtain
//     basis names and bracket relations, and hands them to lie.New.
//   - Constructors:
//     – Abelian(n):                 all brackets zero.
//     – Heisenberg(r):              p1..pr, q1..qr, z with [p_i, q_i] = z.
//     – FreeNilpotentStep2(k):      X_1..X_k, X_ij with [X_i, X_j] = X_ij.
//     – SL2():                      e, f, h.
//     – UpperTriangular(n):         E_ij (i ≤ j) under the commutator.
//     – StrictlyUpperTriangular(n): E_ij (i < j) under the commutator.
//   - Naming schemes (IDFn): SubscriptIDFn ("X_1", "X_2", …),
//     LetterIDFn ("a", "b", …), PrefixIDFn(prefix).
//   - Options: WithName, WithIDScheme, WithTrustedTable.
//
// Guarantees:
//
//   - Determinism: the same constructor and options yield the same basis
//     order, names and structure constants.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Errors:
//
//   - ErrTooSmall         size parameter below the family minimum.
//   - ErrConstructFailed  nil constructor or a table rejected by lie.New.
package builder
