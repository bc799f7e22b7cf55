// SPDX-License-Identifier: MIT

// Package lie implements finite-dimensional Lie algebras over Q given by
// structure constants on a named basis.
//
// What:
//
//   - Algebra: basis e_0..e_{n-1} with names, and a bracket table
//     [e_i, e_j] = Σ_k c_ij^k e_k extended bilinearly.
//   - Element: an immutable value pairing an *Algebra with a coordinate
//     vector. Elements of different algebras never mix (ErrForeignElement).
//
// Guarantees checked at construction:
//
//   - Antisymmetry: only one of [e_i,e_j], [e_j,e_i] needs declaring, the
//     other is derived; conflicting or non-zero self brackets are rejected
//     with ErrAntisymmetry.
//   - Jacobi identity on every basis triple (ErrJacobi), unless disabled
//     with WithoutJacobiCheck for very large tables known to be valid.
//
// Boundary used by package subalgebra: Bracket, Element.Vector, FromVector,
// Dimension, BaseField, Module and Coerce.
//
// Text form: Parse reads linear combinations such as "2*p + 1/2*q - z" and
// Element.String prints them back in the same shape.
package lie
