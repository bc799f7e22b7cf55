// SPDX-License-Identifier: MIT

// Package vecspace models the ambient coordinate space Q^n and its
// submodules.
//
// What:
//
//   - Vector: an immutable coordinate vector over Q.
//   - Space: Q^n with its standard basis.
//   - Submodule: a subspace of a Space with a chosen basis. Two flavors:
//     SubmoduleFromSpan echelonizes a spanning set (canonical basis, order
//     and scaling of the input do not matter), SubmoduleWithBasis keeps a
//     user basis as given and only checks independence.
//
// Every Submodule also keeps its reduced echelon basis, so containment,
// inclusion and equality are decided on the canonical form regardless of
// which basis was chosen for coordinates.
//
// Complexity:
//
//   - Construction: one RREF of the spanning set, O(k·n·min(k,n)).
//   - Contains: O(d·n) reduction against the echelon pivots.
//   - Coordinates: one SolveLeft against the chosen basis.
package vecspace
