// SPDX-License-Identifier: MIT

// Package field provides the scalar field used by every other package of
// lielath: the rational numbers Q, backed by math/big.Rat.
//
// Scalars are plain *big.Rat values. Every helper in this package allocates
// its result and never mutates its arguments, so callers may share scalars
// freely between vectors, matrices and algebra elements.
//
// Parsing accepts integers ("3"), fractions ("-2/5") and finite decimals
// ("0.25"); formatting prints integers without a denominator.
package field
