// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a basis name from a zero-based index.
// It must be pure and return valid identifiers (see lie.New).
type IDFn func(idx int) string

// SubscriptIDFn returns "X_1", "X_2", … (one-based).
func SubscriptIDFn(idx int) string { return "X_" + strconv.Itoa(idx+1) }

// LetterIDFn returns "a".."z" for idx in [0,25].
// Panics outside that range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('a' + idx))
}

// PrefixIDFn returns an IDFn producing prefix1, prefix2, … (one-based).
// Panics on an empty prefix, which would yield names starting with a digit.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("builder: PrefixIDFn(\"\")")
	}

	return func(idx int) string { return prefix + strconv.Itoa(idx+1) }
}

// joinIndices renders one-based index pairs as "12" when every index is a
// single digit and as "1_12" otherwise, so names stay unambiguous.
func joinIndices(i, j, n int) string {
	if n < 10 {
		return strconv.Itoa(i+1) + strconv.Itoa(j+1)
	}

	return strconv.Itoa(i+1) + "_" + strconv.Itoa(j+1)
}
