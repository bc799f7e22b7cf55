// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter (n, rank, generator count) is
// smaller than the family's minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the constructor was nil or lie.New
// rejected the resulting table. The lie error is wrapped as well.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "Method: detail: err" keeping err matchable.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
