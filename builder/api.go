// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// api.go: the Build orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lielath/lie"
)

// Method tags used for error context.
const (
	methodBuild            = "Build"
	methodAbelian          = "Abelian"
	methodHeisenberg       = "Heisenberg"
	methodFreeNilpotent    = "FreeNilpotentStep2"
	methodUpperTriangular  = "UpperTriangular"
	methodStrictlyUpperTri = "StrictlyUpperTriangular"
)

// table is what a Constructor produces: a default name, basis names in
// order, and the non-zero bracket relations.
type table struct {
	name      string
	basis     []string
	relations []lie.Option
}

// Constructor describes one algebra family instance. Constructors must
// validate parameters early, return sentinel errors, and be deterministic.
type Constructor func(cfg builderConfig) (table, error)

// Build resolves opts, runs ctor and constructs the algebra with lie.New.
//
// Errors:
//   - ErrConstructFailed for a nil ctor or a table rejected by lie.New
//     (the lie sentinel is wrapped too).
//   - Constructor sentinels (ErrTooSmall) wrapped with "Build: %w".
func Build(ctor Constructor, opts ...BuilderOption) (*lie.Algebra, error) {
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	t, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	name := t.name
	if cfg.name != "" {
		name = cfg.name
	}
	lopts := t.relations
	if cfg.trusted {
		lopts = append(lopts, lie.WithoutJacobiCheck())
	}

	L, err := lie.New(name, t.basis, lopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuild, ErrConstructFailed, err)
	}

	return L, nil
}

// MustBuild is Build for fixtures and examples; it panics on error.
func MustBuild(ctor Constructor, opts ...BuilderOption) *lie.Algebra {
	L, err := Build(ctor, opts...)
	if err != nil {
		panic(err)
	}

	return L
}
