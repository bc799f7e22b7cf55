// SPDX-License-Identifier: MIT
// Package: lielath/subalgebra
//
// closure.go: the fixed-point closure engine.
//
// Stage 1 (Seed):     M := span(gens), zero vectors dropped.
// Stage 2 (Saturate): add [v, w] for all basis pairs of M, re-span.
// Stage 3 (Stop):     when dim M did not grow during a pass.
//
// Termination: dim M is bounded by the ambient dimension n and strictly
// increases on every non-final pass, so there are at most n+1 passes.
// Minimality: every bracket-closed subspace containing gens contains every
// M produced along the way.
//
// Complexity: O(n · d² · B) where d ≤ n is the final dimension and B the cost
// of one ambient bracket (O(n³) in the worst case for dense tables).

package subalgebra

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/vecspace"
)

// Closure returns the smallest bracket-closed submodule of ambient's
// coordinate space containing gens. Its basis is the echelon basis.
//
// Errors: ErrUnsupportedAlgebra for a nil ambient, ErrDimensionMismatch for a
// generator of the wrong length.
func Closure(ambient *lie.Algebra, gens []vecspace.Vector) (*vecspace.Submodule, error) {
	m, _, err := closure(ambient, gens, logr.Discard())

	return m, err
}

// closureStats records one run for logs and metrics.
type closureStats struct {
	passes   int
	brackets int
}

func closure(ambient *lie.Algebra, gens []vecspace.Vector, log logr.Logger) (*vecspace.Submodule, closureStats, error) {
	var st closureStats
	if ambient == nil {
		return nil, st, fmt.Errorf("Closure: nil ambient: %w", ErrUnsupportedAlgebra)
	}
	space := ambient.Module()
	for _, g := range gens {
		if err := space.Check(g); err != nil {
			return nil, st, fmt.Errorf("Closure: %w: %w", ErrDimensionMismatch, err)
		}
	}

	// Stage 1
	m, err := space.SubmoduleFromSpan(gens)
	if err != nil {
		return nil, st, fmt.Errorf("Closure: %w", err)
	}

	for {
		st.passes++
		d := m.Dimension()
		basis := m.Basis()

		// Stage 2: [w, v] = -[v, w] and [v, v] = 0, so pairs i < j suffice.
		spanning := append(make([]vecspace.Vector, 0, len(basis)*(len(basis)+1)/2), basis...)
		for i := 0; i < len(basis); i++ {
			for j := i + 1; j < len(basis); j++ {
				b, err := ambient.BracketVectors(basis[i], basis[j])
				if err != nil {
					return nil, st, fmt.Errorf("Closure: %w", err)
				}
				st.brackets++
				if !b.IsZero() && !m.Contains(b) {
					spanning = append(spanning, b)
				}
			}
		}
		if len(spanning) > len(basis) {
			if m, err = space.SubmoduleFromSpan(spanning); err != nil {
				return nil, st, fmt.Errorf("Closure: %w", err)
			}
		}
		log.V(1).Info("closure pass", "pass", st.passes, "dimension", m.Dimension(), "brackets", st.brackets)

		// Stage 3
		if m.Dimension() == d {
			break
		}
	}

	closureIterations.Observe(float64(st.passes))
	bracketEvaluations.Add(float64(st.brackets))

	return m, st, nil
}

// IsClosed reports whether one saturation pass over m adds nothing, i.e.
// whether m is a subalgebra of ambient.
//
// Errors: ErrUnsupportedAlgebra for a nil ambient or submodule,
// ErrDimensionMismatch when m lives in a space of another dimension.
func IsClosed(ambient *lie.Algebra, m *vecspace.Submodule) (bool, error) {
	if ambient == nil || m == nil {
		return false, fmt.Errorf("IsClosed: %w", ErrUnsupportedAlgebra)
	}
	if m.Space().Dimension() != ambient.Dimension() {
		return false, fmt.Errorf("IsClosed: degree %d vs %d: %w",
			m.Space().Dimension(), ambient.Dimension(), ErrDimensionMismatch)
	}
	basis := m.Basis()
	for i := 0; i < len(basis); i++ {
		for j := i + 1; j < len(basis); j++ {
			b, err := ambient.BracketVectors(basis[i], basis[j])
			if err != nil {
				return false, fmt.Errorf("IsClosed: %w", err)
			}
			if !m.Contains(b) {
				return false, nil
			}
		}
	}

	return true, nil
}
