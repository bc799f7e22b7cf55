// SPDX-License-Identifier: MIT
// Package: lielath/subalgebra
//
// ideal.go: the ideal test [a, S] ⊆ S.
//
// Stage 1 (Guard):  nil or ambient-less a → ErrUnsupportedAlgebra; a == S → true.
// Stage 2 (Coerce): a on another ambient, or S not inside a → false, nil.
// Stage 3 (Matrix): rows [b, x] for b in Basis(S), x in a's basis.
// Stage 4 (Decide): true iff the row space of that matrix lies in S.
//
// Results are cached per (S, a); concurrent first calls share one run.

package subalgebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/vecspace"
)

// Algebra is an algebra S can be an ideal of: the top-level algebra
// (through Whole) or another *Subalgebra.
type Algebra interface {
	TopLevel() *lie.Algebra
	BasisElements() ([]lie.Element, error)
}

type whole struct{ l *lie.Algebra }

func (w whole) TopLevel() *lie.Algebra { return w.l }

func (w whole) BasisElements() ([]lie.Element, error) {
	if w.l == nil {
		return nil, ErrUnsupportedAlgebra
	}

	return w.l.Basis(), nil
}

// Whole presents a top-level algebra as an Algebra.
func Whole(l *lie.Algebra) Algebra { return whole{l: l} }

// cacheKey identifies a for the ideal cache; ok is false for Algebra
// implementations without a stable identity.
func cacheKey(a Algebra) (string, bool) {
	switch v := a.(type) {
	case *Subalgebra:
		return fmt.Sprintf("S%p", v), true
	case whole:
		return fmt.Sprintf("L%p", v.l), true
	default:
		return "", false
	}
}

// IsIdeal reports whether s is an ideal of a.
//
// Errors: ErrUnsupportedAlgebra for a nil a or an a without ambient. Errors
// computing either closure are returned as is.
func (s *Subalgebra) IsIdeal(a Algebra) (bool, error) {
	// Stage 1
	if a == nil {
		return false, fmt.Errorf("IsIdeal: nil algebra: %w", ErrUnsupportedAlgebra)
	}
	if sub, ok := a.(*Subalgebra); ok {
		if sub == nil {
			return false, fmt.Errorf("IsIdeal: nil subalgebra: %w", ErrUnsupportedAlgebra)
		}
		if sub == s {
			return true, nil
		}
	}
	if a.TopLevel() == nil {
		return false, fmt.Errorf("IsIdeal: %T without ambient: %w", a, ErrUnsupportedAlgebra)
	}

	key, cacheable := cacheKey(a)
	if !cacheable {
		idealTests.WithLabelValues("uncached").Inc()
		return s.isIdeal(a)
	}
	s.idealMu.Lock()
	res, hit := s.idealCache[key]
	s.idealMu.Unlock()
	if hit {
		idealTests.WithLabelValues("hit").Inc()
		s.log.V(2).Info("ideal cache hit", "subalgebra", s.String(), "key", key)

		return res, nil
	}

	v, err, _ := s.idealGroup.Do(key, func() (any, error) {
		ok, err := s.isIdeal(a)
		if err != nil {
			return false, err
		}
		s.idealMu.Lock()
		s.idealCache[key] = ok
		s.idealMu.Unlock()

		return ok, nil
	})
	if err != nil {
		return false, err
	}
	idealTests.WithLabelValues("miss").Inc()

	return v.(bool), nil
}

func (s *Subalgebra) isIdeal(a Algebra) (bool, error) {
	// Stage 2
	if a.TopLevel() != s.ambient {
		return false, nil
	}
	if sup, ok := a.(*Subalgebra); ok {
		inside, err := s.IsSubalgebraOf(sup)
		if err != nil || !inside {
			return false, err
		}
	}

	// Stage 3
	mine, err := s.BasisElements()
	if err != nil {
		return false, err
	}
	theirs, err := a.BasisElements()
	if err != nil {
		return false, fmt.Errorf("IsIdeal: %w", err)
	}
	rows := make([]vecspace.Vector, 0, len(mine)*len(theirs))
	for _, b := range mine {
		for _, x := range theirs {
			z, err := s.ambient.Bracket(b, x)
			if errors.Is(err, lie.ErrForeignElement) {
				return false, nil
			}
			if err != nil {
				return false, fmt.Errorf("IsIdeal: %w", err)
			}
			rows = append(rows, z.Vector())
		}
	}

	// Stage 4
	img, err := s.ambient.Module().SubmoduleFromSpan(rows)
	if err != nil {
		return false, fmt.Errorf("IsIdeal: %w", err)
	}
	m, err := s.Module()
	if err != nil {
		return false, err
	}

	return img.IsSubmoduleOf(m), nil
}
