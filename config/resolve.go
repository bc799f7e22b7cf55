// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lielath/builder"
	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/subalgebra"
)

// Catalog holds the algebras and subalgebras of a resolved Config.
type Catalog struct {
	algebras    map[string]*lie.Algebra
	subalgebras map[string]*subalgebra.Subalgebra
}

// Resolve builds every algebra, then every subalgebra in declaration order,
// interning subalgebras in reg (subalgebra.DefaultRegistry when nil).
func (c *Config) Resolve(reg *subalgebra.Registry) (*Catalog, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = subalgebra.DefaultRegistry
	}
	cat := &Catalog{
		algebras:    make(map[string]*lie.Algebra, len(c.Algebras)),
		subalgebras: make(map[string]*subalgebra.Subalgebra, len(c.Subalgebras)),
	}

	for _, a := range c.Algebras {
		L, err := buildAlgebra(a)
		if err != nil {
			return nil, fmt.Errorf("algebra %q: %w", a.Name, err)
		}
		cat.algebras[a.Name] = L
	}

	for _, s := range c.Subalgebras {
		parent, err := cat.Parent(s.Parent)
		if err != nil {
			return nil, fmt.Errorf("subalgebra %q: %w", s.Name, err)
		}
		ambient := parent.TopLevel()
		gens := make([]lie.Element, len(s.Generators))
		for i, expr := range s.Generators {
			if gens[i], err = ambient.Parse(expr); err != nil {
				return nil, fmt.Errorf("subalgebra %q: generator %d: %w", s.Name, i, err)
			}
		}
		S, err := reg.Subalgebra(parent, gens...)
		if err != nil {
			return nil, fmt.Errorf("subalgebra %q: %w", s.Name, err)
		}
		cat.subalgebras[s.Name] = S
	}

	return cat, nil
}

func buildAlgebra(a AlgebraConfig) (*lie.Algebra, error) {
	if a.Family != "" {
		opts := []builder.BuilderOption{builder.WithName(a.Name)}
		if a.Trusted {
			opts = append(opts, builder.WithTrustedTable())
		}

		return builder.Build(Families[a.Family](a.Size), opts...)
	}

	opts := make([]lie.Option, 0, len(a.Brackets)+1)
	for _, b := range a.Brackets {
		opts = append(opts, lie.WithRelation(b.Left, b.Right, b.Result))
	}
	if a.Trusted {
		opts = append(opts, lie.WithoutJacobiCheck())
	}

	return lie.New(a.Name, a.Basis, opts...)
}

// Algebra returns the named algebra.
func (c *Catalog) Algebra(name string) (*lie.Algebra, error) {
	L, ok := c.algebras[name]
	if !ok {
		return nil, fmt.Errorf("algebra %q: %w", name, ErrUnknownName)
	}

	return L, nil
}

// Subalgebra returns the named subalgebra.
func (c *Catalog) Subalgebra(name string) (*subalgebra.Subalgebra, error) {
	S, ok := c.subalgebras[name]
	if !ok {
		return nil, fmt.Errorf("subalgebra %q: %w", name, ErrUnknownName)
	}

	return S, nil
}

// Parent returns the named algebra or subalgebra; algebras win on a clash,
// which Validate rules out.
func (c *Catalog) Parent(name string) (subalgebra.Parent, error) {
	if L, ok := c.algebras[name]; ok {
		return L, nil
	}
	if S, ok := c.subalgebras[name]; ok {
		return S, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownName)
}

// Ideal returns the named algebra or subalgebra as an ideal-test target.
func (c *Catalog) Ideal(name string) (subalgebra.Algebra, error) {
	if L, ok := c.algebras[name]; ok {
		return subalgebra.Whole(L), nil
	}
	if S, ok := c.subalgebras[name]; ok {
		return S, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownName)
}

// AlgebraNames returns the algebra names, sorted.
func (c *Catalog) AlgebraNames() []string { return sortedKeys(c.algebras) }

// SubalgebraNames returns the subalgebra names, sorted.
func (c *Catalog) SubalgebraNames() []string { return sortedKeys(c.subalgebras) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
