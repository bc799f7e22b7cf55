// SPDX-License-Identifier: MIT

package subalgebra

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/vecspace"
)

// Parent is anything a Subalgebra can be cut from: a *lie.Algebra or another
// *Subalgebra. Parents that also expose Contains(lie.Element) (bool, error)
// have the generators checked against them.
type Parent interface {
	TopLevel() *lie.Algebra
}

// Registry interns subalgebras: asking twice for the same span of the same
// top-level algebra returns the same *Subalgebra. Entries live as long as
// the Registry. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[*lie.Algebra]map[string]*Subalgebra
	log     logr.Logger
}

// DefaultRegistry backs New.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Registry{
		entries: make(map[*lie.Algebra]map[string]*Subalgebra),
		log:     o.log.WithName("subalgebra"),
	}
}

// New returns the subalgebra of parent generated by gens, interned in
// DefaultRegistry.
func New(parent Parent, gens ...lie.Element) (*Subalgebra, error) {
	return DefaultRegistry.Subalgebra(parent, gens...)
}

// Subalgebra returns the subalgebra of parent generated by gens.
//
// Stage 1 (Validate): parent must be non-nil with a top-level ambient; every
// generator must belong to that ambient (ErrForeignElement).
// Stage 2 (Flatten): when parent is itself a subalgebra, every generator must
// lie in it (*NotInSubalgebraError); the result's ambient is the top level.
// Stage 3 (Normalize): drop zero generators, key by their echelon span.
// Stage 4 (Intern): return the existing entry for the key or register a new
// one. The closure itself is deferred to first use.
func (r *Registry) Subalgebra(parent Parent, gens ...lie.Element) (*Subalgebra, error) {
	// Stage 1
	if isNil(parent) {
		return nil, fmt.Errorf("Subalgebra: nil parent: %w", ErrUnsupportedAlgebra)
	}
	ambient := parent.TopLevel()
	if ambient == nil {
		return nil, fmt.Errorf("Subalgebra: %T without ambient: %w", parent, ErrUnsupportedAlgebra)
	}
	for i, g := range gens {
		if g.Parent() != ambient {
			return nil, fmt.Errorf("Subalgebra: generator %d (%s): %w", i, g, ErrForeignElement)
		}
	}

	// Stage 2
	if c, ok := parent.(interface {
		Contains(lie.Element) (bool, error)
	}); ok {
		for _, g := range gens {
			in, err := c.Contains(g)
			if err != nil {
				return nil, fmt.Errorf("Subalgebra: %w", err)
			}
			if !in {
				sub, _ := parent.(*Subalgebra)
				return nil, &NotInSubalgebraError{Element: g, Subalgebra: sub}
			}
		}
	}

	// Stage 3
	normalized := make([]lie.Element, 0, len(gens))
	vs := make([]vecspace.Vector, 0, len(gens))
	for _, g := range gens {
		if g.IsZero() {
			continue
		}
		normalized = append(normalized, g)
		vs = append(vs, g.Vector())
	}
	span, err := ambient.Module().SubmoduleFromSpan(vs)
	if err != nil {
		return nil, fmt.Errorf("Subalgebra: %w: %w", ErrDimensionMismatch, err)
	}
	key := span.Key()

	// Stage 4
	r.mu.Lock()
	defer r.mu.Unlock()
	byKey := r.entries[ambient]
	if byKey == nil {
		byKey = make(map[string]*Subalgebra)
		r.entries[ambient] = byKey
	}
	if s, ok := byKey[key]; ok {
		registryLookups.WithLabelValues("hit").Inc()
		r.log.V(2).Info("registry hit", "ambient", ambient.Name(), "key", key)

		return s, nil
	}
	registryLookups.WithLabelValues("miss").Inc()
	s := newSubalgebra(r, ambient, normalized, key)
	byKey[key] = s
	r.log.V(2).Info("registry miss", "ambient", ambient.Name(), "key", key, "generators", len(normalized))

	return s, nil
}

// List returns the subalgebras of ambient registered so far, ordered by key.
func (r *Registry) List(ambient *lie.Algebra) []*Subalgebra {
	r.mu.Lock()
	defer r.mu.Unlock()
	byKey := r.entries[ambient]
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Subalgebra, len(keys))
	for i, k := range keys {
		out[i] = byKey[k]
	}

	return out
}

// Len returns the number of registered subalgebras across all ambients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, byKey := range r.entries {
		n += len(byKey)
	}

	return n
}

// isNil catches both a nil interface and a typed nil pointer inside it.
func isNil(p Parent) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
