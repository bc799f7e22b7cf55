// SPDX-License-Identifier: MIT

package lie

import "math/big"

// Option configures New.
type Option func(*options)

// relation is one declared bracket, resolved against the basis in New.
type relation struct {
	i, j   int    // by index (when byName == false)
	a, b   string // by name
	byName bool
	coeffs []*big.Rat          // dense result, by index form
	terms  map[string]*big.Rat // sparse result, by name form
	expr   string              // textual result, parsed after the basis is known
	isExpr bool
}

type options struct {
	relations []relation
	jacobi    bool
}

func defaultOptions() options {
	return options{jacobi: true}
}

// WithBracket declares [e_i, e_j] = Σ coeffs[k]·e_k. len(coeffs) must equal
// the dimension; this is checked in New.
func WithBracket(i, j int, coeffs ...*big.Rat) Option {
	return func(o *options) {
		o.relations = append(o.relations, relation{i: i, j: j, coeffs: coeffs})
	}
}

// WithBracketByName declares [a, b] = Σ terms[name]·name.
func WithBracketByName(a, b string, terms map[string]*big.Rat) Option {
	return func(o *options) {
		o.relations = append(o.relations, relation{a: a, b: b, byName: true, terms: terms})
	}
}

// WithRelation declares [a, b] = expr where expr is a linear combination in
// the syntax accepted by Parse, e.g. WithRelation("h", "e", "2*e").
func WithRelation(a, b, expr string) Option {
	return func(o *options) {
		o.relations = append(o.relations, relation{a: a, b: b, byName: true, expr: expr, isExpr: true})
	}
}

// WithoutJacobiCheck skips the O(n^5) Jacobi verification in New.
func WithoutJacobiCheck() Option {
	return func(o *options) { o.jacobi = false }
}
