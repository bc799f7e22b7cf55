// SPDX-License-Identifier: MIT

package lie

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lielath/field"
	"github.com/katalvlaran/lielath/vecspace"
)

// Parse reads a linear combination of basis names.
//
// Grammar (whitespace ignored):
//
//	expr  := ["+"|"-"] term { ("+"|"-") term }
//	term  := [coef "*"] name | coef name
//	coef  := integer | integer "/" integer | decimal
//
// The literal "0" is the zero element. Repeated names accumulate.
//
// Errors: ErrParse for syntax errors, ErrUnknownBasis for unknown names.
func (a *Algebra) Parse(s string) (Element, error) {
	fields := strings.Fields(s)
	for i := 1; i < len(fields); i++ {
		if wordByte(fields[i-1][len(fields[i-1])-1]) && wordByte(fields[i][0]) {
			return Element{}, fmt.Errorf("Parse(%q): missing operator between %q and %q: %w", s, fields[i-1], fields[i], ErrParse)
		}
	}
	src := strings.Join(fields, "")
	if src == "" {
		return Element{}, fmt.Errorf("Parse(%q): empty: %w", s, ErrParse)
	}
	if src == "0" {
		return a.Zero(), nil
	}

	acc := make([]*big.Rat, len(a.names))
	for i := range acc {
		acc[i] = new(big.Rat)
	}

	pos := 0
	first := true
	for pos < len(src) {
		sign := big.NewRat(1, 1)
		switch src[pos] {
		case '+':
			pos++
		case '-':
			sign.SetInt64(-1)
			pos++
		default:
			if !first {
				return Element{}, fmt.Errorf("Parse(%q): expected + or - at %d: %w", s, pos, ErrParse)
			}
		}
		first = false

		end := pos
		for end < len(src) && src[end] != '+' && src[end] != '-' {
			end++
		}
		term := src[pos:end]
		pos = end

		coef, name, err := splitTerm(term)
		if err != nil {
			return Element{}, fmt.Errorf("Parse(%q): %w", s, err)
		}
		k, ok := a.index[name]
		if !ok {
			return Element{}, fmt.Errorf("Parse(%q): %q: %w", s, name, ErrUnknownBasis)
		}
		acc[k].Add(acc[k], coef.Mul(coef, sign))
	}

	return Element{parent: a, v: vecspace.NewVector(acc...)}, nil
}

// wordByte reports whether c can appear inside a name or a coefficient.
func wordByte(c byte) bool {
	return c == '_' || c == '.' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

// splitTerm separates "3/2*x", "3x", "x" into coefficient and name.
func splitTerm(term string) (*big.Rat, string, error) {
	if term == "" {
		return nil, "", fmt.Errorf("empty term: %w", ErrParse)
	}
	if i := strings.IndexByte(term, '*'); i >= 0 {
		c, err := field.Q.Parse(term[:i])
		if err != nil {
			return nil, "", fmt.Errorf("coefficient %q: %w", term[:i], ErrParse)
		}
		name := term[i+1:]
		if !validName(name) {
			return nil, "", fmt.Errorf("name %q: %w", name, ErrParse)
		}

		return c, name, nil
	}

	n := 0
	for n < len(term) && (term[n] >= '0' && term[n] <= '9' || term[n] == '/' || term[n] == '.') {
		n++
	}
	name := term[n:]
	if !validName(name) {
		return nil, "", fmt.Errorf("term %q: %w", term, ErrParse)
	}
	if n == 0 {
		return big.NewRat(1, 1), name, nil
	}
	c, err := field.Q.Parse(term[:n])
	if err != nil {
		return nil, "", fmt.Errorf("coefficient %q: %w", term[:n], ErrParse)
	}

	return c, name, nil
}
