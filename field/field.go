// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrParse is returned when a scalar literal cannot be read as a rational.
var ErrParse = errors.New("field: invalid scalar literal")

// Rationals is the field Q. It carries no state; the zero value is ready to use.
type Rationals struct{}

// Q is the shared instance of the rational field.
var Q = Rationals{}

// Name returns the human-readable name of the field.
func (Rationals) Name() string { return "Rational Field" }

// Zero returns a fresh 0.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// IsZero reports whether x is 0. A nil scalar counts as 0.
func (Rationals) IsZero(x *big.Rat) bool { return x == nil || x.Sign() == 0 }

// FromInt returns n as a rational.
func (Rationals) FromInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Frac returns p/q. It panics when q == 0, like big.NewRat.
func (Rationals) Frac(p, q int64) *big.Rat { return big.NewRat(p, q) }

// Copy returns an independent copy of x (nil becomes 0).
func (Rationals) Copy(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(x)
}

// Parse reads a rational literal such as "3", "-2/5" or "0.125".
// Surrounding whitespace is ignored; the empty string is rejected.
func (Rationals) Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}

	return r, nil
}

// Format prints x as "n" for integers and "p/q" otherwise.
func (Rationals) Format(x *big.Rat) string {
	if x == nil {
		return "0"
	}
	if x.IsInt() {
		return x.Num().String()
	}

	return x.RatString()
}

// Equal reports whether a == b, treating nil as 0.
func (f Rationals) Equal(a, b *big.Rat) bool {
	return f.Copy(a).Cmp(f.Copy(b)) == 0
}
