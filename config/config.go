// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lielath/builder"
)

// DefaultAlgebra is the algebra present in DefaultConfig.
const DefaultAlgebra = "heisenberg"

// Config is one workspace document.
type Config struct {
	Algebras    []AlgebraConfig    `yaml:"algebras"`
	Subalgebras []SubalgebraConfig `yaml:"subalgebras"`
}

// AlgebraConfig declares one algebra. Exactly one of Family or Basis is set.
type AlgebraConfig struct {
	Name     string          `yaml:"name"`
	Family   string          `yaml:"family,omitempty"`
	Size     int             `yaml:"size,omitempty"`
	Basis    []string        `yaml:"basis,omitempty"`
	Brackets []BracketConfig `yaml:"brackets,omitempty"`
	Trusted  bool            `yaml:"trusted,omitempty"`
}

// BracketConfig declares [Left, Right] = Result.
type BracketConfig struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Result string `yaml:"result"`
}

// SubalgebraConfig declares the subalgebra of Parent generated by
// Generators.
type SubalgebraConfig struct {
	Name       string   `yaml:"name"`
	Parent     string   `yaml:"parent"`
	Generators []string `yaml:"generators"`
}

// Families maps family names to builder constructors taking a size.
// sl2 ignores the size.
var Families = map[string]func(size int) builder.Constructor{
	"abelian":                   builder.Abelian,
	"heisenberg":                builder.Heisenberg,
	"free_nilpotent":            builder.FreeNilpotentStep2,
	"sl2":                       func(int) builder.Constructor { return builder.SL2() },
	"upper_triangular":          builder.UpperTriangular,
	"strictly_upper_triangular": builder.StrictlyUpperTriangular,
}

// ListFamilies returns the family names in sorted order.
func ListFamilies() []string {
	names := make([]string, 0, len(Families))
	for name := range Families {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// DefaultConfig returns a workspace holding the rank-1 Heisenberg algebra.
func DefaultConfig() *Config {
	return &Config{
		Algebras: []AlgebraConfig{{Name: DefaultAlgebra, Family: "heisenberg", Size: 1}},
	}
}

// Load reads and validates the YAML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the document's structure. Expressions and basis names are
// checked later, by Resolve.
func (c *Config) Validate() error {
	names := make(map[string]bool)
	for i, a := range c.Algebras {
		if a.Name == "" {
			return fmt.Errorf("algebras[%d]: missing name: %w", i, ErrInvalid)
		}
		if names[a.Name] {
			return fmt.Errorf("algebras[%d]: %q: %w", i, a.Name, ErrDuplicateName)
		}
		names[a.Name] = true

		switch {
		case a.Family != "" && len(a.Basis) > 0:
			return fmt.Errorf("algebra %q: both family and basis: %w", a.Name, ErrInvalid)
		case a.Family != "":
			if _, ok := Families[a.Family]; !ok {
				return fmt.Errorf("algebra %q: %q: %w", a.Name, a.Family, ErrUnknownFamily)
			}
			if len(a.Brackets) > 0 {
				return fmt.Errorf("algebra %q: brackets with a family: %w", a.Name, ErrInvalid)
			}
		case len(a.Basis) == 0:
			return fmt.Errorf("algebra %q: neither family nor basis: %w", a.Name, ErrInvalid)
		}
	}
	for i, s := range c.Subalgebras {
		if s.Name == "" {
			return fmt.Errorf("subalgebras[%d]: missing name: %w", i, ErrInvalid)
		}
		if names[s.Name] {
			return fmt.Errorf("subalgebras[%d]: %q: %w", i, s.Name, ErrDuplicateName)
		}
		if !names[s.Parent] {
			return fmt.Errorf("subalgebra %q: parent %q: %w", s.Name, s.Parent, ErrUnknownName)
		}
		names[s.Name] = true
	}

	return nil
}
