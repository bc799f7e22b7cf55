// SPDX-License-Identifier: MIT
// Package: lielath/builder
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Constructors never panic; they return sentinel errors.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	name    string // display name override; "" keeps the family default
	idFn    IDFn   // generator naming for Abelian / FreeNilpotentStep2
	trusted bool   // skip the Jacobi check in lie.New
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: SubscriptIDFn}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithName overrides the algebra's display name.
// Panics on an empty name.
func WithName(name string) BuilderOption {
	if name == "" {
		panic("builder: WithName(\"\")")
	}

	return func(c *builderConfig) { c.name = name }
}

// WithIDScheme sets the generator naming scheme. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithTrustedTable skips the Jacobi verification in lie.New. Every family in
// this package satisfies Jacobi by construction; large instances may opt out
// of the O(n^5) check.
func WithTrustedTable() BuilderOption {
	return func(c *builderConfig) { c.trusted = true }
}

// WithPrefix is shorthand for WithIDScheme(PrefixIDFn(prefix)).
// Panics on an empty prefix.
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
