// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lielath/config"
	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/subalgebra"
)

// app carries flag values and the resolved workspace between cobra hooks.
type app struct {
	file      string
	verbosity int
	algebra   string
	gens      []string

	catalog *config.Catalog
	reg     *subalgebra.Registry
	sync    func()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "liesub",
		Short:         "Lie subalgebra closure over the rationals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.sync != nil {
				a.sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "workspace YAML file")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "log verbosity (repeatable)")

	basis := &cobra.Command{
		Use:   "basis [subalgebra]",
		Short: "print the echelon basis of a subalgebra",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := a.target(args)
			if err != nil {
				return err
			}

			return printBasis(cmd.OutOrStdout(), S)
		},
	}
	a.adHocFlags(basis)

	contains := &cobra.Command{
		Use:   "contains <subalgebra> <element>",
		Short: "test membership of an ambient element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, x, err := a.element(args[0], args[1])
			if err != nil {
				return err
			}
			in, err := S.Contains(x)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), in)

			return nil
		},
	}

	retract := &cobra.Command{
		Use:   "retract <subalgebra> <element>",
		Short: "express an ambient element in the subalgebra's basis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, x, err := a.element(args[0], args[1])
			if err != nil {
				return err
			}
			X, err := S.Retract(x)
			if err != nil {
				return err
			}
			v, err := X.ToVector()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", X, v)

			return nil
		},
	}

	ideal := &cobra.Command{
		Use:   "ideal <subalgebra> <algebra|subalgebra>",
		Short: "test whether a subalgebra is an ideal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := a.catalog.Subalgebra(args[0])
			if err != nil {
				return err
			}
			target, err := a.catalog.Ideal(args[1])
			if err != nil {
				return err
			}
			ok, err := S.IsIdeal(target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)

			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "list algebras, subalgebras and builtin families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.list(cmd.OutOrStdout())
		},
	}

	root.AddCommand(basis, contains, retract, ideal, list)

	return root
}

// load reads the workspace and resolves it against a fresh registry.
func (a *app) load() error {
	log, sync, err := newLogger(a.verbosity)
	if err != nil {
		return err
	}
	a.sync = sync

	cfg := config.DefaultConfig()
	if a.file != "" {
		if cfg, err = config.Load(a.file); err != nil {
			return err
		}
	}
	a.reg = subalgebra.NewRegistry(subalgebra.WithLogger(log))
	a.catalog, err = cfg.Resolve(a.reg)
	if err != nil {
		return err
	}
	log.V(1).Info("workspace loaded", "file", a.file,
		"algebras", len(cfg.Algebras), "subalgebras", len(cfg.Subalgebras))

	return nil
}

func (a *app) adHocFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.algebra, "algebra", "a", "", "parent algebra or subalgebra of an ad-hoc query")
	cmd.Flags().StringArrayVarP(&a.gens, "gen", "g", nil, "generator of an ad-hoc query (repeatable)")
}

// target resolves a named subalgebra or the ad-hoc -a/-g query.
func (a *app) target(args []string) (*subalgebra.Subalgebra, error) {
	switch {
	case len(args) == 1 && a.algebra != "":
		return nil, errors.New("give a subalgebra name or --algebra, not both")
	case len(args) == 1:
		return a.catalog.Subalgebra(args[0])
	case a.algebra == "":
		return nil, errors.New("missing subalgebra name or --algebra")
	}
	parent, err := a.catalog.Parent(a.algebra)
	if err != nil {
		return nil, err
	}
	gens := make([]lie.Element, len(a.gens))
	for i, g := range a.gens {
		if gens[i], err = parent.TopLevel().Parse(g); err != nil {
			return nil, err
		}
	}

	return a.reg.Subalgebra(parent, gens...)
}

// element resolves a named subalgebra and parses expr in its ambient.
func (a *app) element(name, expr string) (*subalgebra.Subalgebra, lie.Element, error) {
	S, err := a.catalog.Subalgebra(name)
	if err != nil {
		return nil, lie.Element{}, err
	}
	x, err := S.Ambient().Parse(expr)
	if err != nil {
		return nil, lie.Element{}, err
	}

	return S, x, nil
}

func printBasis(w io.Writer, S *subalgebra.Subalgebra) error {
	basis, err := S.Basis()
	if err != nil {
		return err
	}
	m, err := S.BasisMatrix()
	if err != nil {
		return err
	}
	names := make([]string, len(basis))
	for i, b := range basis {
		names[i] = b.String()
	}
	fmt.Fprintln(w, S)
	fmt.Fprintf(w, "dimension: %d\n", len(basis))
	fmt.Fprintf(w, "basis: [%s]\n", strings.Join(names, ", "))
	fmt.Fprint(w, m)

	return nil
}

func (a *app) list(w io.Writer) error {
	fmt.Fprintln(w, "algebras:")
	for _, name := range a.catalog.AlgebraNames() {
		L, _ := a.catalog.Algebra(name)
		fmt.Fprintf(w, "  %s  dim=%d  basis=[%s]\n", name, L.Dimension(), strings.Join(L.BasisNames(), ", "))
	}
	fmt.Fprintln(w, "subalgebras:")
	for _, name := range a.catalog.SubalgebraNames() {
		S, _ := a.catalog.Subalgebra(name)
		d, err := S.Dimension()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s  dim=%d  %s\n", name, d, S)
	}
	fmt.Fprintf(w, "families: %s\n", strings.Join(config.ListFamilies(), ", "))

	return nil
}
