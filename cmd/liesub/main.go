// SPDX-License-Identifier: MIT

// Command liesub computes Lie subalgebras declared in a YAML workspace.
//
//	liesub list                       algebras and subalgebras of the workspace
//	liesub basis S                    echelon basis of subalgebra S
//	liesub basis -a H -g p1 -g q1     ad-hoc subalgebra of H
//	liesub contains S "2*p1 + z"      membership
//	liesub retract S "z"              coordinates relative to the basis of S
//	liesub ideal S H                  whether S is an ideal of H
//
// Without -f the built-in workspace (the rank-1 Heisenberg algebra named
// "heisenberg") is used.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "liesub:", err)
		os.Exit(1)
	}
}
