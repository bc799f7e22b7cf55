// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalid marks a structurally invalid document (missing or
	// conflicting fields).
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrUnknownFamily: a family name not in Families.
	ErrUnknownFamily = errors.New("config: unknown algebra family")

	// ErrDuplicateName: two algebras or subalgebras share a name.
	ErrDuplicateName = errors.New("config: duplicate name")

	// ErrUnknownName: a reference to an undeclared algebra or subalgebra.
	ErrUnknownName = errors.New("config: unknown name")
)
