// SPDX-License-Identifier: MIT

package subalgebra

import (
	"fmt"

	"github.com/katalvlaran/lielath/lie"
	"github.com/katalvlaran/lielath/vecspace"
)

// InputKind discriminates the payload of an Input.
type InputKind int

// Input kinds.
const (
	AmbientValue     InputKind = iota + 1 // an ambient element to retract
	CoordinateVector                      // coordinates, see Subalgebra.FromVector
	BracketPair                           // two ambient elements to bracket
)

func (k InputKind) String() string {
	switch k {
	case AmbientValue:
		return "AmbientValue"
	case CoordinateVector:
		return "CoordinateVector"
	case BracketPair:
		return "BracketPair"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Input is one of the ways to name an element of a subalgebra. Build it with
// FromAmbient, FromCoordinates or FromPair.
type Input struct {
	Kind        InputKind
	Value       lie.Element
	Vector      vecspace.Vector
	Left, Right lie.Element
}

// FromAmbient wraps an ambient element.
func FromAmbient(x lie.Element) Input { return Input{Kind: AmbientValue, Value: x} }

// FromCoordinates wraps a coordinate vector.
func FromCoordinates(v vecspace.Vector) Input { return Input{Kind: CoordinateVector, Vector: v} }

// FromPair wraps the pair whose bracket is wanted.
func FromPair(a, b lie.Element) Input { return Input{Kind: BracketPair, Left: a, Right: b} }

// Element resolves in against s.
// Errors: ErrInvalidInput for an unknown kind or a missing payload, plus
// whatever Retract, FromVector or Bracket report.
func (s *Subalgebra) Element(in Input) (*Element, error) {
	switch in.Kind {
	case AmbientValue:
		if in.Value.Parent() == nil {
			return nil, fmt.Errorf("Element(%s): no value: %w", in.Kind, ErrInvalidInput)
		}

		return s.Retract(in.Value)
	case CoordinateVector:
		return s.FromVector(in.Vector)
	case BracketPair:
		if in.Left.Parent() == nil || in.Right.Parent() == nil {
			return nil, fmt.Errorf("Element(%s): incomplete pair: %w", in.Kind, ErrInvalidInput)
		}

		return s.Bracket(in.Left, in.Right)
	default:
		return nil, fmt.Errorf("Element(%s): %w", in.Kind, ErrInvalidInput)
	}
}
