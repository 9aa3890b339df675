// SPDX-License-Identifier: MIT
// Package: dihedral/coxeter
//
// types.go: generator labels, sides, the two-primitive element contract
// and the sentinel error set shared by every derived operation.

package coxeter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the generic Coxeter layer.
var (
	// ErrInvalidGenerator indicates a generator label outside the group's index set.
	ErrInvalidGenerator = errors.New("coxeter: invalid generator")

	// ErrInvalidSide indicates a Side value other than Left or Right.
	ErrInvalidSide = errors.New("coxeter: invalid side")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coxeter: invalid option supplied")

	// ErrClosureLimit is returned when a closure exceeds its element budget.
	ErrClosureLimit = errors.New("coxeter: closure limit exceeded")

	// ErrNotFinite is returned when a search bound is hit before the answer
	// is found (e.g. the order of an element exceeds the limit).
	ErrNotFinite = errors.New("coxeter: search bound exceeded")

	// ErrNotReached is returned by ClosureResult.PathTo for unknown keys.
	ErrNotReached = errors.New("coxeter: element not reached")
)

// Generator labels a simple reflection s_i. Labels start at 1.
type Generator int

// String renders the bare label.
func (i Generator) String() string { return fmt.Sprintf("%d", int(i)) }

// Side selects the end of a word a generator acts on.
type Side int

const (
	// Right multiplies on the right: w·s_i.
	Right Side = iota
	// Left multiplies on the left: s_i·w.
	Left
)

// String returns "right" or "left".
func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool { return s == Right || s == Left }

// ParseSide accepts "left"/"l" and "right"/"r" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// Element is the contract a concrete Coxeter group implements per element.
// Everything else in this package is derived from HasDescent and
// ApplySimpleReflectionRight.
//
// String must return a canonical rendering: two elements of the same group
// are equal iff their strings are equal. It is used as the map key of
// closures and Cayley graph vertex IDs.
type Element[E any] interface {
	fmt.Stringer

	// Equal reports value equality with another element of the same group.
	Equal(other E) bool

	// HasDescent reports whether i is a descent on side. With positive set
	// the answer is inverted (ascent test).
	HasDescent(i Generator, side Side, positive bool) (bool, error)

	// ApplySimpleReflectionRight returns w·s_i.
	ApplySimpleReflectionRight(i Generator) (E, error)
}

// Group supplies the identity and the generator labels.
type Group[E Element[E]] interface {
	One() E
	IndexSet() []Generator
}
