package dihedral

import (
	"errors"

	"github.com/katalvlaran/dihedral/coxeter"
)

// Sentinel errors for dihedral group operations.
var (
	// ErrInvalidParameter indicates n < 2.
	ErrInvalidParameter = errors.New("dihedral: n must be >= 2")

	// ErrInvalidGenerator aliases the coxeter sentinel so errors.Is matches
	// both spellings.
	ErrInvalidGenerator = coxeter.ErrInvalidGenerator

	// ErrInvalidSide aliases the coxeter sentinel.
	ErrInvalidSide = coxeter.ErrInvalidSide

	// ErrInvalidWord indicates a word that is not canonical for the group.
	ErrInvalidWord = errors.New("dihedral: not a canonical reduced word")

	// ErrNilGroup indicates an operation on the zero Element.
	ErrNilGroup = errors.New("dihedral: element has no group")

	// ErrForeignElement indicates operands that belong to different groups.
	ErrForeignElement = errors.New("dihedral: element belongs to another group")
)
