// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every constructor and accessor returns one of these sentinels, possibly
// wrapped with fmt.Errorf("ctx: %w", ErrX); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the requested rank is < 1.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals m[i][j] != m[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrDiagonal signals a diagonal entry other than 1.
	ErrDiagonal = errors.New("matrix: diagonal entry is not 1")

	// ErrBadEntry signals an off-diagonal entry that is neither ≥ 2 nor Infinity.
	ErrBadEntry = errors.New("matrix: off-diagonal entry must be >= 2 or infinity")

	// ErrNilMatrix indicates that a nil *Coxeter was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
