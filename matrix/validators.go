// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the structural checks behind NewCoxeter.
//  - Return plain sentinel errors (tagged, not re-wrapped) so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures rows is a non-empty square table.
func ValidateSquare(rows [][]int) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateSquare", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return validatorErrorf("ValidateSquare", fmt.Errorf("%w: row %d has %d entries, want %d",
				ErrNonSquare, i, len(row), len(rows)))
		}
	}

	return nil
}

// ValidateSymmetric ensures rows[i][j] == rows[j][i].
// Assumes rows is square (call ValidateSquare first).
func ValidateSymmetric(rows [][]int) error {
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("%w: m[%d][%d]=%d, m[%d][%d]=%d",
					ErrAsymmetry, i, j, rows[i][j], j, i, rows[j][i]))
			}
		}
	}

	return nil
}

// ValidateCoxeterEntries ensures a unit diagonal and off-diagonal entries
// that are ≥ 2 or Infinity. Assumes rows is square.
func ValidateCoxeterEntries(rows [][]int) error {
	for i, row := range rows {
		for j, m := range row {
			switch {
			case i == j && m != 1:
				return validatorErrorf("ValidateCoxeterEntries", fmt.Errorf("%w: m[%d][%d]=%d", ErrDiagonal, i, j, m))
			case i != j && m != Infinity && m < 2:
				return validatorErrorf("ValidateCoxeterEntries", fmt.Errorf("%w: m[%d][%d]=%d", ErrBadEntry, i, j, m))
			}
		}
	}

	return nil
}
