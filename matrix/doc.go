// Package matrix offers the Coxeter matrix of a Coxeter system.
//
// A Coxeter matrix M is a symmetric r×r integer matrix with M[i][i] = 1 and
// M[i][j] ∈ {2, 3, ...} ∪ {∞} off the diagonal. Entry M[i][j] = m says that
// (s_i s_j)^m = 1 and no smaller positive power of s_i s_j is the identity.
//
// The package provides:
//
//   - Coxeter: an immutable, validated value type (NewCoxeter, Dihedral).
//   - Validators shared by the constructor (ValidateSquare, ValidateSymmetric,
//     ValidateCoxeterEntries).
//   - BilinearForm: the associated symmetric form B[i][j] = -cos(π/M[i][j]),
//     and IsFinite, which tests it for positive definiteness.
//
// Infinity is encoded as 0, the conventional "no relation" marker.
//
// Example:
//
//	m, _ := matrix.Dihedral(6)
//	fmt.Println(m)
//	// [1 6]
//	// [6 1]
package matrix
