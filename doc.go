// Package dihedral implements the dihedral group of order 2n as a finite
// Coxeter group, the worked model for plugging a concrete group into the
// generic coxeter package.
//
// What
//
//   - Group: the descriptor. It holds n ≥ 2 and the derived constants:
//     index set (1, 2), degrees (2, n), Coxeter matrix [[1,n],[n,1]].
//   - Element: an immutable value holding the element's canonical reduced
//     word over {1, 2}. Every word of length < n is the unique reduced word
//     of its element. The longest element has two reduced words; the
//     canonical one alternates starting with 1: (1,2,1,2,...).
//   - Two primitives, HasDescent and ApplySimpleReflectionRight, answer
//     from n and the word's length and endpoints alone. Everything else
//     (inverse, products, left action, enumeration, the Cayley graph) is
//     derived by package coxeter.
//
// Instances
//
//	New(n) returns one shared *Group per n, so membership is a pointer
//	comparison: an element belongs to g iff g built it. NewUnshared gives a
//	private descriptor whose elements are never members of the shared one.
//
// Concurrency
//
//	Groups and Elements are immutable after construction and may be shared
//	across goroutines freely. The registry is the only locked state.
//
// Usage
//
//	g, err := dihedral.New(5)
//	if err != nil {
//		// ErrInvalidParameter
//	}
//	w := g.One()
//	w, _ = w.ApplySimpleReflectionRight(1) // (1,)
//	w, _ = w.ApplySimpleReflectionRight(2) // (1, 2)
//	ok, _ := w.HasDescent(2, coxeter.Right, false) // true
//	fmt.Println(g, w)
//	// The 5-th dihedral group of order 10 (1, 2)
//
// Errors
//
//   - ErrInvalidParameter  n < 2.
//   - ErrInvalidGenerator  generator label outside {1, 2}.
//   - ErrInvalidSide       side other than coxeter.Left / coxeter.Right.
//   - ErrInvalidWord       word that is not a canonical reduced word of the group.
//   - ErrNilGroup          operation on the zero Element.
//   - ErrForeignElement    operands owned by different groups.
package dihedral
