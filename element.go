package dihedral

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dihedral/coxeter"
)

// Element is a dihedral group element stored as its canonical reduced word.
// The zero value belongs to no group; its operations return ErrNilGroup.
type Element struct {
	group *Group
	word  []coxeter.Generator
}

// Group returns the owning group (nil for the zero value).
func (w Element) Group() *Group { return w.group }

// Word returns a copy of the canonical reduced word.
func (w Element) Word() []coxeter.Generator {
	out := make([]coxeter.Generator, len(w.word))
	copy(out, w.word)

	return out
}

// Len returns the Coxeter length, the number of letters in the word.
func (w Element) Len() int { return len(w.word) }

// IsIdentity reports whether w is the empty word.
func (w Element) IsIdentity() bool { return len(w.word) == 0 }

// IsLongest reports whether w is the longest element.
func (w Element) IsLongest() bool { return w.group != nil && len(w.word) == w.group.n }

// Equal reports value equality: same group and same canonical word.
func (w Element) Equal(o Element) bool {
	return w.group == o.group && w.Compare(o) == 0
}

// Compare orders by length, then lexicographically by letters.
// It ignores the owning group.
func (w Element) Compare(o Element) int {
	if len(w.word) != len(o.word) {
		if len(w.word) < len(o.word) {
			return -1
		}
		return 1
	}
	for k := range w.word {
		if w.word[k] != o.word[k] {
			if w.word[k] < o.word[k] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Less reports w.Compare(o) < 0.
func (w Element) Less(o Element) bool { return w.Compare(o) < 0 }

// String renders the word as a tuple: (), (1,), (1, 2).
func (w Element) String() string {
	switch len(w.word) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.Itoa(int(w.word[0])) + ",)"
	}
	parts := make([]string, len(w.word))
	for k, i := range w.word {
		parts[k] = strconv.Itoa(int(i))
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// HasDescent reports whether generator i is a descent of w on side.
// With positive set it reports an ascent instead.
//
//   - The longest element has every generator as a descent on both sides.
//   - The identity has none.
//   - Otherwise i is a descent iff it equals the letter at that end of the
//     word, since s_i s_i = 1.
func (w Element) HasDescent(i coxeter.Generator, side coxeter.Side, positive bool) (bool, error) {
	if w.group == nil {
		return false, ErrNilGroup
	}
	if !validGenerator(i) {
		return false, fmt.Errorf("HasDescent(%s, %d): %w", w, int(i), ErrInvalidGenerator)
	}
	if !side.Valid() {
		return false, fmt.Errorf("HasDescent(%s, %d): %w: %d", w, int(i), ErrInvalidSide, int(side))
	}

	return w.hasDescent(i, side, positive), nil
}

// hasDescent assumes validated inputs.
func (w Element) hasDescent(i coxeter.Generator, side coxeter.Side, positive bool) bool {
	switch k := len(w.word); k {
	case w.group.n:
		return !positive
	case 0:
		return positive
	default:
		boundary := w.word[k-1]
		if side == coxeter.Left {
			boundary = w.word[0]
		}
		return (i == boundary) == !positive
	}
}

// HasRightDescent reports whether length(w·s_i) < length(w).
func (w Element) HasRightDescent(i coxeter.Generator) (bool, error) {
	return w.HasDescent(i, coxeter.Right, false)
}

// HasLeftDescent reports whether length(s_i·w) < length(w).
func (w Element) HasLeftDescent(i coxeter.Generator) (bool, error) {
	return w.HasDescent(i, coxeter.Left, false)
}

// Descents lists the descents (or ascents, with positive) of w on side.
func (w Element) Descents(side coxeter.Side, positive bool) ([]coxeter.Generator, error) {
	if w.group == nil {
		return nil, ErrNilGroup
	}

	return coxeter.Descents[Element](w.group, w, side, positive)
}

// ApplySimpleReflectionRight returns w·s_i in canonical form.
//
//  1. w longest: the product has length n-1. The canonical longest word
//     ends in 1 when n is odd and in 2 when n is even; if i is that last
//     letter it cancels, otherwise the first letter is dropped (the product
//     is read off the other reduced word of the longest element).
//  2. length n-1, i an ascent, word starting with 2: appending i would give
//     the non-canonical word (2,1,...) of the longest element, so 1 is
//     prepended instead.
//  3. otherwise the last letter cancels when i is a descent, else i is appended.
func (w Element) ApplySimpleReflectionRight(i coxeter.Generator) (Element, error) {
	if w.group == nil {
		return Element{}, ErrNilGroup
	}
	if !validGenerator(i) {
		return Element{}, fmt.Errorf("ApplySimpleReflectionRight(%s, %d): %w", w, int(i), ErrInvalidGenerator)
	}

	n, k := w.group.n, len(w.word)
	switch {
	case k == n:
		if (i == S1 && n%2 == 1) || (i == S2 && n%2 == 0) {
			return w.with(w.word[:k-1]), nil
		}
		return w.with(w.word[1:]), nil
	case k == n-1 && w.word[0] == S2 && !w.hasDescent(i, coxeter.Right, false):
		word := make([]coxeter.Generator, 0, n)
		word = append(word, S1)
		return w.group.element(append(word, w.word...)), nil
	case w.hasDescent(i, coxeter.Right, false):
		return w.with(w.word[:k-1]), nil
	default:
		word := make([]coxeter.Generator, 0, k+1)
		word = append(word, w.word...)
		return w.group.element(append(word, i)), nil
	}
}

// ApplySimpleReflection returns w·s_i (Right) or s_i·w (Left).
func (w Element) ApplySimpleReflection(i coxeter.Generator, side coxeter.Side) (Element, error) {
	if w.group == nil {
		return Element{}, ErrNilGroup
	}

	return coxeter.ApplySimpleReflection[Element](w.group, w, i, side)
}

// with copies part into a fresh element of the same group.
func (w Element) with(part []coxeter.Generator) Element {
	cp := make([]coxeter.Generator, len(part))
	copy(cp, part)

	return w.group.element(cp)
}
