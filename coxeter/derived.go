// SPDX-License-Identifier: MIT
// Package: dihedral/coxeter
//
// derived.go: operations every Coxeter group gets for free once it
// implements the two element primitives.
//
// Contract:
//   • All functions are pure; they never mutate their arguments.
//   • Errors from the primitives are wrapped with the operation name.
//   • Searches that could diverge on an infinite group take an explicit bound.
//
// Complexity (ℓ = length of the element, r = rank):
//   • ReducedWord, Length: O(ℓ·r) primitive calls.
//   • Inverse, Multiply, left action: O(ℓ·r) primitive calls.

package coxeter

import "fmt"

// FirstDescent returns the smallest generator in the index set that is a
// descent of w on side, and false if w has none.
func FirstDescent[E Element[E]](g Group[E], w E, side Side) (Generator, bool, error) {
	for _, i := range g.IndexSet() {
		ok, err := w.HasDescent(i, side, false)
		if err != nil {
			return 0, false, fmt.Errorf("FirstDescent(%s, %d): %w", w, i, err)
		}
		if ok {
			return i, true, nil
		}
	}

	return 0, false, nil
}

// Descents lists, in index-set order, the generators that are descents of w
// on side (or ascents when positive is set).
func Descents[E Element[E]](g Group[E], w E, side Side, positive bool) ([]Generator, error) {
	out := make([]Generator, 0, len(g.IndexSet()))
	for _, i := range g.IndexSet() {
		ok, err := w.HasDescent(i, side, positive)
		if err != nil {
			return nil, fmt.Errorf("Descents(%s, %d): %w", w, i, err)
		}
		if ok {
			out = append(out, i)
		}
	}

	return out, nil
}

// IsIdentity reports whether w has no right descent, which in a Coxeter
// group characterises the identity.
func IsIdentity[E Element[E]](g Group[E], w E) (bool, error) {
	_, ok, err := FirstDescent(g, w, Right)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// ReducedWord returns a reduced word for w by repeatedly stripping the
// first right descent.
func ReducedWord[E Element[E]](g Group[E], w E) ([]Generator, error) {
	rev := []Generator{}
	cur := w
	for {
		i, ok, err := FirstDescent(g, cur, Right)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if cur, err = cur.ApplySimpleReflectionRight(i); err != nil {
			return nil, fmt.Errorf("ReducedWord: %w", err)
		}
		rev = append(rev, i)
	}

	// reverse: descents were peeled from the right end
	for a, b := 0, len(rev)-1; a < b; a, b = a+1, b-1 {
		rev[a], rev[b] = rev[b], rev[a]
	}

	return rev, nil
}

// Length is the length of any reduced word for w.
func Length[E Element[E]](g Group[E], w E) (int, error) {
	word, err := ReducedWord(g, w)
	if err != nil {
		return 0, err
	}

	return len(word), nil
}

// FromWord multiplies the identity on the right by each generator of word.
// word need not be reduced.
func FromWord[E Element[E]](g Group[E], word []Generator) (E, error) {
	return applyWordRight(g.One(), word)
}

func applyWordRight[E Element[E]](w E, word []Generator) (E, error) {
	cur := w
	for _, i := range word {
		next, err := cur.ApplySimpleReflectionRight(i)
		if err != nil {
			var zero E
			return zero, fmt.Errorf("apply %d to %s: %w", i, cur, err)
		}
		cur = next
	}

	return cur, nil
}

// Inverse returns w⁻¹: the product of the reduced word read backwards.
func Inverse[E Element[E]](g Group[E], w E) (E, error) {
	word, err := ReducedWord(g, w)
	if err != nil {
		var zero E
		return zero, err
	}
	for a, b := 0, len(word)-1; a < b; a, b = a+1, b-1 {
		word[a], word[b] = word[b], word[a]
	}

	return FromWord(g, word)
}

// ApplySimpleReflection returns w·s_i for Right and s_i·w for Left.
// The left action is computed as (w⁻¹·s_i)⁻¹.
func ApplySimpleReflection[E Element[E]](g Group[E], w E, i Generator, side Side) (E, error) {
	var zero E
	switch side {
	case Right:
		return w.ApplySimpleReflectionRight(i)
	case Left:
		inv, err := Inverse(g, w)
		if err != nil {
			return zero, err
		}
		prod, err := inv.ApplySimpleReflectionRight(i)
		if err != nil {
			return zero, err
		}
		return Inverse(g, prod)
	default:
		return zero, fmt.Errorf("%w: %d", ErrInvalidSide, int(side))
	}
}

// Multiply returns a·b.
func Multiply[E Element[E]](g Group[E], a, b E) (E, error) {
	word, err := ReducedWord(g, b)
	if err != nil {
		var zero E
		return zero, err
	}

	return applyWordRight(a, word)
}

// Power returns w^k. Negative k raises the inverse.
func Power[E Element[E]](g Group[E], w E, k int) (E, error) {
	base := w
	if k < 0 {
		inv, err := Inverse(g, w)
		if err != nil {
			var zero E
			return zero, err
		}
		base, k = inv, -k
	}
	word, err := ReducedWord(g, base)
	if err != nil {
		var zero E
		return zero, err
	}

	cur := g.One()
	for ; k > 0; k-- {
		if cur, err = applyWordRight(cur, word); err != nil {
			var zero E
			return zero, err
		}
	}

	return cur, nil
}

// ElementOrder returns the smallest k ≥ 1 with w^k = 1, searching up to limit.
func ElementOrder[E Element[E]](g Group[E], w E, limit int) (int, error) {
	word, err := ReducedWord(g, w)
	if err != nil {
		return 0, err
	}
	one := g.One()
	cur := one
	for k := 1; k <= limit; k++ {
		if cur, err = applyWordRight(cur, word); err != nil {
			return 0, err
		}
		if cur.Equal(one) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: order of %s > %d", ErrNotFinite, w, limit)
}

// LongElement climbs from the identity by right ascents until no ascent is
// left. It fails with ErrNotFinite after limit steps.
func LongElement[E Element[E]](g Group[E], limit int) (E, error) {
	cur := g.One()
	for step := 0; step <= limit; step++ {
		asc, err := Descents(g, cur, Right, true)
		if err != nil {
			return cur, err
		}
		if len(asc) == 0 {
			return cur, nil
		}
		if cur, err = cur.ApplySimpleReflectionRight(asc[0]); err != nil {
			return cur, err
		}
	}

	return cur, fmt.Errorf("%w: no longest element within %d steps", ErrNotFinite, limit)
}
