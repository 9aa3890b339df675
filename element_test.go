package dihedral_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dihedral"
	"github.com/katalvlaran/dihedral/coxeter"
)

// allElements enumerates g through the generic closure.
func allElements(t *testing.T, g *dihedral.Group) []dihedral.Element {
	t.Helper()
	res, err := coxeter.Closure[dihedral.Element](g)
	require.NoError(t, err)

	return res.Elements
}

func TestHasDescent_D6(t *testing.T) {
	g := dihedral.MustNew(6)
	s := g.SimpleReflections()

	check := func(w dihedral.Element, i coxeter.Generator, want bool) {
		t.Helper()
		got, err := w.HasRightDescent(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s.HasRightDescent(%d)", w, i)
	}
	check(s[0], 1, true)
	check(s[0], 2, false)
	check(g.One(), 1, false)
	check(g.One(), 2, false)
	check(g.LongElement(), 1, true)
	check(g.LongElement(), 2, true)
}

func TestHasDescent_Table(t *testing.T) {
	g := dihedral.MustNew(5)
	w := g.MustElement(1, 2, 1, 2) // left end 1, right end 2

	cases := []struct {
		i        coxeter.Generator
		side     coxeter.Side
		positive bool
		want     bool
	}{
		{1, coxeter.Right, false, false},
		{2, coxeter.Right, false, true},
		{1, coxeter.Left, false, true},
		{2, coxeter.Left, false, false},
		{1, coxeter.Right, true, true},
		{2, coxeter.Right, true, false},
		{1, coxeter.Left, true, false},
		{2, coxeter.Left, true, true},
	}
	for _, tc := range cases {
		got, err := w.HasDescent(tc.i, tc.side, tc.positive)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "i=%d side=%s positive=%v", tc.i, tc.side, tc.positive)
	}

	// boundary states ignore the side and flip with positive
	for _, side := range []coxeter.Side{coxeter.Left, coxeter.Right} {
		for _, i := range g.IndexSet() {
			for _, positive := range []bool{false, true} {
				got, err := g.One().HasDescent(i, side, positive)
				require.NoError(t, err)
				assert.Equal(t, positive, got)

				got, err = g.LongElement().HasDescent(i, side, positive)
				require.NoError(t, err)
				assert.Equal(t, !positive, got)
			}
		}
	}
}

func TestHasDescent_Errors(t *testing.T) {
	g := dihedral.MustNew(4)
	w := g.AnElement()

	_, err := w.HasDescent(3, coxeter.Right, false)
	assert.ErrorIs(t, err, dihedral.ErrInvalidGenerator)
	_, err = w.HasDescent(0, coxeter.Left, false)
	assert.ErrorIs(t, err, dihedral.ErrInvalidGenerator)
	_, err = w.HasDescent(1, coxeter.Side(7), false)
	assert.ErrorIs(t, err, dihedral.ErrInvalidSide)
	_, err = dihedral.Element{}.HasDescent(1, coxeter.Right, false)
	assert.ErrorIs(t, err, dihedral.ErrNilGroup)
	_, err = dihedral.Element{}.Descents(coxeter.Right, false)
	assert.ErrorIs(t, err, dihedral.ErrNilGroup)
}

func TestDescents(t *testing.T) {
	g := dihedral.MustNew(4)
	w := g.MustElement(2, 1)

	right, err := w.Descents(coxeter.Right, false)
	require.NoError(t, err)
	assert.Equal(t, []coxeter.Generator{1}, right)

	left, err := w.Descents(coxeter.Left, false)
	require.NoError(t, err)
	assert.Equal(t, []coxeter.Generator{2}, left)

	asc, err := w.Descents(coxeter.Right, true)
	require.NoError(t, err)
	assert.Equal(t, []coxeter.Generator{2}, asc)
}

func TestApplySimpleReflectionRight_Cases(t *testing.T) {
	cases := []struct {
		n    int
		word []coxeter.Generator
		i    coxeter.Generator
		want string
	}{
		// longest element, odd n: (1,2,1,2,1) ends in 1
		{5, []coxeter.Generator{1, 2, 1, 2, 1}, 1, "(1, 2, 1, 2)"},
		{5, []coxeter.Generator{1, 2, 1, 2, 1}, 2, "(2, 1, 2, 1)"},
		// longest element, even n: (1,2,1,2) ends in 2
		{4, []coxeter.Generator{1, 2, 1, 2}, 2, "(1, 2, 1)"},
		{4, []coxeter.Generator{1, 2, 1, 2}, 1, "(2, 1, 2)"},
		{2, []coxeter.Generator{1, 2}, 1, "(2,)"},
		{2, []coxeter.Generator{1, 2}, 2, "(1,)"},
		// one below the top, starting with 2: prepend 1
		{5, []coxeter.Generator{2, 1, 2, 1}, 2, "(1, 2, 1, 2, 1)"},
		{4, []coxeter.Generator{2, 1, 2}, 1, "(1, 2, 1, 2)"},
		{2, []coxeter.Generator{2}, 1, "(1, 2)"},
		// one below the top, starting with 1: append
		{5, []coxeter.Generator{1, 2, 1, 2}, 1, "(1, 2, 1, 2, 1)"},
		// one below the top, descent: drop
		{5, []coxeter.Generator{2, 1, 2, 1}, 1, "(2, 1, 2)"},
		// general case
		{6, nil, 2, "(2,)"},
		{6, []coxeter.Generator{1}, 1, "()"},
		{6, []coxeter.Generator{1, 2}, 1, "(1, 2, 1)"},
		{6, []coxeter.Generator{1, 2}, 2, "(1,)"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d/%v·s%d", tc.n, tc.word, tc.i), func(t *testing.T) {
			g := dihedral.MustNew(tc.n)
			w, err := g.NewElement(tc.word)
			require.NoError(t, err)

			got, err := w.ApplySimpleReflectionRight(tc.i)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
			assert.True(t, g.Contains(got))
			assert.Equal(t, tc.word, nilIfEmpty(w.Word()), "input must not be mutated")
		})
	}
}

func nilIfEmpty(w []coxeter.Generator) []coxeter.Generator {
	if len(w) == 0 {
		return nil
	}

	return w
}

func TestApplySimpleReflectionRight_Errors(t *testing.T) {
	g := dihedral.MustNew(3)
	_, err := g.One().ApplySimpleReflectionRight(3)
	assert.ErrorIs(t, err, dihedral.ErrInvalidGenerator)
	_, err = dihedral.Element{}.ApplySimpleReflectionRight(1)
	assert.ErrorIs(t, err, dihedral.ErrNilGroup)
	_, err = dihedral.Element{}.ApplySimpleReflection(1, coxeter.Left)
	assert.ErrorIs(t, err, dihedral.ErrNilGroup)
}

func TestApplySimpleReflectionRight_ClosureSize(t *testing.T) {
	for n := 2; n <= 16; n++ {
		g := dihedral.MustNew(n)
		assert.Len(t, allElements(t, g), 2*n, "n=%d", n)
	}
}

func TestApplySimpleReflectionRight_Involution(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g := dihedral.MustNew(n)
		for _, w := range allElements(t, g) {
			for _, i := range g.IndexSet() {
				once, err := w.ApplySimpleReflectionRight(i)
				require.NoError(t, err)
				twice, err := once.ApplySimpleReflectionRight(i)
				require.NoError(t, err)
				require.True(t, twice.Equal(w), "n=%d: (%s·s%d)·s%d = %s", n, w, i, i, twice)
			}
		}
	}
}

func TestApplySimpleReflectionRight_Canonical(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g := dihedral.MustNew(n)
		for _, w := range allElements(t, g) {
			for _, i := range g.IndexSet() {
				p, err := w.ApplySimpleReflectionRight(i)
				require.NoError(t, err)
				_, err = g.NewElement(p.Word())
				require.NoError(t, err, "n=%d: %s·s%d = %s is not canonical", n, w, i, p)
				require.Equal(t, 1, abs(p.Len()-w.Len()), "length changes by one")
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func TestLongestElement_Unique(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g := dihedral.MustNew(n)
		var longest []dihedral.Element
		for _, w := range allElements(t, g) {
			if w.Len() == n {
				longest = append(longest, w)
			}
		}
		require.Len(t, longest, 1, "n=%d", n)

		want := make([]coxeter.Generator, n)
		for k := range want {
			want[k] = coxeter.Generator(1 + k%2)
		}
		if diff := cmp.Diff(want, longest[0].Word()); diff != "" {
			t.Fatalf("n=%d longest word (-want +got):\n%s", n, diff)
		}
	}
}

func TestDescentConsistency(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g := dihedral.MustNew(n)
		for _, w := range allElements(t, g) {
			for _, side := range []coxeter.Side{coxeter.Right, coxeter.Left} {
				desc, err := w.Descents(side, false)
				require.NoError(t, err)
				switch k := w.Len(); {
				case k == 0:
					assert.Empty(t, desc)
				case k == n:
					assert.Len(t, desc, 2)
				default:
					assert.Len(t, desc, 1, "n=%d w=%s side=%s", n, w, side)
				}
			}
		}
	}
}

func TestCoxeterRelation_N6(t *testing.T) {
	g := dihedral.MustNew(6)
	w := g.One()
	for k := 1; k <= 6; k++ {
		var err error
		w, err = w.ApplySimpleReflectionRight(1)
		require.NoError(t, err)
		w, err = w.ApplySimpleReflectionRight(2)
		require.NoError(t, err)
		if k < 6 {
			assert.False(t, w.IsIdentity(), "(s1 s2)^%d = %s", k, w)
		} else {
			assert.True(t, w.IsIdentity(), "(s1 s2)^6 = %s", w)
		}
	}
}

func TestPowers_D5(t *testing.T) {
	g := dihedral.MustNew(5)
	elems, err := g.Elements()
	require.NoError(t, err)

	squares := make([]string, len(elems))
	fifths := make([]string, len(elems))
	for k, w := range elems {
		sq, err := coxeter.Power[dihedral.Element](g, w, 2)
		require.NoError(t, err)
		squares[k] = sq.String()
		p5, err := coxeter.Power[dihedral.Element](g, w, 5)
		require.NoError(t, err)
		fifths[k] = p5.String()
	}
	assert.Equal(t, []string{
		"()", "()", "()", "(1, 2, 1, 2)", "(2, 1, 2, 1)", "()", "()", "(2, 1)", "(1, 2)", "()",
	}, squares)
	assert.Equal(t, []string{
		"()", "(1,)", "(2,)", "()", "()", "(1, 2, 1)", "(2, 1, 2)", "()", "()", "(1, 2, 1, 2, 1)",
	}, fifths)
}

func TestApplySimpleReflection_Left(t *testing.T) {
	g := dihedral.MustNew(5)
	w := g.MustElement(1, 2)

	got, err := w.ApplySimpleReflection(2, coxeter.Left)
	require.NoError(t, err)
	assert.Equal(t, "(2, 1, 2)", got.String())

	got, err = w.ApplySimpleReflection(1, coxeter.Left)
	require.NoError(t, err)
	assert.Equal(t, "(2,)", got.String())

	// left action on the longest element lands on length n-1
	got, err = g.LongElement().ApplySimpleReflection(1, coxeter.Left)
	require.NoError(t, err)
	assert.Equal(t, "(2, 1, 2, 1)", got.String())
}

func TestElement_OrderingAndString(t *testing.T) {
	g := dihedral.MustNew(4)
	a := g.MustElement(2)
	b := g.MustElement(1, 2)
	c := g.MustElement(2, 1)

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.Equal(t, 0, c.Compare(g.MustElement(2, 1)))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, "(2,)", a.String())
	assert.Equal(t, "()", dihedral.Element{}.String())
	assert.Same(t, g, a.Group())
	assert.False(t, a.IsLongest())
	assert.False(t, dihedral.Element{}.IsLongest())
}
