package dihedral_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dihedral/coxeter"
	"github.com/katalvlaran/dihedral"
)

func TestNew_InvalidParameter(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		g, err := dihedral.New(n)
		require.Nil(t, g)
		require.ErrorIs(t, err, dihedral.ErrInvalidParameter, "n=%d", n)

		g, err = dihedral.NewUnshared(n)
		require.Nil(t, g)
		require.ErrorIs(t, err, dihedral.ErrInvalidParameter, "unshared n=%d", n)
	}
}

func TestNew_SharedInstance(t *testing.T) {
	a, err := dihedral.New(7)
	require.NoError(t, err)
	b, err := dihedral.New(7)
	require.NoError(t, err)
	assert.Same(t, a, b, "equal n must share one descriptor")

	c, err := dihedral.New(8)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	u, err := dihedral.NewUnshared(7)
	require.NoError(t, err)
	assert.NotSame(t, a, u)
}

func TestNew_ConcurrentRegistry(t *testing.T) {
	const workers = 32
	got := make([]*dihedral.Group, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = dihedral.MustNew(11)
		}(i)
	}
	wg.Wait()
	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i])
	}
}

func TestGroup_Constants(t *testing.T) {
	g := dihedral.MustNew(6)

	assert.Equal(t, 6, g.N())
	assert.Equal(t, 12, g.Order())
	assert.Equal(t, 2, g.Rank())
	assert.Equal(t, [2]int{2, 6}, g.Degrees())
	assert.Equal(t, []coxeter.Generator{1, 2}, g.IndexSet())
	assert.Equal(t, [][]int{{1, 6}, {6, 1}}, g.CoxeterMatrix().Rows())
	assert.Equal(t, "[1 6]\n[6 1]", g.CoxeterMatrix().String())
	assert.Equal(t, "The 6-th dihedral group of order 12", g.String())
	assert.Equal(t, "The 5-th dihedral group of order 10", dihedral.MustNew(5).String())
}

func TestGroup_DistinguishedElements(t *testing.T) {
	g := dihedral.MustNew(6)

	assert.Equal(t, "()", g.One().String())
	assert.True(t, g.One().IsIdentity())
	assert.Equal(t, "(1, 2)", g.AnElement().String())
	assert.Equal(t, "(1, 2, 1, 2, 1, 2)", g.LongElement().String())
	assert.True(t, g.LongElement().IsLongest())

	s := g.SimpleReflections()
	require.Len(t, s, 2)
	assert.Equal(t, "(1,)", s[0].String())
	assert.Equal(t, "(2,)", s[1].String())

	s2, err := g.SimpleReflection(2)
	require.NoError(t, err)
	assert.True(t, s2.Equal(s[1]))

	_, err = g.SimpleReflection(3)
	assert.ErrorIs(t, err, dihedral.ErrInvalidGenerator)

	// the generic climb agrees with the direct construction
	long, err := coxeter.LongElement[dihedral.Element](g, 2*g.N())
	require.NoError(t, err)
	assert.True(t, long.Equal(g.LongElement()), "got %s", long)
}

func TestGroup_Contains(t *testing.T) {
	g := dihedral.MustNew(5)
	same := dihedral.MustNew(5)
	other := dihedral.MustNew(4)
	private, err := dihedral.NewUnshared(5)
	require.NoError(t, err)

	w := g.AnElement()
	assert.True(t, g.Contains(w))
	assert.True(t, same.Contains(w), "registry shares the instance")
	assert.True(t, g.Contains(&w))
	assert.False(t, other.Contains(w))
	assert.False(t, private.Contains(w), "membership is by identity, not by word")
	assert.False(t, g.Contains(private.AnElement()))
	assert.False(t, g.Contains(1))
	assert.False(t, g.Contains((*dihedral.Element)(nil)))
	assert.False(t, g.Contains(dihedral.Element{}))

	// equal words in different instances are different elements
	assert.False(t, w.Equal(private.AnElement()))
}

func TestGroup_NewElement(t *testing.T) {
	g := dihedral.MustNew(4)

	cases := []struct {
		name string
		word []coxeter.Generator
		err  error
	}{
		{"identity", nil, nil},
		{"s1", []coxeter.Generator{1}, nil},
		{"alt", []coxeter.Generator{2, 1, 2}, nil},
		{"longest", []coxeter.Generator{1, 2, 1, 2}, nil},
		{"longest other word", []coxeter.Generator{2, 1, 2, 1}, dihedral.ErrInvalidWord},
		{"too long", []coxeter.Generator{1, 2, 1, 2, 1}, dihedral.ErrInvalidWord},
		{"repeat", []coxeter.Generator{1, 1}, dihedral.ErrInvalidWord},
		{"bad letter", []coxeter.Generator{1, 3}, dihedral.ErrInvalidGenerator},
		{"zero letter", []coxeter.Generator{0}, dihedral.ErrInvalidGenerator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := g.NewElement(tc.word)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(append([]coxeter.Generator{}, tc.word...), w.Word()); diff != "" {
				t.Errorf("Word() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Panics(t, func() { g.MustElement(2, 2) })
}

func TestGroup_NewElementCopiesInput(t *testing.T) {
	g := dihedral.MustNew(5)
	word := []coxeter.Generator{1, 2}
	w, err := g.NewElement(word)
	require.NoError(t, err)

	word[0] = 2
	assert.Equal(t, "(1, 2)", w.String())

	out := w.Word()
	out[1] = 1
	assert.Equal(t, "(1, 2)", w.String())
}

func TestGroup_ElementsN5(t *testing.T) {
	g := dihedral.MustNew(5)
	elems, err := g.Elements()
	require.NoError(t, err)

	got := make([]string, len(elems))
	for i, w := range elems {
		got[i] = w.String()
	}
	want := []string{
		"()", "(1,)", "(2,)", "(1, 2)", "(2, 1)", "(1, 2, 1)", "(2, 1, 2)",
		"(1, 2, 1, 2)", "(2, 1, 2, 1)", "(1, 2, 1, 2, 1)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Elements() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_ElementsOrder(t *testing.T) {
	for n := 2; n <= 12; n++ {
		g := dihedral.MustNew(n)
		elems, err := g.Elements()
		require.NoError(t, err)
		require.Len(t, elems, 2*n, "n=%d", n)
	}
}

func TestGroup_MultiplyInverse(t *testing.T) {
	g := dihedral.MustNew(5)
	a := g.MustElement(1, 2)
	b := g.MustElement(2, 1, 2)

	ab, err := g.Multiply(a, b)
	require.NoError(t, err)
	// (1,2)(2,1,2) = 1·(2·2)·1·2 = (1,1,2) = (2,)
	assert.Equal(t, "(2,)", ab.String())

	inv, err := g.Inverse(a)
	require.NoError(t, err)
	assert.Equal(t, "(2, 1)", inv.String())

	one, err := g.Multiply(a, inv)
	require.NoError(t, err)
	assert.True(t, one.IsIdentity())

	_, err = g.Multiply(a, dihedral.MustNew(6).AnElement())
	assert.ErrorIs(t, err, dihedral.ErrForeignElement)
	_, err = g.Inverse(dihedral.Element{})
	assert.ErrorIs(t, err, dihedral.ErrNilGroup)
}

func TestGroup_CayleyGraphN3(t *testing.T) {
	g := dihedral.MustNew(3)
	cg, err := g.CayleyGraph(coxeter.Right)
	require.NoError(t, err)

	type edge struct {
		From, To string
		Label    int
	}
	var got []edge
	for _, e := range cg.Edges() {
		got = append(got, edge{e.From, e.To, e.Label})
	}
	want := []edge{
		{"()", "(1,)", 1},
		{"()", "(2,)", 2},
		{"(1,)", "()", 1},
		{"(1,)", "(1, 2)", 2},
		{"(2,)", "(2, 1)", 1},
		{"(2,)", "()", 2},
		{"(1, 2)", "(1, 2, 1)", 1},
		{"(1, 2)", "(1,)", 2},
		{"(2, 1)", "(2,)", 1},
		{"(2, 1)", "(1, 2, 1)", 2},
		{"(1, 2, 1)", "(1, 2)", 1},
		{"(1, 2, 1)", "(2, 1)", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Cayley edges mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, cg.IsCycle())
	assert.True(t, cg.IsUndirected())
	assert.True(t, cg.LabelsAlternate())
}

func TestGroup_CayleyGraphIsCycle(t *testing.T) {
	for n := 2; n <= 9; n++ {
		g := dihedral.MustNew(n)
		for _, side := range []coxeter.Side{coxeter.Right, coxeter.Left} {
			cg, err := g.CayleyGraph(side)
			require.NoError(t, err)
			require.Equal(t, 2*n, cg.VertexCount(), "n=%d side=%s", n, side)
			require.Equal(t, 4*n, cg.EdgeCount(), "n=%d side=%s", n, side)
			require.True(t, cg.IsCycle(), "n=%d side=%s", n, side)
			require.True(t, cg.IsUndirected(), "n=%d side=%s", n, side)
		}
	}
}

func TestGroup_ErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(dihedral.ErrInvalidWord, dihedral.ErrInvalidGenerator))
	assert.True(t, errors.Is(dihedral.ErrInvalidGenerator, coxeter.ErrInvalidGenerator))
}
