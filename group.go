package dihedral

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/dihedral/coxeter"
	"github.com/katalvlaran/dihedral/matrix"
)

const (
	minN = 2
	rank = 2
)

// Generator labels of the dihedral group.
const (
	S1 coxeter.Generator = 1
	S2 coxeter.Generator = 2
)

// registry maps n to the shared descriptor returned by New.
var registry = struct {
	sync.Mutex
	groups map[int]*Group
}{groups: make(map[int]*Group)}

// Group is the dihedral group of order 2n. It is immutable.
type Group struct {
	n      int
	matrix *matrix.Coxeter
	one    Element
}

// New returns the shared dihedral group of order 2n. Equal n yields the
// same pointer, so elements built by one call are members of the group
// returned by any other call with the same n.
// Returns ErrInvalidParameter when n < 2.
func New(n int) (*Group, error) {
	if n < minN {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidParameter)
	}

	registry.Lock()
	defer registry.Unlock()
	if g, ok := registry.groups[n]; ok {
		return g, nil
	}
	g, err := newGroup(n)
	if err != nil {
		return nil, err
	}
	registry.groups[n] = g

	return g, nil
}

// MustNew is like New but panics on error. Intended for tests and package
// level variables with constant n.
func MustNew(n int) *Group {
	g, err := New(n)
	if err != nil {
		panic(err)
	}

	return g
}

// NewUnshared builds a descriptor that bypasses the registry. Its elements
// compare unequal to, and are not members of, any other group instance.
func NewUnshared(n int) (*Group, error) {
	if n < minN {
		return nil, fmt.Errorf("NewUnshared(%d): %w", n, ErrInvalidParameter)
	}

	return newGroup(n)
}

func newGroup(n int) (*Group, error) {
	m, err := matrix.Dihedral(n)
	if err != nil {
		return nil, fmt.Errorf("dihedral: coxeter matrix for n=%d: %w", n, err)
	}
	g := &Group{n: n, matrix: m}
	g.one = Element{group: g, word: []coxeter.Generator{}}

	return g, nil
}

// N returns the order parameter n.
func (g *Group) N() int { return g.n }

// Order returns 2n.
func (g *Group) Order() int { return 2 * g.n }

// Rank returns the number of simple reflections, always 2.
func (g *Group) Rank() int { return rank }

// Degrees returns the degrees of the basic invariants, (2, n).
func (g *Group) Degrees() [2]int { return [2]int{2, g.n} }

// CoxeterMatrix returns [[1, n], [n, 1]]. The matrix is immutable and shared.
func (g *Group) CoxeterMatrix() *matrix.Coxeter { return g.matrix }

// IndexSet returns the generator labels (1, 2).
func (g *Group) IndexSet() []coxeter.Generator { return []coxeter.Generator{S1, S2} }

// One returns the identity (empty word).
func (g *Group) One() Element { return g.one }

// SimpleReflection returns s_i.
func (g *Group) SimpleReflection(i coxeter.Generator) (Element, error) {
	return g.one.ApplySimpleReflectionRight(i)
}

// SimpleReflections returns (s_1, s_2).
func (g *Group) SimpleReflections() []Element {
	return []Element{
		g.element([]coxeter.Generator{S1}),
		g.element([]coxeter.Generator{S2}),
	}
}

// LongElement returns the element of length n with its canonical word (1,2,1,...).
func (g *Group) LongElement() Element {
	return g.element(alternating(S1, g.n))
}

// AnElement returns (1, 2), a typical non-trivial element.
func (g *Group) AnElement() Element {
	return g.element([]coxeter.Generator{S1, S2})
}

// NewElement validates word and wraps it. The word must be canonical:
// letters in {1, 2}, no two equal neighbours, length ≤ n, and a length-n
// word must start with 1.
func (g *Group) NewElement(word []coxeter.Generator) (Element, error) {
	if err := g.validateWord(word); err != nil {
		return Element{}, err
	}
	cp := make([]coxeter.Generator, len(word))
	copy(cp, word)

	return g.element(cp), nil
}

// MustElement is like NewElement but panics on error.
func (g *Group) MustElement(word ...coxeter.Generator) Element {
	w, err := g.NewElement(word)
	if err != nil {
		panic(err)
	}

	return w
}

// FromWord multiplies out an arbitrary (not necessarily reduced) word.
func (g *Group) FromWord(word []coxeter.Generator) (Element, error) {
	return coxeter.FromWord[Element](g, word)
}

// Elements returns all 2n elements ordered by length, then lexicographically.
func (g *Group) Elements() ([]Element, error) {
	res, err := coxeter.Closure[Element](g, coxeter.WithLimit(g.Order()))
	if err != nil {
		return nil, fmt.Errorf("dihedral: enumerate n=%d: %w", g.n, err)
	}
	out := make([]Element, len(res.Elements))
	copy(out, res.Elements)
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })

	return out, nil
}

// Multiply returns a·b. Both operands must belong to g.
func (g *Group) Multiply(a, b Element) (Element, error) {
	if err := g.owns(a, b); err != nil {
		return Element{}, err
	}

	return coxeter.Multiply[Element](g, a, b)
}

// Inverse returns w⁻¹.
func (g *Group) Inverse(w Element) (Element, error) {
	if err := g.owns(w); err != nil {
		return Element{}, err
	}

	return coxeter.Inverse[Element](g, w)
}

// Contains reports whether x is an Element built by this exact group
// instance. The test is by identity, not by value.
func (g *Group) Contains(x any) bool {
	switch v := x.(type) {
	case Element:
		return v.group == g
	case *Element:
		return v != nil && v.group == g
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (g *Group) String() string {
	return fmt.Sprintf("The %d-th dihedral group of order %d", g.n, 2*g.n)
}

func (g *Group) owns(ws ...Element) error {
	for _, w := range ws {
		if w.group == nil {
			return ErrNilGroup
		}
		if w.group != g {
			return fmt.Errorf("%w: %s is not in %s", ErrForeignElement, w, g)
		}
	}

	return nil
}

// element wraps word without copying; callers hand over ownership.
func (g *Group) element(word []coxeter.Generator) Element {
	return Element{group: g, word: word}
}

func (g *Group) validateWord(word []coxeter.Generator) error {
	if len(word) > g.n {
		return fmt.Errorf("%w: length %d > n=%d", ErrInvalidWord, len(word), g.n)
	}
	for k, i := range word {
		if !validGenerator(i) {
			return fmt.Errorf("%w: letter %d at position %d", ErrInvalidGenerator, int(i), k)
		}
		if k > 0 && word[k-1] == i {
			return fmt.Errorf("%w: repeated letter %d at position %d", ErrInvalidWord, int(i), k)
		}
	}
	if len(word) == g.n && word[0] != S1 {
		return fmt.Errorf("%w: longest element must start with %d", ErrInvalidWord, int(S1))
	}

	return nil
}

func validGenerator(i coxeter.Generator) bool { return i == S1 || i == S2 }

// other returns the generator that is not i.
func other(i coxeter.Generator) coxeter.Generator {
	if i == S1 {
		return S2
	}

	return S1
}

// alternating returns (first, other, first, ...) of length k.
func alternating(first coxeter.Generator, k int) []coxeter.Generator {
	out := make([]coxeter.Generator, k)
	cur := first
	for j := range out {
		out[j] = cur
		cur = other(cur)
	}

	return out
}
