package verify

import (
	"fmt"

	"github.com/katalvlaran/dihedral"
	"github.com/katalvlaran/dihedral/coxeter"
)

// checker accumulates failures for one group. Each check returns an error
// only for primitive failures that make further checking meaningless.
type checker struct {
	group *dihedral.Group
	elems []dihedral.Element
	rep   Report
}

func (c *checker) expect(ok bool, format string, args ...any) {
	c.rep.Checks++
	if !ok {
		c.rep.Failures = append(c.rep.Failures, fmt.Sprintf(format, args...))
	}
}

// order: the closure has exactly 2n elements.
func (c *checker) order() error {
	c.expect(len(c.elems) == c.group.Order(), "closure has %d elements, want %d", len(c.elems), c.group.Order())
	return nil
}

// involution: (w·s_i)·s_i = w.
func (c *checker) involution() error {
	for _, w := range c.elems {
		for _, i := range c.group.IndexSet() {
			once, err := w.ApplySimpleReflectionRight(i)
			if err != nil {
				return err
			}
			twice, err := once.ApplySimpleReflectionRight(i)
			if err != nil {
				return err
			}
			c.expect(twice.Equal(w), "(%s·s%d)·s%d = %s", w, i, i, twice)
		}
	}

	return nil
}

// canonical: every product is accepted by the strict constructor and the
// length changes by exactly one.
func (c *checker) canonical() error {
	for _, w := range c.elems {
		for _, i := range c.group.IndexSet() {
			p, err := w.ApplySimpleReflectionRight(i)
			if err != nil {
				return err
			}
			_, err = c.group.NewElement(p.Word())
			c.expect(err == nil, "%s·s%d = %s is not canonical: %v", w, i, p, err)
			d := p.Len() - w.Len()
			c.expect(d == 1 || d == -1, "%s·s%d = %s changes length by %d", w, i, p, d)
		}
	}

	return nil
}

// longest: exactly one element of length n, spelled (1,2,1,...).
func (c *checker) longest() error {
	var found []dihedral.Element
	for _, w := range c.elems {
		if w.Len() == c.group.N() {
			found = append(found, w)
		}
	}
	c.expect(len(found) == 1, "%d elements of length n", len(found))
	if len(found) == 1 {
		c.expect(found[0].Equal(c.group.LongElement()), "longest element is %s", found[0])
	}

	return nil
}

// descents: none for the identity, both for the longest element, exactly
// one per side otherwise.
func (c *checker) descents() error {
	n := c.group.N()
	for _, w := range c.elems {
		for _, side := range []coxeter.Side{coxeter.Right, coxeter.Left} {
			d, err := w.Descents(side, false)
			if err != nil {
				return err
			}
			want := 1
			switch w.Len() {
			case 0:
				want = 0
			case n:
				want = 2
			}
			c.expect(len(d) == want, "%s has %d %s descents, want %d", w, len(d), side, want)
		}
	}

	return nil
}

// relation: (s1 s2)^k = 1 exactly when n divides k, checked for 0 < k ≤ 2n.
func (c *checker) relation() error {
	n := c.group.N()
	w := c.group.One()
	for k := 1; k <= 2*n; k++ {
		var err error
		if w, err = w.ApplySimpleReflectionRight(dihedral.S1); err != nil {
			return err
		}
		if w, err = w.ApplySimpleReflectionRight(dihedral.S2); err != nil {
			return err
		}
		c.expect(w.IsIdentity() == (k%n == 0), "(s1 s2)^%d = %s", k, w)
	}

	return nil
}

// model: the map word → affine map is a bijection onto the 2n maps
// x ↦ ±x + b of Z_n and intertwines the right action.
func (c *checker) model() error {
	n := c.group.N()
	gens := map[coxeter.Generator]affine{
		dihedral.S1: {sign: -1, shift: 0},
		dihedral.S2: {sign: -1, shift: 1},
	}

	images := make(map[affine]string, len(c.elems))
	for _, w := range c.elems {
		f := evaluate(w.Word(), gens, n)
		if prev, dup := images[f]; dup {
			c.expect(false, "%s and %s map to the same affine map %v", prev, w, f)
		}
		images[f] = w.String()

		for _, i := range c.group.IndexSet() {
			p, err := w.ApplySimpleReflectionRight(i)
			if err != nil {
				return err
			}
			want := f.compose(gens[i], n)
			got := evaluate(p.Word(), gens, n)
			c.expect(got == want, "model(%s·s%d) = %v, want %v", w, i, got, want)
		}
	}
	c.expect(len(images) == 2*n, "image has %d affine maps, want %d", len(images), 2*n)

	return nil
}

// cayley: the right Cayley graph is an undirected 2n-cycle with alternating labels.
func (c *checker) cayley() error {
	cg, err := c.group.CayleyGraph(coxeter.Right)
	if err != nil {
		return err
	}
	c.expect(cg.VertexCount() == c.group.Order(), "Cayley graph has %d vertices", cg.VertexCount())
	c.expect(cg.IsUndirected(), "Cayley graph is not undirected")
	c.expect(cg.IsCycle(), "Cayley graph is not a cycle")
	c.expect(cg.LabelsAlternate(), "Cayley graph labels do not alternate")

	return nil
}

// affine is x ↦ sign·x + shift (mod n).
type affine struct {
	sign  int
	shift int
}

// compose returns a∘b: x ↦ a(b(x)).
func (a affine) compose(b affine, n int) affine {
	return affine{sign: a.sign * b.sign, shift: mod(a.sign*b.shift+a.shift, n)}
}

func evaluate(word []coxeter.Generator, gens map[coxeter.Generator]affine, n int) affine {
	f := affine{sign: 1, shift: 0}
	for _, i := range word {
		f = f.compose(gens[i], n)
	}

	return f
}

func mod(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}

	return x
}
