package coxeter

import (
	"fmt"

	"github.com/katalvlaran/dihedral/cayley"
)

// CayleyGraph builds the Cayley graph of g on its simple reflections.
// Vertices are element keys in closure order; every element w gets one edge
// w → w·s_i (or s_i·w with WithSide(Left)) labelled i, for each generator i.
// It accepts the same options as Closure.
func CayleyGraph[E Element[E]](g Group[E], opts ...Option) (*cayley.Graph, error) {
	res, err := Closure(g, opts...)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cg := cayley.NewGraph()
	for _, key := range res.Order {
		if err := cg.AddVertex(key); err != nil {
			return nil, err
		}
	}
	for idx, w := range res.Elements {
		for _, i := range g.IndexSet() {
			prod, err := ApplySimpleReflection(g, w, i, o.Side)
			if err != nil {
				return nil, fmt.Errorf("CayleyGraph: %w", err)
			}
			key := prod.String()
			// a depth-limited closure leaves products outside the vertex set
			if !cg.HasVertex(key) {
				continue
			}
			if _, err := cg.AddEdge(res.Order[idx], key, int(i)); err != nil {
				return nil, fmt.Errorf("CayleyGraph: %w", err)
			}
		}
	}

	return cg, nil
}
