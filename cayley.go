package dihedral

import (
	"github.com/katalvlaran/dihedral/cayley"
	"github.com/katalvlaran/dihedral/coxeter"
)

// CayleyGraph builds the Cayley graph of g for generators acting on side.
// As an undirected graph it is a 2n-cycle whose labels alternate.
func (g *Group) CayleyGraph(side coxeter.Side) (*cayley.Graph, error) {
	return coxeter.CayleyGraph[Element](g, coxeter.WithSide(side), coxeter.WithLimit(g.Order()))
}
