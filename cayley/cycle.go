// SPDX-License-Identifier: MIT
// Package: dihedral/cayley
//
// cycle.go: structural queries on a built Cayley graph.
//
// Contract:
//   • IsUndirected: every edge u -i-> v has the reverse v -i-> u. Holds for
//     any group presented by involutions.
//   • IsCycle: the underlying simple graph is one cycle C_k, k ≥ 3: it is
//     connected and every vertex has exactly two distinct neighbours.
//
// Complexity:
//   • IsUndirected: O(E).
//   • IsCycle: O(V·E) (neighbour scan per vertex).

package cayley

const minCycleNodes = 3

// IsUndirected reports whether every edge has a reverse edge with the same label.
func (g *Graph) IsUndirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for from, m := range g.out {
		for label, e := range m {
			back, ok := g.out[e.To][label]
			if !ok || back.To != from {
				return false
			}
		}
	}

	return true
}

// IsCycle reports whether the underlying simple graph is a single cycle.
func (g *Graph) IsCycle() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.order) < minCycleNodes {
		return false
	}

	adj := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		nbrs := g.neighborsLocked(id)
		if len(nbrs) != 2 {
			return false
		}
		adj[id] = nbrs
	}

	// walk the ring once from the first vertex
	start := g.order[0]
	prev, cur := start, adj[start][0]
	steps := 1
	for cur != start {
		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
		steps++
		if steps > len(g.order) {
			return false
		}
	}

	return steps == len(g.order)
}

// LabelsAlternate reports whether, walking the ring, consecutive edges carry
// different labels: each vertex leaves by exactly two labels towards its two
// distinct neighbours. It returns false when the graph is not a cycle.
func (g *Graph) LabelsAlternate() bool {
	if !g.IsCycle() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, id := range g.order {
		m := g.out[id]
		if len(m) != 2 {
			return false
		}
		targets := make(map[string]struct{}, 2)
		for _, e := range m {
			targets[e.To] = struct{}{}
		}
		if len(targets) != 2 {
			return false
		}
	}

	return true
}
