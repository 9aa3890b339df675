// Package cayley defines a small, thread-safe, directed, edge-labelled
// graph used to hold Cayley graphs of groups given by generators.
//
// Vertices are identified by non-empty strings (canonical element
// renderings); edges carry an integer label (the generator). A vertex has at
// most one outgoing edge per label, because w·s_i is a function of w.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrDuplicateLabel  - a second outgoing edge with the same label.
package cayley

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// Sentinel errors for Cayley graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("cayley: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("cayley: vertex not found")

	// ErrDuplicateLabel indicates a vertex already has an outgoing edge with that label.
	ErrDuplicateLabel = errors.New("cayley: duplicate edge label")
)

// Edge is one generator step From·s_Label = To.
type Edge struct {
	ID    string
	From  string
	To    string
	Label int
}

// Graph is the in-memory Cayley graph.
//
// mu guards every field except nextEdgeID, which is an atomic counter.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	order      []string                 // vertex IDs in insertion order
	index      map[string]int           // vertex ID → position in order
	out        map[string]map[int]*Edge // from → label → edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		out:   make(map[string]map[int]*Edge),
	}
}

// AddVertex inserts a vertex if missing (idempotent).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.out[id] = make(map[int]*Edge)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// AddEdge records from·s_label = to, creating missing endpoints, and
// returns the new edge ID ("e1", "e2", ...).
func (g *Graph) AddEdge(from, to string, label int) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if prev, ok := g.out[from][label]; ok {
		return "", fmt.Errorf("%w: %q already has label %d (→ %q)", ErrDuplicateLabel, from, label, prev.To)
	}
	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.out[from][label] = &Edge{ID: eid, From: from, To: to, Label: label}

	return eid, nil
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, m := range g.out {
		n += len(m)
	}

	return n
}

// Edges returns copies of all edges ordered by the insertion index of the
// source vertex, then by label.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.order)*2)
	for _, id := range g.order {
		out = append(out, sortedOut(g.out[id])...)
	}

	return out
}

// OutEdges returns the outgoing edges of id sorted by label.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedOut(m), nil
}

// OutDegree returns the number of outgoing edges of id.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.out[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(m), nil
}

// Successor returns the target of the edge labelled label out of id.
func (g *Graph) Successor(id string, label int) (string, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.out[id]
	if !ok {
		return "", false, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	e, ok := m[label]
	if !ok {
		return "", false, nil
	}

	return e.To, true, nil
}

// Neighbors returns the distinct vertices adjacent to id in either
// direction, in vertex insertion order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return g.neighborsLocked(id), nil
}

func (g *Graph) neighborsLocked(id string) []string {
	seen := make(map[string]struct{})
	for _, e := range g.out[id] {
		if e.To != id {
			seen[e.To] = struct{}{}
		}
	}
	for from, m := range g.out {
		if from == id {
			continue
		}
		for _, e := range m {
			if e.To == id {
				seen[from] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(a, b int) bool { return g.index[out[a]] < g.index[out[b]] })

	return out
}

func sortedOut(m map[int]*Edge) []Edge {
	out := make([]Edge, 0, len(m))
	for _, e := range m {
		out = append(out, *e)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Label < out[b].Label })

	return out
}
