package graph

import (
	"fmt"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

// SimpleGraph forbids self-loops and parallel edges. It is the only kind
// with a choice of storage: adjacency list (default), adjacency matrix, or
// edge list, switchable later with ConvertRepresentation.
type SimpleGraph struct {
	observable
	directed bool
	rep      core.Representation
}

// NewSimple constructs an empty SimpleGraph.
func NewSimple(opts ...Option) (*SimpleGraph, error) {
	c := buildConfig(opts)
	if !c.repSet {
		c.rep = core.RepAdjacencyList
	}
	rep, err := newSimpleStore(c.rep)
	if err != nil {
		return nil, err
	}

	return &SimpleGraph{
		observable: observable{observers: c.observers},
		directed:   c.directed,
		rep:        rep,
	}, nil
}

// newSimpleStore builds one of the stores a SimpleGraph may sit on.
func newSimpleStore(rep core.RepKind) (core.Representation, error) {
	switch rep {
	case core.RepAdjacencyList, core.RepAdjacencyMatrix, core.RepEdgeList:
		return storage.New(rep)
	default:
		return nil, fmt.Errorf("%w: simple graph cannot use %q", ErrBadRepresentation, rep)
	}
}

// Kind reports core.KindSimple.
func (g *SimpleGraph) Kind() core.Kind { return core.KindSimple }

// Directed reports whether edges are one-way.
func (g *SimpleGraph) Directed() bool { return g.directed }

// Representation reports the backing storage strategy.
func (g *SimpleGraph) Representation() core.RepKind { return g.rep.Kind() }

// AddVertex inserts the vertex. Idempotent; emits VertexAdded only on first insert.
func (g *SimpleGraph) AddVertex(id string, opts ...AddOption) error {
	v, err := core.NewVertex(id, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}
	fresh := !g.rep.HasVertex(v.ID)
	if err := g.rep.AddVertex(v); err != nil {
		return err
	}
	if fresh {
		g.notify(Event{Op: VertexAdded, Source: v.ID})
	}

	return nil
}

// RemoveVertex deletes the vertex and all incident edges.
func (g *SimpleGraph) RemoveVertex(id string) error {
	if err := g.rep.RemoveVertex(id); err != nil {
		return err
	}
	g.notify(Event{Op: VertexRemoved, Source: id})

	return nil
}

// HasVertex reports whether the vertex exists.
func (g *SimpleGraph) HasVertex(id string) bool { return g.rep.HasVertex(id) }

// Vertex returns a copy of the vertex, attribute map included.
func (g *SimpleGraph) Vertex(id string) (core.Vertex, error) { return g.rep.Vertex(id) }

// AddEdge connects u and v. Returns ErrLoopNotAllowed for u == v,
// core.ErrDuplicateEdge if the pair is already connected, and
// core.ErrVertexNotFound for missing endpoints.
func (g *SimpleGraph) AddEdge(u, v string, weight float64, opts ...AddOption) error {
	e, err := core.NewEdge(u, v, weight, g.directed, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}
	if e.SelfLoop() {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	if err := g.rep.AddEdge(e); err != nil {
		return err
	}
	g.notify(Event{Op: EdgeAdded, Source: e.Source, Target: e.Target})

	return nil
}

// RemoveEdge disconnects u and v.
func (g *SimpleGraph) RemoveEdge(u, v string) error {
	if err := g.rep.RemoveEdge(u, v); err != nil {
		return err
	}
	g.notify(Event{Op: EdgeRemoved, Source: u, Target: v})

	return nil
}

// HasEdge reports whether u connects to v.
func (g *SimpleGraph) HasEdge(u, v string) bool { return g.rep.HasEdge(u, v) }

// Edge returns a copy of the edge between u and v.
func (g *SimpleGraph) Edge(u, v string) (core.Edge, error) { return g.rep.Edge(u, v) }

// Neighbors returns the unique adjacent vertex IDs, sorted.
func (g *SimpleGraph) Neighbors(id string) ([]string, error) { return g.rep.Neighbors(id) }

// Vertices returns all vertex IDs, sorted.
func (g *SimpleGraph) Vertices() []string { return vertexIDs(g.rep) }

// Edges returns every edge once, in a stable order.
func (g *SimpleGraph) Edges() []core.Edge { return g.rep.Edges() }

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
func (g *SimpleGraph) EdgesFrom(id string) ([]core.Edge, error) { return g.rep.EdgesFrom(id) }

// VertexCount returns the number of vertices. O(1).
func (g *SimpleGraph) VertexCount() int { return g.rep.VertexCount() }

// EdgeCount returns the number of edges. O(1).
func (g *SimpleGraph) EdgeCount() int { return g.rep.EdgeCount() }

// Degree returns the number of unique neighbors of the vertex.
func (g *SimpleGraph) Degree(id string) (int, error) {
	nb, err := g.rep.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

// Dense returns the weight matrix and the vertex IDs labelling its rows and
// columns. Available only on matrix-backed graphs; every other store returns
// ErrBadRepresentation.
func (g *SimpleGraph) Dense() ([][]float64, []string, error) {
	m, ok := g.rep.(*storage.Matrix)
	if !ok {
		return nil, nil, fmt.Errorf("%w: dense view requires %q", ErrBadRepresentation, core.RepAdjacencyMatrix)
	}
	cells, ids := m.Dense()

	return cells, ids, nil
}

// ConvertRepresentation replays the graph into a different store, in place.
// Vertices are replayed first, then edges, both in snapshot order; the swap
// happens only after a full successful replay, so a failed conversion leaves
// the graph untouched. Emits RepresentationChanged.
func (g *SimpleGraph) ConvertRepresentation(target core.RepKind) error {
	if target == g.rep.Kind() {
		return nil
	}
	next, err := newSimpleStore(target)
	if err != nil {
		return err
	}
	for _, v := range g.rep.Vertices() {
		if err := next.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range g.rep.Edges() {
		if err := next.AddEdge(e); err != nil {
			return err
		}
	}
	g.rep = next
	g.notify(Event{Op: RepresentationChanged})

	return nil
}
