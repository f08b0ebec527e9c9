package graph

import (
	"fmt"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

// Multigraph allows parallel edges between a pair but forbids self-loops.
// Backed exclusively by the multi adjacency list.
//
// RemoveEdge drops the entire parallel bundle for a pair; parallels carry no
// stable per-edge identity, so partial removal is not offered.
type Multigraph struct {
	observable
	directed bool
	ml       *storage.MultiList
}

// NewMulti constructs an empty Multigraph.
func NewMulti(opts ...Option) (*Multigraph, error) {
	c := buildConfig(opts)
	if c.repSet && c.rep != core.RepMultiList {
		return nil, fmt.Errorf("%w: multigraph requires %q", ErrBadRepresentation, core.RepMultiList)
	}

	return &Multigraph{
		observable: observable{observers: c.observers},
		directed:   c.directed,
		ml:         storage.NewMultiList(),
	}, nil
}

// Kind reports core.KindMulti.
func (g *Multigraph) Kind() core.Kind { return core.KindMulti }

// Directed reports whether edges are one-way.
func (g *Multigraph) Directed() bool { return g.directed }

// Representation reports core.RepMultiList.
func (g *Multigraph) Representation() core.RepKind { return core.RepMultiList }

// AddVertex inserts the vertex. Idempotent; emits VertexAdded only on first insert.
func (g *Multigraph) AddVertex(id string, opts ...AddOption) error {
	v, err := core.NewVertex(id, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}
	fresh := !g.ml.HasVertex(v.ID)
	if err := g.ml.AddVertex(v); err != nil {
		return err
	}
	if fresh {
		g.notify(Event{Op: VertexAdded, Source: v.ID})
	}

	return nil
}

// RemoveVertex deletes the vertex and all incident edges, parallels included.
func (g *Multigraph) RemoveVertex(id string) error {
	if err := g.ml.RemoveVertex(id); err != nil {
		return err
	}
	g.notify(Event{Op: VertexRemoved, Source: id})

	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Multigraph) HasVertex(id string) bool { return g.ml.HasVertex(id) }

// Vertex returns a copy of the vertex, attribute map included.
func (g *Multigraph) Vertex(id string) (core.Vertex, error) { return g.ml.Vertex(id) }

// AddEdge connects u and v; each call adds another parallel edge.
// Returns ErrLoopNotAllowed for u == v.
func (g *Multigraph) AddEdge(u, v string, weight float64, opts ...AddOption) error {
	e, err := core.NewEdge(u, v, weight, g.directed, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}
	if e.SelfLoop() {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}

	return g.addEdge(e)
}

// addEdge stores a validated edge and notifies. Shared with Pseudograph,
// which skips the loop check.
func (g *Multigraph) addEdge(e core.Edge) error {
	if err := g.ml.AddEdge(e); err != nil {
		return err
	}
	g.notify(Event{Op: EdgeAdded, Source: e.Source, Target: e.Target})

	return nil
}

// RemoveEdge deletes ALL parallel edges between u and v.
func (g *Multigraph) RemoveEdge(u, v string) error {
	if err := g.ml.RemoveEdge(u, v); err != nil {
		return err
	}
	g.notify(Event{Op: EdgeRemoved, Source: u, Target: v})

	return nil
}

// HasEdge reports whether at least one edge connects u to v.
func (g *Multigraph) HasEdge(u, v string) bool { return g.ml.HasEdge(u, v) }

// EdgeMultiplicity returns the number of parallel edges between u and v. O(1).
func (g *Multigraph) EdgeMultiplicity(u, v string) int { return g.ml.Multiplicity(u, v) }

// EdgesBetween returns every parallel edge between u and v, in insertion order.
func (g *Multigraph) EdgesBetween(u, v string) []core.Edge { return g.ml.EdgesBetween(u, v) }

// Neighbors returns the unique adjacent vertex IDs, sorted.
func (g *Multigraph) Neighbors(id string) ([]string, error) { return g.ml.Neighbors(id) }

// Vertices returns all vertex IDs, sorted.
func (g *Multigraph) Vertices() []string { return vertexIDs(g.ml) }

// Edges returns every edge (parallels included), in a stable order.
func (g *Multigraph) Edges() []core.Edge { return g.ml.Edges() }

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
func (g *Multigraph) EdgesFrom(id string) ([]core.Edge, error) { return g.ml.EdgesFrom(id) }

// VertexCount returns the number of vertices. O(1).
func (g *Multigraph) VertexCount() int { return g.ml.VertexCount() }

// EdgeCount returns the number of edges, parallels counted. O(1).
func (g *Multigraph) EdgeCount() int { return g.ml.EdgeCount() }

// Degree returns the number of unique neighbors; parallel edges do not
// inflate it.
func (g *Multigraph) Degree(id string) (int, error) {
	nb, err := g.ml.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

// store exposes the backing MultiList to the Pseudograph embedding.
func (g *Multigraph) store() *storage.MultiList { return g.ml }
