package graph

import (
	"fmt"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

// Hypergraph connects arbitrary vertex sets through weighted hyperedges,
// stored in an incidence structure. Hypergraphs are always undirected.
//
// The binary-edge views required by the Graph interface expose only the
// 2-vertex hyperedges: AddEdge(u, v, w) is sugar for a 2-vertex hyperedge,
// Edges lists the 2-vertex hyperedges as edges, and HasEdge(u, v) reports
// co-membership in ANY hyperedge. EdgeCount counts hyperedges of every arity.
type Hypergraph struct {
	observable
	inc *storage.Incidence
}

// NewHyper constructs an empty Hypergraph.
// Returns ErrDirectedHypergraph if WithDirected(true) was passed.
func NewHyper(opts ...Option) (*Hypergraph, error) {
	c := buildConfig(opts)
	if c.directed {
		return nil, ErrDirectedHypergraph
	}
	if c.repSet && c.rep != core.RepIncidence {
		return nil, fmt.Errorf("%w: hypergraph requires %q", ErrBadRepresentation, core.RepIncidence)
	}

	return &Hypergraph{
		observable: observable{observers: c.observers},
		inc:        storage.NewIncidence(),
	}, nil
}

// Kind reports core.KindHyper.
func (g *Hypergraph) Kind() core.Kind { return core.KindHyper }

// Directed always reports false.
func (g *Hypergraph) Directed() bool { return false }

// Representation reports core.RepIncidence.
func (g *Hypergraph) Representation() core.RepKind { return core.RepIncidence }

// AddVertex inserts the vertex. Idempotent; emits VertexAdded only on first insert.
func (g *Hypergraph) AddVertex(id string, opts ...AddOption) error {
	v, err := core.NewVertex(id, buildAddConfig(opts).attrs)
	if err != nil {
		return err
	}
	fresh := !g.inc.HasVertex(v.ID)
	if err := g.inc.AddVertex(v); err != nil {
		return err
	}
	if fresh {
		g.notify(Event{Op: VertexAdded, Source: v.ID})
	}

	return nil
}

// RemoveVertex deletes the vertex and every hyperedge incident to it.
func (g *Hypergraph) RemoveVertex(id string) error {
	if err := g.inc.RemoveVertex(id); err != nil {
		return err
	}
	g.notify(Event{Op: VertexRemoved, Source: id})

	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Hypergraph) HasVertex(id string) bool { return g.inc.HasVertex(id) }

// Vertex returns a copy of the vertex, attribute map included.
func (g *Hypergraph) Vertex(id string) (core.Vertex, error) { return g.inc.Vertex(id) }

// AddHyperedge connects the given vertex set with one weighted hyperedge and
// returns its store-assigned ID. Every member must already exist.
func (g *Hypergraph) AddHyperedge(vertices []string, weight float64, attrs core.Attrs) (string, error) {
	h, err := core.NewHyperedge(vertices, weight, attrs)
	if err != nil {
		return "", err
	}
	id, err := g.inc.AddHyperedge(h)
	if err != nil {
		return "", err
	}
	g.notify(Event{Op: HyperedgeAdded, Hyperedge: id})

	return id, nil
}

// RemoveHyperedge deletes the hyperedge with the given ID.
func (g *Hypergraph) RemoveHyperedge(id string) error {
	if err := g.inc.RemoveHyperedge(id); err != nil {
		return err
	}
	g.notify(Event{Op: HyperedgeRemoved, Hyperedge: id})

	return nil
}

// AddEdge is binary sugar: it adds the 2-vertex hyperedge {u, v}.
func (g *Hypergraph) AddEdge(u, v string, weight float64, opts ...AddOption) error {
	_, err := g.AddHyperedge([]string{u, v}, weight, buildAddConfig(opts).attrs)

	return err
}

// RemoveEdge deletes every hyperedge whose vertex set is exactly {u, v}.
func (g *Hypergraph) RemoveEdge(u, v string) error {
	pair, err := core.NewHyperedge([]string{u, v}, core.DefaultWeight, nil)
	if err != nil {
		return err
	}
	removed := 0
	for _, h := range g.inc.Hyperedges() {
		if h.Key() != pair.Key() {
			continue
		}
		if err := g.inc.RemoveHyperedge(h.ID); err != nil {
			return err
		}
		g.notify(Event{Op: HyperedgeRemoved, Hyperedge: h.ID})
		removed++
	}
	if removed == 0 {
		return core.ErrEdgeNotFound
	}

	return nil
}

// HasEdge reports whether u and v are co-members of any hyperedge.
func (g *Hypergraph) HasEdge(u, v string) bool {
	incident, err := g.inc.IncidentTo(u)
	if err != nil {
		return false
	}
	for _, h := range incident {
		if h.Contains(v) {
			return true
		}
	}

	return false
}

// Hyperedge returns a copy of the hyperedge with the given ID.
func (g *Hypergraph) Hyperedge(id string) (core.Hyperedge, error) { return g.inc.Hyperedge(id) }

// Hyperedges returns every hyperedge, in a stable order.
func (g *Hypergraph) Hyperedges() []core.Hyperedge { return g.inc.Hyperedges() }

// IncidentHyperedges returns the hyperedges containing the vertex.
func (g *Hypergraph) IncidentHyperedges(id string) ([]core.Hyperedge, error) {
	return g.inc.IncidentTo(id)
}

// Neighbors returns the union of co-members across all incident hyperedges,
// sorted, excluding the vertex itself.
func (g *Hypergraph) Neighbors(id string) ([]string, error) { return g.inc.Neighbors(id) }

// Vertices returns all vertex IDs, sorted.
func (g *Hypergraph) Vertices() []string { return vertexIDs(g.inc) }

// Edges returns the 2-vertex hyperedges projected as undirected edges.
// Hyperedges of higher arity are visible only through Hyperedges.
func (g *Hypergraph) Edges() []core.Edge {
	var out []core.Edge
	for _, h := range g.inc.Hyperedges() {
		if h.Arity() != 2 {
			continue
		}
		out = append(out, core.Edge{
			Source: h.Vertices[0],
			Target: h.Vertices[1],
			Weight: h.Weight,
			Attrs:  h.Attrs.Clone(),
		})
	}

	return out
}

// EdgesFrom returns the 2-vertex hyperedges incident to id, re-oriented so
// Source == id.
func (g *Hypergraph) EdgesFrom(id string) ([]core.Edge, error) {
	incident, err := g.inc.IncidentTo(id)
	if err != nil {
		return nil, err
	}
	var out []core.Edge
	for _, h := range incident {
		if h.Arity() != 2 {
			continue
		}
		other := h.Vertices[0]
		if other == id {
			other = h.Vertices[1]
		}
		out = append(out, core.Edge{Source: id, Target: other, Weight: h.Weight, Attrs: h.Attrs.Clone()})
	}

	return out, nil
}

// VertexCount returns the number of vertices. O(1).
func (g *Hypergraph) VertexCount() int { return g.inc.VertexCount() }

// EdgeCount returns the number of hyperedges of every arity. O(1).
func (g *Hypergraph) EdgeCount() int { return g.inc.HyperedgeCount() }

// Degree returns the number of hyperedges incident to the vertex. O(1).
func (g *Hypergraph) Degree(id string) (int, error) { return g.inc.Degree(id) }

// ToBipartite projects the hypergraph onto a simple undirected graph:
// one vertex per original vertex, one vertex per hyperedge (named by its ID),
// and an edge of the hyperedge's weight between each member and its hyperedge.
func (g *Hypergraph) ToBipartite() (*SimpleGraph, error) {
	out, err := NewSimple()
	if err != nil {
		return nil, err
	}
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, h := range g.inc.Hyperedges() {
		if err := out.AddVertex(h.ID); err != nil {
			return nil, err
		}
		for _, member := range h.Vertices {
			if err := out.AddEdge(member, h.ID, h.Weight); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
