package storage

import (
	"github.com/kindgraph/kindgraph/core"
)

// EdgeList is a flat edge slice: minimal memory, O(E) queries.
// The slow path is deliberate; it suits tiny graphs and write-once workloads,
// and converts to a faster store when access patterns change.
type EdgeList struct {
	vertices map[string]core.Vertex
	edges    []core.Edge // insertion order
}

// NewEdgeList returns an empty EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{vertices: make(map[string]core.Vertex)}
}

// Kind reports core.RepEdgeList.
func (s *EdgeList) Kind() core.RepKind { return core.RepEdgeList }

// AddVertex inserts v or refreshes its attributes. Idempotent.
func (s *EdgeList) AddVertex(v core.Vertex) error {
	if v.ID == "" {
		return core.ErrEmptyVertexID
	}
	s.vertices[v.ID] = v.Clone()

	return nil
}

// RemoveVertex deletes the vertex and every incident edge. Complexity: O(E).
func (s *EdgeList) RemoveVertex(id string) error {
	if _, ok := s.vertices[id]; !ok {
		return core.ErrVertexNotFound
	}
	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	s.edges = kept
	delete(s.vertices, id)

	return nil
}

// HasVertex reports whether the vertex exists. O(1).
func (s *EdgeList) HasVertex(id string) bool {
	_, ok := s.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (s *EdgeList) Vertex(id string) (core.Vertex, error) {
	v, ok := s.vertices[id]
	if !ok {
		return core.Vertex{}, core.ErrVertexNotFound
	}

	return v.Clone(), nil
}

// Vertices returns all vertices sorted by ID.
func (s *EdgeList) Vertices() []core.Vertex { return sortedVertices(s.vertices) }

// VertexCount returns the number of vertices. O(1).
func (s *EdgeList) VertexCount() int { return len(s.vertices) }

// AddEdge appends e. Both endpoints must exist; a second edge between the
// same pair returns core.ErrDuplicateEdge. Complexity: O(E).
func (s *EdgeList) AddEdge(e core.Edge) error {
	if !s.HasVertex(e.Source) || !s.HasVertex(e.Target) {
		return core.ErrVertexNotFound
	}
	if _, ok := s.find(e.Source, e.Target); ok {
		return core.ErrDuplicateEdge
	}
	s.edges = append(s.edges, e.Clone())

	return nil
}

// RemoveEdge deletes the edge between source and target. Complexity: O(E).
func (s *EdgeList) RemoveEdge(source, target string) error {
	i, ok := s.find(source, target)
	if !ok {
		return core.ErrEdgeNotFound
	}
	s.edges = append(s.edges[:i], s.edges[i+1:]...)

	return nil
}

// HasEdge reports whether an edge connects source to target. Complexity: O(E).
func (s *EdgeList) HasEdge(source, target string) bool {
	_, ok := s.find(source, target)

	return ok
}

// Edge returns a copy of the edge between source and target. Complexity: O(E).
func (s *EdgeList) Edge(source, target string) (core.Edge, error) {
	i, ok := s.find(source, target)
	if !ok {
		return core.Edge{}, core.ErrEdgeNotFound
	}

	return s.edges[i].Clone(), nil
}

// Edges returns every edge once, in insertion order.
func (s *EdgeList) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e.Clone())
	}

	return out
}

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
// Complexity: O(E).
func (s *EdgeList) EdgesFrom(id string) ([]core.Edge, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	var out []core.Edge
	for _, e := range s.edges {
		if e.Source == id || (!e.Directed && e.Target == id) {
			out = append(out, orientFrom(e, id))
		}
	}

	return out, nil
}

// EdgeCount returns the number of edges. O(1).
func (s *EdgeList) EdgeCount() int { return len(s.edges) }

// Neighbors returns the adjacent vertex IDs, sorted. Complexity: O(E).
func (s *EdgeList) Neighbors(id string) ([]string, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	seen := make(map[string]struct{})
	for _, e := range s.edges {
		if e.Source == id {
			seen[e.Target] = struct{}{}
		} else if !e.Directed && e.Target == id {
			seen[e.Source] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// Clear removes all vertices and edges.
func (s *EdgeList) Clear() {
	s.vertices = make(map[string]core.Vertex)
	s.edges = nil
}

// find locates the edge connecting source to target, honoring directedness.
func (s *EdgeList) find(source, target string) (int, bool) {
	for i, e := range s.edges {
		if e.Source == source && e.Target == target {
			return i, true
		}
		if !e.Directed && e.Source == target && e.Target == source {
			return i, true
		}
	}

	return 0, false
}
