package storage

import (
	"github.com/kindgraph/kindgraph/core"
)

// SimpleList is a set-based adjacency list: at most one edge per vertex pair.
//
// Performance: O(1) vertex/edge queries and insertions, O(E) vertex removal,
// O(d log d) neighbor snapshots.
type SimpleList struct {
	vertices map[string]core.Vertex

	// adj[src][dst] marks adjacency; mirrored for undirected edges.
	adj map[string]map[string]struct{}

	// edges holds one edge per canonical pair key.
	edges map[core.EdgeKey]core.Edge
}

// NewSimpleList returns an empty SimpleList.
func NewSimpleList() *SimpleList {
	return &SimpleList{
		vertices: make(map[string]core.Vertex),
		adj:      make(map[string]map[string]struct{}),
		edges:    make(map[core.EdgeKey]core.Edge),
	}
}

// Kind reports core.RepAdjacencyList.
func (s *SimpleList) Kind() core.RepKind { return core.RepAdjacencyList }

// AddVertex inserts v or refreshes its attributes. Idempotent.
func (s *SimpleList) AddVertex(v core.Vertex) error {
	if v.ID == "" {
		return core.ErrEmptyVertexID
	}
	s.vertices[v.ID] = v.Clone()
	if s.adj[v.ID] == nil {
		s.adj[v.ID] = make(map[string]struct{})
	}

	return nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Complexity: O(E).
func (s *SimpleList) RemoveVertex(id string) error {
	if _, ok := s.vertices[id]; !ok {
		return core.ErrVertexNotFound
	}
	for key, e := range s.edges {
		if e.Source == id || e.Target == id {
			s.unlink(key, e)
		}
	}
	delete(s.vertices, id)
	delete(s.adj, id)

	return nil
}

// HasVertex reports whether the vertex exists. O(1).
func (s *SimpleList) HasVertex(id string) bool {
	_, ok := s.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (s *SimpleList) Vertex(id string) (core.Vertex, error) {
	v, ok := s.vertices[id]
	if !ok {
		return core.Vertex{}, core.ErrVertexNotFound
	}

	return v.Clone(), nil
}

// Vertices returns all vertices sorted by ID.
func (s *SimpleList) Vertices() []core.Vertex { return sortedVertices(s.vertices) }

// VertexCount returns the number of vertices. O(1).
func (s *SimpleList) VertexCount() int { return len(s.vertices) }

// AddEdge inserts e. Both endpoints must exist; a second edge between the
// same pair returns core.ErrDuplicateEdge.
func (s *SimpleList) AddEdge(e core.Edge) error {
	if !s.HasVertex(e.Source) || !s.HasVertex(e.Target) {
		return core.ErrVertexNotFound
	}
	key := e.Key()
	if _, dup := s.edges[key]; dup {
		return core.ErrDuplicateEdge
	}
	s.edges[key] = e.Clone()
	s.adj[e.Source][e.Target] = struct{}{}
	if !e.Directed {
		s.adj[e.Target][e.Source] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge between source and target.
func (s *SimpleList) RemoveEdge(source, target string) error {
	e, key, ok := s.lookup(source, target)
	if !ok {
		return core.ErrEdgeNotFound
	}
	s.unlink(key, e)

	return nil
}

// HasEdge reports whether an edge connects source to target. O(1).
func (s *SimpleList) HasEdge(source, target string) bool {
	_, ok := s.adj[source][target]

	return ok
}

// Edge returns a copy of the edge between source and target.
func (s *SimpleList) Edge(source, target string) (core.Edge, error) {
	e, _, ok := s.lookup(source, target)
	if !ok {
		return core.Edge{}, core.ErrEdgeNotFound
	}

	return e.Clone(), nil
}

// Edges returns every edge once, ordered by canonical key.
func (s *SimpleList) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e.Clone())
	}
	sortEdges(out)

	return out
}

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
func (s *SimpleList) EdgesFrom(id string) ([]core.Edge, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	out := make([]core.Edge, 0, len(s.adj[id]))
	for _, dst := range sortedKeys(s.adj[id]) {
		e, _, ok := s.lookup(id, dst)
		if !ok {
			continue
		}
		out = append(out, orientFrom(e, id))
	}

	return out, nil
}

// EdgeCount returns the number of edges. O(1).
func (s *SimpleList) EdgeCount() int { return len(s.edges) }

// Neighbors returns the adjacent vertex IDs, sorted.
func (s *SimpleList) Neighbors(id string) ([]string, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}

	return sortedKeys(s.adj[id]), nil
}

// Clear removes all vertices and edges.
func (s *SimpleList) Clear() {
	s.vertices = make(map[string]core.Vertex)
	s.adj = make(map[string]map[string]struct{})
	s.edges = make(map[core.EdgeKey]core.Edge)
}

// lookup resolves the stored edge for a pair, trying the given orientation
// first and the reversed orientation for undirected edges.
func (s *SimpleList) lookup(u, v string) (core.Edge, core.EdgeKey, bool) {
	if e, ok := s.edges[core.EdgeKey{U: u, V: v}]; ok {
		return e, core.EdgeKey{U: u, V: v}, true
	}
	if e, ok := s.edges[core.EdgeKey{U: v, V: u}]; ok && !e.Directed {
		return e, core.EdgeKey{U: v, V: u}, true
	}

	return core.Edge{}, core.EdgeKey{}, false
}

// unlink drops the edge and its adjacency marks (mirror included).
func (s *SimpleList) unlink(key core.EdgeKey, e core.Edge) {
	delete(s.edges, key)
	delete(s.adj[e.Source], e.Target)
	if !e.Directed {
		delete(s.adj[e.Target], e.Source)
	}
}
