package storage

import (
	"github.com/kindgraph/kindgraph/core"
)

// MultiList is an adjacency list that keeps every parallel edge between a
// vertex pair, in insertion order. Self-loops are stored like any other edge;
// whether they are legal is decided by the graph kind on top.
//
// RemoveEdge drops ALL parallel edges for the pair at once. Removing a single
// parallel edge is intentionally not supported: parallels carry no stable
// per-edge identity across representations.
//
// Performance: O(1) existence and multiplicity queries, O(E) enumeration and
// vertex removal.
type MultiList struct {
	vertices map[string]core.Vertex

	// buckets groups parallel edges under their canonical pair key.
	buckets map[core.EdgeKey][]core.Edge

	// inc[id][nbr] is the multiplicity of edges reaching nbr from id
	// (outgoing only for directed edges, both ways for undirected).
	inc map[string]map[string]int

	count int
}

// NewMultiList returns an empty MultiList.
func NewMultiList() *MultiList {
	return &MultiList{
		vertices: make(map[string]core.Vertex),
		buckets:  make(map[core.EdgeKey][]core.Edge),
		inc:      make(map[string]map[string]int),
	}
}

// Kind reports core.RepMultiList.
func (m *MultiList) Kind() core.RepKind { return core.RepMultiList }

// AddVertex inserts v or refreshes its attributes. Idempotent.
func (m *MultiList) AddVertex(v core.Vertex) error {
	if v.ID == "" {
		return core.ErrEmptyVertexID
	}
	m.vertices[v.ID] = v.Clone()
	if m.inc[v.ID] == nil {
		m.inc[v.ID] = make(map[string]int)
	}

	return nil
}

// RemoveVertex deletes the vertex and every incident edge, parallels included.
// Complexity: O(E).
func (m *MultiList) RemoveVertex(id string) error {
	if _, ok := m.vertices[id]; !ok {
		return core.ErrVertexNotFound
	}
	for key, bucket := range m.buckets {
		if key.U != id && key.V != id {
			continue
		}
		for _, e := range bucket {
			m.unindex(e)
		}
		m.count -= len(bucket)
		delete(m.buckets, key)
	}
	delete(m.vertices, id)
	delete(m.inc, id)

	return nil
}

// HasVertex reports whether the vertex exists. O(1).
func (m *MultiList) HasVertex(id string) bool {
	_, ok := m.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (m *MultiList) Vertex(id string) (core.Vertex, error) {
	v, ok := m.vertices[id]
	if !ok {
		return core.Vertex{}, core.ErrVertexNotFound
	}

	return v.Clone(), nil
}

// Vertices returns all vertices sorted by ID.
func (m *MultiList) Vertices() []core.Vertex { return sortedVertices(m.vertices) }

// VertexCount returns the number of vertices. O(1).
func (m *MultiList) VertexCount() int { return len(m.vertices) }

// AddEdge appends e to the bucket for its pair. Parallel edges and loops are
// always accepted; both endpoints must exist.
func (m *MultiList) AddEdge(e core.Edge) error {
	if !m.HasVertex(e.Source) || !m.HasVertex(e.Target) {
		return core.ErrVertexNotFound
	}
	key := e.Key()
	m.buckets[key] = append(m.buckets[key], e.Clone())
	m.count++
	m.inc[e.Source][e.Target]++
	if !e.Directed && !e.SelfLoop() {
		m.inc[e.Target][e.Source]++
	}

	return nil
}

// RemoveEdge deletes ALL parallel edges between source and target.
func (m *MultiList) RemoveEdge(source, target string) error {
	removed := 0
	for _, key := range m.pairKeys(source, target) {
		bucket := m.buckets[key]
		for _, e := range bucket {
			m.unindex(e)
		}
		removed += len(bucket)
		delete(m.buckets, key)
	}
	if removed == 0 {
		return core.ErrEdgeNotFound
	}
	m.count -= removed

	return nil
}

// HasEdge reports whether at least one edge connects source to target. O(1).
func (m *MultiList) HasEdge(source, target string) bool {
	return m.inc[source][target] > 0
}

// Edge returns a copy of the first parallel edge between source and target.
func (m *MultiList) Edge(source, target string) (core.Edge, error) {
	for _, key := range m.pairKeys(source, target) {
		if bucket := m.buckets[key]; len(bucket) > 0 {
			return bucket[0].Clone(), nil
		}
	}

	return core.Edge{}, core.ErrEdgeNotFound
}

// EdgesBetween returns copies of every parallel edge between source and
// target, in insertion order.
func (m *MultiList) EdgesBetween(source, target string) []core.Edge {
	var out []core.Edge
	for _, key := range m.pairKeys(source, target) {
		for _, e := range m.buckets[key] {
			out = append(out, e.Clone())
		}
	}

	return out
}

// Multiplicity returns the number of parallel edges between source and target. O(1).
func (m *MultiList) Multiplicity(source, target string) int {
	return m.inc[source][target]
}

// Edges returns every stored edge once, buckets ordered by canonical key,
// parallels in insertion order.
func (m *MultiList) Edges() []core.Edge {
	out := make([]core.Edge, 0, m.count)
	for _, e := range m.flatten() {
		out = append(out, e.Clone())
	}

	return out
}

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
func (m *MultiList) EdgesFrom(id string) ([]core.Edge, error) {
	if !m.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	var out []core.Edge
	for _, nbr := range sortedKeys(m.inc[id]) {
		if m.inc[id][nbr] == 0 {
			continue
		}
		for _, key := range m.pairKeys(id, nbr) {
			for _, e := range m.buckets[key] {
				if e.Directed && e.Source != id {
					continue
				}
				out = append(out, orientFrom(e, id))
			}
		}
	}

	return out, nil
}

// EdgeCount returns the number of edges, parallels counted. O(1).
func (m *MultiList) EdgeCount() int { return m.count }

// Neighbors returns the adjacent vertex IDs, sorted.
func (m *MultiList) Neighbors(id string) ([]string, error) {
	if !m.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	out := make([]string, 0, len(m.inc[id]))
	for _, nbr := range sortedKeys(m.inc[id]) {
		if m.inc[id][nbr] > 0 {
			out = append(out, nbr)
		}
	}

	return out, nil
}

// Clear removes all vertices and edges.
func (m *MultiList) Clear() {
	m.vertices = make(map[string]core.Vertex)
	m.buckets = make(map[core.EdgeKey][]core.Edge)
	m.inc = make(map[string]map[string]int)
	m.count = 0
}

// pairKeys lists the bucket keys that can hold edges between u and v:
// the exact orientation, plus the reversed key when it holds undirected edges.
func (m *MultiList) pairKeys(u, v string) []core.EdgeKey {
	keys := make([]core.EdgeKey, 0, 2)
	if bucket := m.buckets[core.EdgeKey{U: u, V: v}]; len(bucket) > 0 {
		keys = append(keys, core.EdgeKey{U: u, V: v})
	}
	if u != v {
		if bucket := m.buckets[core.EdgeKey{U: v, V: u}]; len(bucket) > 0 && !bucket[0].Directed {
			keys = append(keys, core.EdgeKey{U: v, V: u})
		}
	}

	return keys
}

// unindex decrements the multiplicity counters for e (mirror included).
func (m *MultiList) unindex(e core.Edge) {
	decr(m.inc[e.Source], e.Target)
	if !e.Directed && !e.SelfLoop() {
		decr(m.inc[e.Target], e.Source)
	}
}

// flatten orders buckets by canonical key and concatenates them.
func (m *MultiList) flatten() []core.Edge {
	keys := make([]core.EdgeKey, 0, len(m.buckets))
	for key := range m.buckets {
		keys = append(keys, key)
	}
	sortEdgeKeys(keys)
	out := make([]core.Edge, 0, m.count)
	for _, key := range keys {
		out = append(out, m.buckets[key]...)
	}

	return out
}
