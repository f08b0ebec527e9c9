package storage

import (
	"sort"

	"github.com/google/uuid"

	"github.com/kindgraph/kindgraph/core"
)

// Incidence is the hypergraph store: vertex-to-hyperedge incidence sets plus
// a hyperedge catalog keyed by store-assigned UUID.
//
// Structurally identical hyperedges (same vertex set) may coexist; each gets
// its own UUID. Removing a vertex removes every hyperedge incident to it,
// since a hyperedge with a dangling member is meaningless.
//
// Performance: O(1) vertex/hyperedge lookups, O(arity) insertion,
// O(incident hyperedges x arity) vertex removal and neighbor queries.
type Incidence struct {
	vertices map[string]core.Vertex

	// byID holds every hyperedge under its UUID.
	byID map[string]core.Hyperedge

	// incident[vertexID] is the set of hyperedge IDs containing the vertex.
	incident map[string]map[string]struct{}
}

// NewIncidence returns an empty Incidence store.
func NewIncidence() *Incidence {
	return &Incidence{
		vertices: make(map[string]core.Vertex),
		byID:     make(map[string]core.Hyperedge),
		incident: make(map[string]map[string]struct{}),
	}
}

// Kind reports core.RepIncidence.
func (s *Incidence) Kind() core.RepKind { return core.RepIncidence }

// AddVertex inserts v or refreshes its attributes. Idempotent.
func (s *Incidence) AddVertex(v core.Vertex) error {
	if v.ID == "" {
		return core.ErrEmptyVertexID
	}
	s.vertices[v.ID] = v.Clone()
	if s.incident[v.ID] == nil {
		s.incident[v.ID] = make(map[string]struct{})
	}

	return nil
}

// RemoveVertex deletes the vertex and every hyperedge incident to it.
func (s *Incidence) RemoveVertex(id string) error {
	if _, ok := s.vertices[id]; !ok {
		return core.ErrVertexNotFound
	}
	for hid := range s.incident[id] {
		s.unlink(hid)
	}
	delete(s.vertices, id)
	delete(s.incident, id)

	return nil
}

// HasVertex reports whether the vertex exists. O(1).
func (s *Incidence) HasVertex(id string) bool {
	_, ok := s.vertices[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (s *Incidence) Vertex(id string) (core.Vertex, error) {
	v, ok := s.vertices[id]
	if !ok {
		return core.Vertex{}, core.ErrVertexNotFound
	}

	return v.Clone(), nil
}

// Vertices returns all vertices sorted by ID.
func (s *Incidence) Vertices() []core.Vertex { return sortedVertices(s.vertices) }

// VertexCount returns the number of vertices. O(1).
func (s *Incidence) VertexCount() int { return len(s.vertices) }

// AddHyperedge stores h under a fresh UUID and returns that ID.
// Every member vertex must already exist (core.ErrVertexNotFound).
// Structural duplicates are permitted.
func (s *Incidence) AddHyperedge(h core.Hyperedge) (string, error) {
	for _, member := range h.Vertices {
		if !s.HasVertex(member) {
			return "", core.ErrVertexNotFound
		}
	}
	stored := h.Clone()
	stored.ID = uuid.NewString()
	s.byID[stored.ID] = stored
	for _, member := range stored.Vertices {
		s.incident[member][stored.ID] = struct{}{}
	}

	return stored.ID, nil
}

// RemoveHyperedge deletes the hyperedge with the given ID.
func (s *Incidence) RemoveHyperedge(id string) error {
	if _, ok := s.byID[id]; !ok {
		return core.ErrHyperedgeNotFound
	}
	s.unlink(id)

	return nil
}

// Hyperedge returns a copy of the hyperedge with the given ID.
func (s *Incidence) Hyperedge(id string) (core.Hyperedge, error) {
	h, ok := s.byID[id]
	if !ok {
		return core.Hyperedge{}, core.ErrHyperedgeNotFound
	}

	return h.Clone(), nil
}

// Hyperedges returns every hyperedge, ordered by vertex-set key then ID.
// UUIDs alone would make the order random run to run.
func (s *Incidence) Hyperedges() []core.Hyperedge {
	out := make([]core.Hyperedge, 0, len(s.byID))
	for _, h := range s.byID {
		out = append(out, h.Clone())
	}
	sortHyperedges(out)

	return out
}

// HyperedgeCount returns the number of hyperedges. O(1).
func (s *Incidence) HyperedgeCount() int { return len(s.byID) }

// IncidentTo returns the hyperedges containing id, ordered like Hyperedges.
func (s *Incidence) IncidentTo(id string) ([]core.Hyperedge, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	out := make([]core.Hyperedge, 0, len(s.incident[id]))
	for hid := range s.incident[id] {
		out = append(out, s.byID[hid].Clone())
	}
	sortHyperedges(out)

	return out, nil
}

// Degree returns the number of hyperedges incident to id. O(1).
func (s *Incidence) Degree(id string) (int, error) {
	if !s.HasVertex(id) {
		return 0, core.ErrVertexNotFound
	}

	return len(s.incident[id]), nil
}

// Neighbors returns the union of co-members across all hyperedges containing
// id, sorted, excluding id itself.
func (s *Incidence) Neighbors(id string) ([]string, error) {
	if !s.HasVertex(id) {
		return nil, core.ErrVertexNotFound
	}
	seen := make(map[string]struct{})
	for hid := range s.incident[id] {
		for _, member := range s.byID[hid].Vertices {
			if member != id {
				seen[member] = struct{}{}
			}
		}
	}

	return sortedKeys(seen), nil
}

// Clear removes all vertices and hyperedges.
func (s *Incidence) Clear() {
	s.vertices = make(map[string]core.Vertex)
	s.byID = make(map[string]core.Hyperedge)
	s.incident = make(map[string]map[string]struct{})
}

// unlink removes hyperedge hid from the catalog and all incidence sets.
func (s *Incidence) unlink(hid string) {
	h, ok := s.byID[hid]
	if !ok {
		return
	}
	for _, member := range h.Vertices {
		delete(s.incident[member], hid)
	}
	delete(s.byID, hid)
}

// sortHyperedges orders hyperedges by vertex-set key, then by ID.
func sortHyperedges(hs []core.Hyperedge) {
	sort.Slice(hs, func(i, j int) bool {
		ki, kj := hs[i].Key(), hs[j].Key()
		if ki != kj {
			return ki < kj
		}

		return hs[i].ID < hs[j].ID
	})
}
