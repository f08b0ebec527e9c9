// Package core defines the central Vertex, Edge, and Hyperedge value types,
// the attribute map they carry, and the Representation contract that every
// storage strategy implements.
//
// All core types are plain values with copy semantics: stores and graphs
// return copies, never aliases into their internal state, so callers may
// mutate whatever they receive without corrupting a graph.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is empty or whitespace-only.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrDuplicateEdge     - edge between the pair already exists in a simple store.
//	ErrBadWeight         - weight is negative or NaN.
//	ErrBadArity          - hyperedge connects fewer than two vertices.
//	ErrHyperedgeNotFound - requested hyperedge does not exist.
package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultWeight is the weight assigned to edges created without an explicit one.
const DefaultWeight = 1.0

// Attrs stores arbitrary key-value data attached to a vertex, edge, or hyperedge.
type Attrs map[string]any

// Clone returns a shallow copy of the attribute map.
// A nil receiver yields nil, so zero-value entities stay allocation-free.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Vertex represents a node in a graph.
//
// ID uniquely identifies the Vertex; two vertices are equal iff their IDs
// are equal, regardless of attributes.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs stores arbitrary user data. Copied on construction and on read.
	Attrs Attrs
}

// NewVertex constructs a Vertex, validating and trimming the ID.
// Returns ErrEmptyVertexID if id is empty or whitespace-only.
func NewVertex(id string, attrs Attrs) (Vertex, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}

	return Vertex{ID: id, Attrs: attrs.Clone()}, nil
}

// Clone returns a copy of the vertex with its own attribute map.
func (v Vertex) Clone() Vertex {
	return Vertex{ID: v.ID, Attrs: v.Attrs.Clone()}
}

// EdgeKey is the canonical identity of a binary edge.
//
// For directed edges U→V the key is (U, V) as given. For undirected edges the
// endpoints are normalized lexicographically, so (B, A) and (A, B) share one key.
type EdgeKey struct {
	U, V string
}

// Edge represents a weighted connection between two vertices.
type Edge struct {
	// Source is the origin vertex ID (one endpoint for undirected edges).
	Source string

	// Target is the destination vertex ID (the other endpoint for undirected edges).
	Target string

	// Weight is the cost of the edge. Non-negative; defaults to DefaultWeight.
	Weight float64

	// Directed indicates the edge is one-way (true) or bidirectional (false).
	Directed bool

	// Attrs stores arbitrary user data.
	Attrs Attrs
}

// NewEdge constructs an Edge after validating endpoints and weight.
// Returns ErrEmptyVertexID for blank endpoints, ErrBadWeight for negative
// or NaN weights.
func NewEdge(source, target string, weight float64, directed bool, attrs Attrs) (Edge, error) {
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)
	if source == "" || target == "" {
		return Edge{}, ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return Edge{}, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	return Edge{Source: source, Target: target, Weight: weight, Directed: directed, Attrs: attrs.Clone()}, nil
}

// Key returns the canonical EdgeKey for this edge.
func (e Edge) Key() EdgeKey {
	return PairKey(e.Source, e.Target, e.Directed)
}

// SelfLoop reports whether both endpoints are the same vertex.
func (e Edge) SelfLoop() bool { return e.Source == e.Target }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.Source:
		return e.Target
	case e.Target:
		return e.Source
	default:
		return ""
	}
}

// Clone returns a copy of the edge with its own attribute map.
func (e Edge) Clone() Edge {
	out := e
	out.Attrs = e.Attrs.Clone()

	return out
}

// PairKey builds the canonical EdgeKey for an endpoint pair.
// Undirected pairs are normalized so the lexicographically smaller ID comes first.
func PairKey(u, v string, directed bool) EdgeKey {
	if !directed && v < u {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Hyperedge represents a connection among two or more vertices.
//
// Identity is the sorted vertex set: two hyperedges over the same vertices
// are structurally equal even when their store-assigned IDs differ.
type Hyperedge struct {
	// ID is the store-assigned unique identifier (a UUID once stored).
	ID string

	// Vertices holds the member vertex IDs, sorted and deduplicated.
	Vertices []string

	// Weight is the cost of the hyperedge. Non-negative; defaults to DefaultWeight.
	Weight float64

	// Attrs stores arbitrary user data.
	Attrs Attrs
}

// NewHyperedge constructs a Hyperedge over the given vertex set.
// The set is trimmed, deduplicated, and sorted. Returns ErrBadArity if
// fewer than two distinct vertices remain, ErrEmptyVertexID for blank
// members, and ErrBadWeight for negative or NaN weights.
func NewHyperedge(vertices []string, weight float64, attrs Attrs) (Hyperedge, error) {
	if weight < 0 || math.IsNaN(weight) {
		return Hyperedge{}, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	seen := make(map[string]struct{}, len(vertices))
	members := make([]string, 0, len(vertices))
	for _, id := range vertices {
		id = strings.TrimSpace(id)
		if id == "" {
			return Hyperedge{}, ErrEmptyVertexID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}
	if len(members) < 2 {
		return Hyperedge{}, fmt.Errorf("%w: need at least 2 distinct vertices, got %d", ErrBadArity, len(members))
	}
	sort.Strings(members)

	return Hyperedge{Vertices: members, Weight: weight, Attrs: attrs.Clone()}, nil
}

// Key returns the order-independent identity of the hyperedge:
// its sorted vertex IDs joined by a separator that cannot occur in an ID.
func (h Hyperedge) Key() string {
	return strings.Join(h.Vertices, "\x1f")
}

// Contains reports whether id is a member of the hyperedge.
func (h Hyperedge) Contains(id string) bool {
	i := sort.SearchStrings(h.Vertices, id)

	return i < len(h.Vertices) && h.Vertices[i] == id
}

// Arity returns the number of member vertices.
func (h Hyperedge) Arity() int { return len(h.Vertices) }

// Clone returns a copy of the hyperedge with its own vertex slice and attrs.
func (h Hyperedge) Clone() Hyperedge {
	out := h
	out.Vertices = append([]string(nil), h.Vertices...)
	out.Attrs = h.Attrs.Clone()

	return out
}
