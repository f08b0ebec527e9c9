package graph

import (
	"errors"
	"fmt"

	"github.com/kindgraph/kindgraph/core"
)

// Sentinel errors for graph-kind constraints and construction.
var (
	// ErrLoopNotAllowed indicates a self-loop on a kind that forbids them.
	ErrLoopNotAllowed = errors.New("graph: self-loops not allowed")

	// ErrDirectedHypergraph indicates WithDirected(true) on a hypergraph.
	ErrDirectedHypergraph = errors.New("graph: hypergraphs are always undirected")

	// ErrBadRepresentation indicates a representation the kind cannot use.
	ErrBadRepresentation = errors.New("graph: representation not supported for this kind")
)

// Graph is the query and mutation surface shared by every graph kind.
// The algorithm packages consume this interface and nothing else.
//
// Determinism: Vertices and Neighbors are sorted, Edges is stable, so any
// algorithm iterating through this interface is reproducible run to run.
//
// For hypergraphs the binary-edge views (Edges, EdgesFrom, HasEdge) expose
// only the 2-vertex hyperedges; see Hypergraph for the full surface.
type Graph interface {
	// Kind reports the graph variant.
	Kind() core.Kind

	// Directed reports whether edges are one-way.
	Directed() bool

	// Representation reports the backing storage strategy.
	Representation() core.RepKind

	// AddVertex inserts the vertex, optionally with WithAttrs. Idempotent.
	AddVertex(id string, opts ...AddOption) error

	// RemoveVertex deletes the vertex and everything incident to it.
	RemoveVertex(id string) error

	// HasVertex reports whether the vertex exists.
	HasVertex(id string) bool

	// Vertex returns a copy of the vertex, attribute map included.
	Vertex(id string) (core.Vertex, error)

	// AddEdge connects u to v with the given weight, enforcing the kind's
	// constraints. Both endpoints must already exist. WithAttrs attaches
	// an attribute map to the new edge.
	AddEdge(u, v string, weight float64, opts ...AddOption) error

	// RemoveEdge disconnects u and v.
	RemoveEdge(u, v string) error

	// HasEdge reports whether u connects to v, honoring directedness.
	HasEdge(u, v string) bool

	// Neighbors returns the unique adjacent vertex IDs, sorted.
	Neighbors(id string) ([]string, error)

	// Vertices returns all vertex IDs, sorted.
	Vertices() []string

	// Edges returns every edge, each undirected edge once, in a stable order.
	Edges() []core.Edge

	// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
	EdgesFrom(id string) ([]core.Edge, error)

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// EdgeCount returns the number of edges (hyperedges for hypergraphs). O(1).
	EdgeCount() int

	// Degree returns the degree of the vertex. Kinds differ: binary kinds
	// count unique neighbors, hypergraphs count incident hyperedges.
	Degree(id string) (int, error)
}

// New constructs an empty graph of the given kind.
//
// Defaults: undirected; adjacency list storage for simple graphs, multi
// adjacency list for multi and pseudo, incidence for hyper.
// Returns ErrBadRepresentation when WithRepresentation names a store the
// kind cannot use, and ErrDirectedHypergraph for directed hypergraphs.
func New(kind core.Kind, opts ...Option) (Graph, error) {
	switch kind {
	case core.KindSimple:
		return NewSimple(opts...)
	case core.KindMulti:
		return NewMulti(opts...)
	case core.KindPseudo:
		return NewPseudo(opts...)
	case core.KindHyper:
		return NewHyper(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownKind, kind)
	}
}

// config collects construction options before a kind validates them.
type config struct {
	directed  bool
	rep       core.RepKind
	repSet    bool
	observers []Observer
}

// Option configures a graph before creation.
type Option func(*config)

// WithDirected sets edge directedness for the whole graph
// (true = directed, false = undirected).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithRepresentation selects the backing storage strategy.
// Only simple graphs support more than one.
func WithRepresentation(rep core.RepKind) Option {
	return func(c *config) {
		c.rep = rep
		c.repSet = true
	}
}

// WithObserver registers a callback invoked after every successful mutation.
// May be passed multiple times; callbacks run in registration order.
func WithObserver(fn Observer) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// addConfig collects per-insertion options for AddVertex and AddEdge.
type addConfig struct {
	attrs core.Attrs
}

// AddOption configures a single vertex or edge insertion.
type AddOption func(*addConfig)

// WithAttrs attaches an attribute map to the inserted vertex or edge.
// The map is copied on insertion, so the caller keeps ownership.
func WithAttrs(attrs core.Attrs) AddOption {
	return func(c *addConfig) { c.attrs = attrs }
}

func buildAddConfig(opts []AddOption) addConfig {
	var c addConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// vertexIDs projects a vertex snapshot to its sorted ID list.
func vertexIDs(rep interface{ Vertices() []core.Vertex }) []string {
	vs := rep.Vertices()
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}

	return ids
}
