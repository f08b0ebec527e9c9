package core

// Representation is the contract every binary-edge storage strategy implements.
//
// Guarantees shared by all implementations:
//
//   - Mutations validate before touching state: a failed operation leaves the
//     store exactly as it was.
//   - Counts are O(1) and always consistent with the stored sets.
//   - Snapshots (Vertices, Edges, Neighbors) return fresh slices in a
//     deterministic order; mutating them never affects the store.
//   - Each undirected edge appears exactly once in Edges, regardless of the
//     endpoint order used to add it.
//
// Hypergraph incidence storage is a separate contract (see storage.Incidence):
// hyperedges are not pairs and do not fit a binary-edge interface.
type Representation interface {
	// Kind reports which representation this store implements.
	Kind() RepKind

	// AddVertex inserts v, or updates its attributes if the ID already exists.
	// Idempotent with respect to the vertex set.
	AddVertex(v Vertex) error

	// RemoveVertex deletes the vertex and every incident edge.
	// Returns ErrVertexNotFound if absent.
	RemoveVertex(id string) error

	// HasVertex reports whether the vertex exists.
	HasVertex(id string) bool

	// Vertex returns a copy of the stored vertex, or ErrVertexNotFound.
	Vertex(id string) (Vertex, error)

	// Vertices returns all vertices sorted by ID.
	Vertices() []Vertex

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// AddEdge inserts e. Both endpoints must already exist
	// (ErrVertexNotFound). Stores that forbid parallel edges return
	// ErrDuplicateEdge when the pair is already connected.
	AddEdge(e Edge) error

	// RemoveEdge deletes the edge between source and target.
	// Multi stores drop every parallel edge for the pair.
	// Returns ErrEdgeNotFound if no such edge exists.
	RemoveEdge(source, target string) error

	// HasEdge reports whether at least one edge connects source to target,
	// honoring directedness.
	HasEdge(source, target string) bool

	// Edge returns a copy of one edge between source and target
	// (the first parallel edge in multi stores), or ErrEdgeNotFound.
	Edge(source, target string) (Edge, error)

	// Edges returns every stored edge, each undirected edge once,
	// in a deterministic order.
	Edges() []Edge

	// EdgesFrom returns copies of the edges leaving id, re-oriented so that
	// Source == id for undirected edges. Returns ErrVertexNotFound if absent.
	EdgesFrom(id string) ([]Edge, error)

	// EdgeCount returns the number of edges (parallels counted). O(1).
	EdgeCount() int

	// Neighbors returns the unique adjacent vertex IDs, sorted.
	// For directed stores only outgoing edges count.
	// Returns ErrVertexNotFound if absent.
	Neighbors(id string) ([]string, error)

	// Clear removes all vertices and edges.
	Clear()
}
