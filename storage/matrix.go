package storage

import (
	"sort"

	"github.com/kindgraph/kindgraph/core"
)

// initialMatrixCapacity is the side length of a freshly allocated matrix.
const initialMatrixCapacity = 4

// Matrix is a dense adjacency matrix with amortized growth: capacity doubles
// whenever the vertex count outgrows the allocated square.
//
// Cells hold edge weights; a present-mask tracks occupancy so zero-weight
// edges are not confused with absent ones. Edge attributes and directedness
// live in a side catalog keyed by canonical pair.
//
// Performance: O(1) edge queries and insertions, O(V) neighbor scans,
// O(V^2) vertex removal (row/column compaction).
type Matrix struct {
	idx   map[string]int // vertex ID -> row/column index
	ids   []string       // index -> vertex ID
	verts map[string]core.Vertex

	cells   [][]float64 // weight matrix, capacity x capacity
	present [][]bool    // occupancy mask for cells

	edges map[core.EdgeKey]core.Edge
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	m := &Matrix{
		idx:   make(map[string]int),
		verts: make(map[string]core.Vertex),
		edges: make(map[core.EdgeKey]core.Edge),
	}
	m.alloc(initialMatrixCapacity)

	return m
}

// Kind reports core.RepAdjacencyMatrix.
func (m *Matrix) Kind() core.RepKind { return core.RepAdjacencyMatrix }

// AddVertex inserts v or refreshes its attributes, growing the matrix when
// the allocated capacity is exhausted. Idempotent.
func (m *Matrix) AddVertex(v core.Vertex) error {
	if v.ID == "" {
		return core.ErrEmptyVertexID
	}
	if _, ok := m.idx[v.ID]; ok {
		m.verts[v.ID] = v.Clone()

		return nil
	}
	if len(m.ids) == len(m.cells) {
		m.grow()
	}
	m.idx[v.ID] = len(m.ids)
	m.ids = append(m.ids, v.ID)
	m.verts[v.ID] = v.Clone()

	return nil
}

// RemoveVertex deletes the vertex, compacting rows and columns in place.
// Complexity: O(V^2).
func (m *Matrix) RemoveVertex(id string) error {
	i, ok := m.idx[id]
	if !ok {
		return core.ErrVertexNotFound
	}
	for key, e := range m.edges {
		if e.Source == id || e.Target == id {
			delete(m.edges, key)
		}
	}

	n := len(m.ids)
	// Shift rows up over row i.
	for r := i; r < n-1; r++ {
		copy(m.cells[r], m.cells[r+1])
		copy(m.present[r], m.present[r+1])
	}
	// Shift columns left over column i.
	for r := 0; r < n-1; r++ {
		copy(m.cells[r][i:], m.cells[r][i+1:n])
		copy(m.present[r][i:], m.present[r][i+1:n])
	}
	// Zero the vacated last row and column.
	for c := 0; c < n; c++ {
		m.cells[n-1][c] = 0
		m.present[n-1][c] = false
	}
	for r := 0; r < n-1; r++ {
		m.cells[r][n-1] = 0
		m.present[r][n-1] = false
	}

	m.ids = append(m.ids[:i], m.ids[i+1:]...)
	delete(m.idx, id)
	delete(m.verts, id)
	for j := i; j < len(m.ids); j++ {
		m.idx[m.ids[j]] = j
	}

	return nil
}

// HasVertex reports whether the vertex exists. O(1).
func (m *Matrix) HasVertex(id string) bool {
	_, ok := m.idx[id]

	return ok
}

// Vertex returns a copy of the stored vertex.
func (m *Matrix) Vertex(id string) (core.Vertex, error) {
	v, ok := m.verts[id]
	if !ok {
		return core.Vertex{}, core.ErrVertexNotFound
	}

	return v.Clone(), nil
}

// Vertices returns all vertices sorted by ID.
func (m *Matrix) Vertices() []core.Vertex { return sortedVertices(m.verts) }

// VertexCount returns the number of vertices. O(1).
func (m *Matrix) VertexCount() int { return len(m.ids) }

// AddEdge inserts e. Both endpoints must exist; a second edge between the
// same pair returns core.ErrDuplicateEdge.
func (m *Matrix) AddEdge(e core.Edge) error {
	i, ok := m.idx[e.Source]
	if !ok {
		return core.ErrVertexNotFound
	}
	j, ok := m.idx[e.Target]
	if !ok {
		return core.ErrVertexNotFound
	}
	key := e.Key()
	if _, dup := m.edges[key]; dup {
		return core.ErrDuplicateEdge
	}
	m.edges[key] = e.Clone()
	m.cells[i][j] = e.Weight
	m.present[i][j] = true
	if !e.Directed {
		m.cells[j][i] = e.Weight
		m.present[j][i] = true
	}

	return nil
}

// RemoveEdge deletes the edge between source and target.
func (m *Matrix) RemoveEdge(source, target string) error {
	e, key, ok := m.lookup(source, target)
	if !ok {
		return core.ErrEdgeNotFound
	}
	delete(m.edges, key)
	i, j := m.idx[e.Source], m.idx[e.Target]
	m.cells[i][j] = 0
	m.present[i][j] = false
	if !e.Directed {
		m.cells[j][i] = 0
		m.present[j][i] = false
	}

	return nil
}

// HasEdge reports whether an edge connects source to target. O(1).
func (m *Matrix) HasEdge(source, target string) bool {
	i, ok := m.idx[source]
	if !ok {
		return false
	}
	j, ok := m.idx[target]
	if !ok {
		return false
	}

	return m.present[i][j]
}

// Edge returns a copy of the edge between source and target.
func (m *Matrix) Edge(source, target string) (core.Edge, error) {
	e, _, ok := m.lookup(source, target)
	if !ok {
		return core.Edge{}, core.ErrEdgeNotFound
	}

	return e.Clone(), nil
}

// Edges returns every edge once, ordered by canonical key.
func (m *Matrix) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, e.Clone())
	}
	sortEdges(out)

	return out
}

// EdgesFrom returns the edges leaving id, re-oriented so Source == id.
// Complexity: O(V).
func (m *Matrix) EdgesFrom(id string) ([]core.Edge, error) {
	nbrs, err := m.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]core.Edge, 0, len(nbrs))
	for _, nbr := range nbrs {
		e, _, ok := m.lookup(id, nbr)
		if !ok {
			continue
		}
		out = append(out, orientFrom(e, id))
	}

	return out, nil
}

// EdgeCount returns the number of edges. O(1).
func (m *Matrix) EdgeCount() int { return len(m.edges) }

// Neighbors returns the adjacent vertex IDs, sorted.
// Complexity: O(V log V) (row scan plus sort).
func (m *Matrix) Neighbors(id string) ([]string, error) {
	i, ok := m.idx[id]
	if !ok {
		return nil, core.ErrVertexNotFound
	}
	out := make([]string, 0, len(m.ids))
	for j := range m.ids {
		if m.present[i][j] {
			out = append(out, m.ids[j])
		}
	}
	sort.Strings(out)

	return out, nil
}

// Clear removes all vertices and edges, shrinking back to the initial capacity.
func (m *Matrix) Clear() {
	m.idx = make(map[string]int)
	m.ids = nil
	m.verts = make(map[string]core.Vertex)
	m.edges = make(map[core.EdgeKey]core.Edge)
	m.alloc(initialMatrixCapacity)
}

// Dense returns a copy of the occupied weight submatrix and the vertex IDs
// labelling its rows and columns, in index order.
func (m *Matrix) Dense() ([][]float64, []string) {
	n := len(m.ids)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = append([]float64(nil), m.cells[i][:n]...)
	}

	return out, append([]string(nil), m.ids...)
}

// alloc replaces the backing square with a zeroed one of side length cap.
func (m *Matrix) alloc(capacity int) {
	m.cells = make([][]float64, capacity)
	m.present = make([][]bool, capacity)
	for i := range m.cells {
		m.cells[i] = make([]float64, capacity)
		m.present[i] = make([]bool, capacity)
	}
}

// grow doubles the allocated capacity, copying existing cells.
func (m *Matrix) grow() {
	oldCells, oldPresent, n := m.cells, m.present, len(m.ids)
	m.alloc(2 * len(oldCells))
	for i := 0; i < n; i++ {
		copy(m.cells[i], oldCells[i][:n])
		copy(m.present[i], oldPresent[i][:n])
	}
}

// lookup resolves the stored edge for a pair, trying the given orientation
// first and the reversed orientation for undirected edges.
func (m *Matrix) lookup(u, v string) (core.Edge, core.EdgeKey, bool) {
	if e, ok := m.edges[core.EdgeKey{U: u, V: v}]; ok {
		return e, core.EdgeKey{U: u, V: v}, true
	}
	if e, ok := m.edges[core.EdgeKey{U: v, V: u}]; ok && !e.Directed {
		return e, core.EdgeKey{U: v, V: u}, true
	}

	return core.Edge{}, core.EdgeKey{}, false
}
