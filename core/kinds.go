package core

import "fmt"

// Kind names a graph variant and the structural constraints it enforces.
type Kind string

const (
	// KindSimple forbids self-loops and parallel edges.
	KindSimple Kind = "simple"

	// KindMulti allows parallel edges but forbids self-loops.
	KindMulti Kind = "multi"

	// KindPseudo allows both parallel edges and self-loops.
	KindPseudo Kind = "pseudo"

	// KindHyper connects arbitrary vertex sets via hyperedges; always undirected.
	KindHyper Kind = "hyper"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// ParseKind maps a kind name to its Kind, or ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSimple, KindMulti, KindPseudo, KindHyper:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// RepKind names a storage representation.
type RepKind string

const (
	// RepAdjacencyList stores neighbor sets per vertex; O(1) queries.
	RepAdjacencyList RepKind = "adjacency_list"

	// RepAdjacencyMatrix stores a dense weight matrix; O(1) edge queries,
	// O(V) neighbor scans.
	RepAdjacencyMatrix RepKind = "adjacency_matrix"

	// RepEdgeList stores a flat edge slice; O(E) queries, minimal memory.
	RepEdgeList RepKind = "edge_list"

	// RepMultiList stores parallel edge lists per vertex pair.
	RepMultiList RepKind = "multi_adjacency_list"

	// RepIncidence stores vertex-to-hyperedge incidence for hypergraphs.
	RepIncidence RepKind = "incidence"
)

// String returns the representation name.
func (r RepKind) String() string { return string(r) }

// ParseRepKind maps a representation name to its RepKind, or ErrUnknownRepresentation.
func ParseRepKind(s string) (RepKind, error) {
	switch RepKind(s) {
	case RepAdjacencyList, RepAdjacencyMatrix, RepEdgeList, RepMultiList, RepIncidence:
		return RepKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
	}
}
