package storage

import (
	"fmt"
	"sort"

	"github.com/kindgraph/kindgraph/core"
)

// New constructs an empty binary-edge store for the given representation.
// Returns core.ErrUnknownRepresentation for core.RepIncidence (hyperedges do
// not fit the binary contract; use NewIncidence directly) and for
// unrecognized names.
func New(rep core.RepKind) (core.Representation, error) {
	switch rep {
	case core.RepAdjacencyList:
		return NewSimpleList(), nil
	case core.RepMultiList:
		return NewMultiList(), nil
	case core.RepAdjacencyMatrix:
		return NewMatrix(), nil
	case core.RepEdgeList:
		return NewEdgeList(), nil
	default:
		return nil, fmt.Errorf("%w: %q is not a binary representation", core.ErrUnknownRepresentation, rep)
	}
}

// sortedVertices snapshots a vertex map as clones sorted by ID.
func sortedVertices(m map[string]core.Vertex) []core.Vertex {
	out := make([]core.Vertex, 0, len(m))
	for _, v := range m {
		out = append(out, v.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// sortedKeys snapshots the keys of a string-keyed set in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// orientFrom returns a copy of e re-oriented so Source == id.
// Directed edges are returned as-is.
func orientFrom(e core.Edge, id string) core.Edge {
	out := e.Clone()
	if other := out.Other(id); !out.Directed && other != "" {
		out.Source, out.Target = id, other
	}

	return out
}

// sortEdgeKeys orders pair keys lexicographically.
func sortEdgeKeys(keys []core.EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}

		return keys[i].V < keys[j].V
	})
}

// decr decrements m[k], deleting the entry once it reaches zero.
func decr(m map[string]int, k string) {
	if m == nil {
		return
	}
	m[k]--
	if m[k] <= 0 {
		delete(m, k)
	}
}

// sortEdges orders edges by canonical key, then weight, for stable snapshots.
func sortEdges(es []core.Edge) {
	sort.SliceStable(es, func(i, j int) bool {
		ki, kj := es[i].Key(), es[j].Key()
		if ki.U != kj.U {
			return ki.U < kj.U
		}
		if ki.V != kj.V {
			return ki.V < kj.V
		}

		return es[i].Weight < es[j].Weight
	})
}
