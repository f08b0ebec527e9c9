// Package mst provides Kruskal's minimum-spanning-tree algorithm.
// It assumes an undirected weighted graph and produces the edge list
// of the MST together with its total weight.
package mst

import (
	"sort"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Kruskal computes the minimum spanning tree of an undirected graph
// using a disjoint-set union with path compression and union by rank.
//
// Self-loops are skipped: they can never be part of a spanning tree.
// Equal weights tie-break by the stable edge order of g.Edges(), so the
// result is deterministic. The input graph is never mutated.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g graph.Graph) ([]core.Edge, float64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := make([]core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.SelfLoop() {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	var (
		tree  []core.Edge
		total float64
	)
	for _, e := range edges {
		if find(e.Source) == find(e.Target) {
			continue
		}
		union(e.Source, e.Target)
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
