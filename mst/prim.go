// Package mst provides Prim's minimum-spanning-tree algorithm.
// It grows the tree from a root vertex using a min-heap of frontier
// edges and returns the MST as a new simple graph.
package mst

import (
	"container/heap"
	"fmt"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// Prim computes the minimum spanning tree of an undirected graph by
// growing outwards from root. The result is a fresh undirected simple
// graph containing every vertex of g and exactly the MST edges; the
// second return is their total weight. The input graph is never mutated.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g graph.Graph, root string) (*graph.SimpleGraph, float64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	vertices := g.Vertices()
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var total float64

	pq := &edgePQ{}
	heap.Init(pq)

	visited[root] = true
	if err := pushFrontier(pq, g, root, visited); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(*core.Edge)
		v := e.Target
		if visited[v] {
			continue
		}
		visited[v] = true
		tree = append(tree, *e)
		total += e.Weight
		if err := pushFrontier(pq, g, v, visited); err != nil {
			return nil, 0, err
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	out, err := graph.NewSimple()
	if err != nil {
		return nil, 0, err
	}
	for _, v := range vertices {
		if err := out.AddVertex(v); err != nil {
			return nil, 0, err
		}
	}
	for _, e := range tree {
		if err := out.AddEdge(e.Source, e.Target, e.Weight); err != nil {
			return nil, 0, err
		}
	}

	return out, total, nil
}

// pushFrontier pushes every edge from u to an unvisited vertex.
// EdgesFrom re-orients edges so Source == u, so e.Target is always the
// far endpoint; self-loops fail the visited check and are never pushed.
func pushFrontier(pq *edgePQ, g graph.Graph, u string, visited map[string]bool) error {
	edges, err := g.EdgesFrom(u)
	if err != nil {
		return fmt.Errorf("mst: edges from %q: %w", u, err)
	}
	for i := range edges {
		if !visited[edges[i].Target] {
			heap.Push(pq, &edges[i])
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min-heap of *core.Edge,
// ordered by Weight ascending.
type edgePQ []*core.Edge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
