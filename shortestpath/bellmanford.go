// Package shortestpath provides BellmanFord, the single-source algorithm
// that tolerates negative edge weights.
//
// Complexity:
//
//   - Time:  O(V · E) for the relaxation rounds plus one detection pass
//   - Space: O(V) for the distance map
package shortestpath

import (
	"math"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

// BellmanFord computes shortest distances from source to every vertex
// of g, running |V|-1 relaxation rounds over all edges followed by one
// extra pass that detects a negative cycle.
//
// A negative cycle is a normal outcome, not a failure: the result is
// (nil, true, nil) and callers must check the boolean before using the
// distance map. Unreachable vertices map to math.Inf(1). The input
// graph is never mutated.
func BellmanFord(g graph.Graph, source string) (map[string]float64, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, false, ErrSourceNotFound
	}

	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	edges := g.Edges()
	for round := 1; round < len(vertices); round++ {
		improved := false
		for _, e := range edges {
			if relaxEdge(dist, e) {
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	// One more pass: any further improvement proves a negative cycle.
	for _, e := range edges {
		if wouldRelax(dist, e) {
			return nil, true, nil
		}
	}

	return dist, false, nil
}

// relaxEdge relaxes e in its legal directions and reports improvement.
// Undirected edges are relaxed both ways.
func relaxEdge(dist map[string]float64, e core.Edge) bool {
	improved := relaxArc(dist, e.Source, e.Target, e.Weight)
	if !e.Directed {
		if relaxArc(dist, e.Target, e.Source, e.Weight) {
			improved = true
		}
	}

	return improved
}

// relaxArc improves dist[v] through u when possible.
func relaxArc(dist map[string]float64, u, v string, w float64) bool {
	du := dist[u]
	if math.IsInf(du, 1) || du+w >= dist[v] {
		return false
	}
	dist[v] = du + w

	return true
}

// wouldRelax reports whether e could still improve some distance.
func wouldRelax(dist map[string]float64, e core.Edge) bool {
	if arcImproves(dist, e.Source, e.Target, e.Weight) {
		return true
	}

	return !e.Directed && arcImproves(dist, e.Target, e.Source, e.Weight)
}

func arcImproves(dist map[string]float64, u, v string, w float64) bool {
	du := dist[u]

	return !math.IsInf(du, 1) && du+w < dist[v]
}
