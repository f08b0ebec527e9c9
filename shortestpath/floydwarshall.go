// Package shortestpath provides FloydWarshall, the all-pairs algorithm.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V²) for the distance matrix
package shortestpath

import (
	"math"

	"github.com/kindgraph/kindgraph/graph"
)

// FloydWarshall computes the full pairwise distance matrix of g.
// Self-distance is 0 and non-adjacent pairs are math.Inf(1). Parallel
// edges contribute their minimum weight.
//
// No negative-cycle detection is performed; if the graph contains one,
// the results are undefined. The input graph is never mutated.
func FloydWarshall(g graph.Graph) (map[string]map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	dist := make(map[string]map[string]float64, len(vertices))
	for _, u := range vertices {
		row := make(map[string]float64, len(vertices))
		for _, v := range vertices {
			row[v] = math.Inf(1)
		}
		row[u] = 0
		dist[u] = row
	}
	for _, e := range g.Edges() {
		if e.Weight < dist[e.Source][e.Target] {
			dist[e.Source][e.Target] = e.Weight
		}
		if !e.Directed && e.Weight < dist[e.Target][e.Source] {
			dist[e.Target][e.Source] = e.Weight
		}
	}

	for _, k := range vertices {
		for _, i := range vertices {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for _, j := range vertices {
				if through := dik + dist[k][j]; through < dist[i][j] {
					dist[i][j] = through
				}
			}
		}
	}

	return dist, nil
}
