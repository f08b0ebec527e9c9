package bfs

import (
	"sort"

	"github.com/kindgraph/kindgraph/graph"
)

// ConnectedComponents partitions an undirected graph into its components.
// Each component is sorted, and components are ordered by their smallest
// member. Returns ErrDirectedGraph for directed graphs: weak and strong
// connectivity differ there, and this helper promises neither.
func ConnectedComponents(g graph.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	visited := make(map[string]bool, g.VertexCount())
	var components [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		component := append([]string(nil), res.Order...)
		sort.Strings(component)
		for _, member := range component {
			visited[member] = true
		}
		components = append(components, component)
	}

	return components, nil
}

// IsConnected reports whether an undirected graph is a single component.
// The empty graph counts as connected.
func IsConnected(g graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, ErrDirectedGraph
	}
	if g.VertexCount() == 0 {
		return true, nil
	}
	res, err := BFS(g, g.Vertices()[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.VertexCount(), nil
}

// HasPath reports whether dest is reachable from start, honoring edge
// direction on directed graphs.
func HasPath(g graph.Graph, start, dest string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(dest) {
		return false, ErrStartVertexNotFound
	}
	res, err := BFS(g, start)
	if err != nil {
		return false, err
	}
	_, reached := res.Depth[dest]

	return reached, nil
}

// ShortestPath returns a minimum-hop path from start to dest, ignoring
// weights. Returns a nil path (and no error) when dest is unreachable.
func ShortestPath(g graph.Graph, start, dest string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) || !g.HasVertex(dest) {
		return nil, ErrStartVertexNotFound
	}
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}
	if _, reached := res.Depth[dest]; !reached {
		return nil, nil
	}

	return res.PathTo(dest)
}
