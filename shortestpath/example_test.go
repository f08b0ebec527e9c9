package shortestpath_test

import (
	"fmt"

	"github.com/kindgraph/kindgraph/graph"
	"github.com/kindgraph/kindgraph/shortestpath"
)

// ExampleDijkstra computes single-source distances on a weighted graph.
func ExampleDijkstra() {
	g, _ := graph.NewSimple()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 8)

	dist, _, _ := shortestpath.Dijkstra(g, "A")
	fmt.Println(dist["B"], dist["D"])
	// Output:
	// 3 8
}

// ExampleDijkstra_withTarget reconstructs the best route to one vertex.
func ExampleDijkstra_withTarget() {
	g, _ := graph.NewSimple()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 1)

	_, prev, _ := shortestpath.Dijkstra(g, "A", shortestpath.WithTarget("B"))
	fmt.Println(shortestpath.ReconstructPath(prev, "A", "B"))
	// Output:
	// [A C B]
}

// ExampleFloydWarshall prints a pairwise distance.
func ExampleFloydWarshall() {
	g, _ := graph.NewSimple(graph.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)

	dist, _ := shortestpath.FloydWarshall(g)
	fmt.Println(dist["A"]["C"])
	// Output:
	// 3
}
