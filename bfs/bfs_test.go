package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/bfs"
	"github.com/kindgraph/kindgraph/graph"
)

// buildPath returns A-B-C-D as an undirected chain.
func buildPath(t *testing.T) *graph.SimpleGraph {
	t.Helper()
	g, err := graph.NewSimple()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	require := require.New(t)
	g := buildPath(t)

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C", "D"}, res.Order)
	require.Equal(0, res.Depth["A"])
	require.Equal(3, res.Depth["D"])
	require.Equal("C", res.Parent["D"])

	path, err := res.PathTo("D")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C", "D"}, path)
}

func TestBFS_BranchingVisitsSortedNeighbors(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple()
	require.NoError(err)
	for _, id := range []string{"A", "C", "B", "E", "D"} {
		require.NoError(g.AddVertex(id))
	}
	for _, pair := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "D"}, {"C", "E"}} {
		require.NoError(g.AddEdge(pair[0], pair[1], 1))
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C", "D", "E"}, res.Order,
		"same-depth vertices visit in sorted order")
}

func TestBFS_InvalidInputs(t *testing.T) {
	require := require.New(t)
	g := buildPath(t)

	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, "Z")
	require.ErrorIs(err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(err, bfs.ErrOptionViolation)
}

func TestBFS_MaxDepth(t *testing.T) {
	require := require.New(t)
	g := buildPath(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, res.Order)
	_, reached := res.Depth["D"]
	require.False(reached, "depth 3 lies beyond the limit")
}

func TestBFS_OnVisitAborts(t *testing.T) {
	require := require.New(t)
	g := buildPath(t)
	boom := errors.New("boom")

	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}

		return nil
	}))
	require.ErrorIs(err, boom)
}

func TestBFS_ContextCancellation(t *testing.T) {
	require := require.New(t)
	g := buildPath(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(err, context.Canceled)
}

func TestBFS_DirectedRespectsOrientation(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple(graph.WithDirected(true))
	require.NoError(err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(g.AddVertex(id))
	}
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("C", "B", 1))

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order, "C is upstream and must stay unvisited")
}

func TestBFS_OverHypergraphNeighbors(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewHyper()
	require.NoError(err)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(g.AddVertex(id))
	}
	_, err = g.AddHyperedge([]string{"A", "B", "C"}, 1, nil)
	require.NoError(err)
	_, err = g.AddHyperedge([]string{"C", "D"}, 1, nil)
	require.NoError(err)

	res, err := bfs.BFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C", "D"}, res.Order,
		"co-membership acts as adjacency for traversal")
}
