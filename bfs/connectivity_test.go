package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/bfs"
	"github.com/kindgraph/kindgraph/graph"
)

// twoIslands builds {A,B,C} plus {X,Y} as separate undirected components.
func twoIslands(t *testing.T) *graph.SimpleGraph {
	t.Helper()
	g, err := graph.NewSimple()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "X", "Y"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("X", "Y", 1))

	return g
}

func TestConnectedComponents(t *testing.T) {
	require := require.New(t)
	g := twoIslands(t)

	comps, err := bfs.ConnectedComponents(g)
	require.NoError(err)
	require.Equal([][]string{{"A", "B", "C"}, {"X", "Y"}}, comps)
}

func TestConnectedComponents_IsolatedVertex(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple()
	require.NoError(err)
	require.NoError(g.AddVertex("solo"))

	comps, err := bfs.ConnectedComponents(g)
	require.NoError(err)
	require.Equal([][]string{{"solo"}}, comps)
}

func TestConnectedComponents_RejectsDirected(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple(graph.WithDirected(true))
	require.NoError(err)

	_, err = bfs.ConnectedComponents(g)
	require.ErrorIs(err, bfs.ErrDirectedGraph)

	_, err = bfs.IsConnected(g)
	require.ErrorIs(err, bfs.ErrDirectedGraph)
}

func TestIsConnected(t *testing.T) {
	require := require.New(t)

	g, err := graph.NewSimple()
	require.NoError(err)
	ok, err := bfs.IsConnected(g)
	require.NoError(err)
	require.True(ok, "empty graph counts as connected")

	g = twoIslands(t)
	ok, err = bfs.IsConnected(g)
	require.NoError(err)
	require.False(ok)

	require.NoError(g.AddEdge("C", "X", 1))
	ok, err = bfs.IsConnected(g)
	require.NoError(err)
	require.True(ok)
}

func TestHasPath_Directed(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple(graph.WithDirected(true))
	require.NoError(err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(g.AddVertex(id))
	}
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("B", "C", 1))

	ok, err := bfs.HasPath(g, "A", "C")
	require.NoError(err)
	require.True(ok)

	ok, err = bfs.HasPath(g, "C", "A")
	require.NoError(err)
	require.False(ok, "reachability follows edge orientation")

	_, err = bfs.HasPath(g, "A", "missing")
	require.ErrorIs(err, bfs.ErrStartVertexNotFound)
}

func TestShortestPath(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple()
	require.NoError(err)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(g.AddVertex(id))
	}
	// Two routes A-D: the direct hop count wins over any weight.
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("B", "C", 1))
	require.NoError(g.AddEdge("C", "D", 1))
	require.NoError(g.AddEdge("A", "D", 100))

	path, err := bfs.ShortestPath(g, "A", "D")
	require.NoError(err)
	require.Equal([]string{"A", "D"}, path)
}

func TestShortestPath_Unreachable(t *testing.T) {
	require := require.New(t)
	g := twoIslands(t)

	path, err := bfs.ShortestPath(g, "A", "X")
	require.NoError(err)
	require.Nil(path, "no path and no error for unreachable targets")
}
