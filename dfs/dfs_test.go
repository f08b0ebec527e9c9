package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/dfs"
	"github.com/kindgraph/kindgraph/graph"
)

// buildTree returns the undirected tree A-{B,C}, B-{D,E}.
func buildTree(t *testing.T) *graph.SimpleGraph {
	t.Helper()
	g, err := graph.NewSimple()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("B", "E", 1))

	return g
}

func TestDFS_IterativeOrder(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)

	res, err := dfs.DFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B", "D", "E", "C"}, res.Order,
		"depth-first, ascending siblings")
	require.Equal(0, res.Depth["A"])
	require.Equal(2, res.Depth["D"])
	require.Equal("B", res.Parent["E"])

	path, err := res.PathTo("E")
	require.NoError(err)
	require.Equal([]string{"A", "B", "E"}, path)
}

func TestDFS_RecursiveCoversSameSet(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)

	iter, err := dfs.DFS(g, "A")
	require.NoError(err)
	rec, err := dfs.DFS(g, "A", dfs.WithRecursive())
	require.NoError(err)

	require.ElementsMatch(iter.Order, rec.Order, "both engines reach the same vertices")
	require.Equal([]string{"A", "B", "D", "E", "C"}, rec.Order,
		"on a tree the orders coincide")
}

func TestDFS_InvalidInputs(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)

	_, err := dfs.DFS(nil, "A")
	require.ErrorIs(err, dfs.ErrGraphNil)

	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(err, dfs.ErrStartVertexNotFound)

	_, err = dfs.DFS(g, "A", dfs.WithMaxDepth(-3))
	require.ErrorIs(err, dfs.ErrOptionViolation)
}

func TestDFS_MaxDepth(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, res.Order)

	rec, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1), dfs.WithRecursive())
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, rec.Order)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)
	boom := errors.New("boom")

	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return boom
		}

		return nil
	}))
	require.ErrorIs(err, boom)
}

func TestDFS_ContextCancellation(t *testing.T) {
	require := require.New(t)
	g := buildTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	require.ErrorIs(err, context.Canceled)
}

func TestDFS_DirectedRespectsOrientation(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple(graph.WithDirected(true))
	require.NoError(err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(g.AddVertex(id))
	}
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("C", "A", 1))

	res, err := dfs.DFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order)
}

func TestDFS_CycleTerminates(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewSimple()
	require.NoError(err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(g.AddVertex(id))
	}
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("B", "C", 1))
	require.NoError(g.AddEdge("C", "A", 1))

	res, err := dfs.DFS(g, "A")
	require.NoError(err)
	require.Len(res.Order, 3, "each vertex discovered exactly once")
}

func TestDFS_MultigraphParallelEdgesVisitOnce(t *testing.T) {
	require := require.New(t)
	g, err := graph.NewMulti()
	require.NoError(err)
	require.NoError(g.AddVertex("A"))
	require.NoError(g.AddVertex("B"))
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.AddEdge("A", "B", 2))

	res, err := dfs.DFS(g, "A")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, res.Order)
}
