package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

func TestEdgeList_BasicLifecycle(t *testing.T) {
	require := require.New(t)
	s := storage.NewEdgeList()

	require.NoError(s.AddVertex(mustVertex(t, "A")))
	require.NoError(s.AddVertex(mustVertex(t, "B")))
	require.NoError(s.AddVertex(mustVertex(t, "C")))

	require.NoError(s.AddEdge(mustEdge(t, "A", "B", 1, false)))
	require.NoError(s.AddEdge(mustEdge(t, "B", "C", 2, false)))

	require.True(s.HasEdge("B", "A"))
	require.Equal(2, s.EdgeCount())

	require.ErrorIs(s.AddEdge(mustEdge(t, "B", "A", 9, false)), core.ErrDuplicateEdge)

	nb, err := s.Neighbors("B")
	require.NoError(err)
	require.Equal([]string{"A", "C"}, nb)

	require.NoError(s.RemoveEdge("A", "B"))
	require.False(s.HasEdge("A", "B"))
	require.Equal(1, s.EdgeCount())
}

func TestEdgeList_RemoveVertexCascades(t *testing.T) {
	require := require.New(t)
	s := storage.NewEdgeList()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(s.AddVertex(mustVertex(t, id)))
	}
	require.NoError(s.AddEdge(mustEdge(t, "A", "B", 1, false)))
	require.NoError(s.AddEdge(mustEdge(t, "B", "C", 1, false)))
	require.NoError(s.AddEdge(mustEdge(t, "A", "C", 1, false)))

	require.NoError(s.RemoveVertex("C"))
	require.Equal(1, s.EdgeCount())
	require.True(s.HasEdge("A", "B"))

	require.ErrorIs(s.RemoveVertex("C"), core.ErrVertexNotFound)
}

func TestEdgeList_DirectedQueries(t *testing.T) {
	require := require.New(t)
	s := storage.NewEdgeList()
	require.NoError(s.AddVertex(mustVertex(t, "A")))
	require.NoError(s.AddVertex(mustVertex(t, "B")))
	require.NoError(s.AddEdge(mustEdge(t, "A", "B", 1, true)))

	require.True(s.HasEdge("A", "B"))
	require.False(s.HasEdge("B", "A"))

	out, err := s.EdgesFrom("B")
	require.NoError(err)
	require.Empty(out)

	out, err = s.EdgesFrom("A")
	require.NoError(err)
	require.Len(out, 1)
}

func TestEdgeList_InsertionOrderSnapshot(t *testing.T) {
	require := require.New(t)
	s := storage.NewEdgeList()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(s.AddVertex(mustVertex(t, id)))
	}
	require.NoError(s.AddEdge(mustEdge(t, "B", "C", 2, false)))
	require.NoError(s.AddEdge(mustEdge(t, "A", "B", 1, false)))

	edges := s.Edges()
	require.Len(edges, 2)
	require.Equal("B", edges[0].Source, "edge list keeps insertion order")
	require.Equal("A", edges[1].Source)
}
