package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

// The three simple binary stores must be observably interchangeable:
// identical inputs, identical query answers.
func TestBinaryStores_Conformance(t *testing.T) {
	reps := []core.RepKind{core.RepAdjacencyList, core.RepAdjacencyMatrix, core.RepEdgeList}

	for _, rep := range reps {
		t.Run(rep.String(), func(t *testing.T) {
			require := require.New(t)
			s, err := storage.New(rep)
			require.NoError(err)
			require.Equal(rep, s.Kind())

			for _, id := range []string{"D", "A", "C", "B"} {
				require.NoError(s.AddVertex(mustVertex(t, id)))
			}
			require.NoError(s.AddEdge(mustEdge(t, "A", "B", 4, false)))
			require.NoError(s.AddEdge(mustEdge(t, "A", "C", 2, false)))
			require.NoError(s.AddEdge(mustEdge(t, "B", "C", 1, false)))
			require.NoError(s.AddEdge(mustEdge(t, "B", "D", 5, false)))

			require.Equal(4, s.VertexCount())
			require.Equal(4, s.EdgeCount())

			vs := s.Vertices()
			ids := make([]string, len(vs))
			for i, v := range vs {
				ids[i] = v.ID
			}
			require.Equal([]string{"A", "B", "C", "D"}, ids)

			nb, err := s.Neighbors("B")
			require.NoError(err)
			require.Equal([]string{"A", "C", "D"}, nb)

			e, err := s.Edge("C", "A")
			require.NoError(err)
			require.Equal(2.0, e.Weight)

			out, err := s.EdgesFrom("B")
			require.NoError(err)
			require.Len(out, 3)
			for _, fe := range out {
				require.Equal("B", fe.Source)
			}

			require.ErrorIs(s.AddEdge(mustEdge(t, "C", "B", 7, false)), core.ErrDuplicateEdge)

			require.NoError(s.RemoveVertex("C"))
			require.Equal(2, s.EdgeCount())
			require.False(s.HasEdge("A", "C"))
			require.True(s.HasEdge("A", "B"))

			require.NoError(s.RemoveEdge("A", "B"))

			// Counters and snapshots must agree after every mutation mix.
			require.Equal(s.VertexCount(), len(s.Vertices()))
			require.Equal(s.EdgeCount(), len(s.Edges()))
			require.Equal(1, s.EdgeCount())
			require.True(s.HasEdge("B", "D"))
		})
	}
}

func TestNew_RejectsIncidence(t *testing.T) {
	_, err := storage.New(core.RepIncidence)
	require.ErrorIs(t, err, core.ErrUnknownRepresentation)

	_, err = storage.New(core.RepKind("csr"))
	require.ErrorIs(t, err, core.ErrUnknownRepresentation)
}
