package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/storage"
)

func mustHyperedge(t *testing.T, w float64, members ...string) core.Hyperedge {
	t.Helper()
	h, err := core.NewHyperedge(members, w, nil)
	require.NoError(t, err)

	return h
}

func newIncidenceWith(t *testing.T, ids ...string) *storage.Incidence {
	t.Helper()
	s := storage.NewIncidence()
	for _, id := range ids {
		require.NoError(t, s.AddVertex(mustVertex(t, id)))
	}

	return s
}

func TestIncidence_AddHyperedgeAssignsUUID(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B", "C")

	id1, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "B", "C"))
	require.NoError(err)
	require.NotEmpty(id1)

	// Structural duplicate gets its own identity.
	id2, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "B", "C"))
	require.NoError(err)
	require.NotEqual(id1, id2)
	require.Equal(2, s.HyperedgeCount())
}

func TestIncidence_MembersMustExist(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B")

	_, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "B", "Z"))
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.Equal(0, s.HyperedgeCount(), "failed insert must not change state")
}

func TestIncidence_DegreeAndNeighbors(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B", "C", "D")

	_, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "B", "C"))
	require.NoError(err)
	_, err = s.AddHyperedge(mustHyperedge(t, 1, "A", "D"))
	require.NoError(err)

	deg, err := s.Degree("A")
	require.NoError(err)
	require.Equal(2, deg, "degree counts incident hyperedges, not co-members")

	nb, err := s.Neighbors("A")
	require.NoError(err)
	require.Equal([]string{"B", "C", "D"}, nb)

	deg, err = s.Degree("D")
	require.NoError(err)
	require.Equal(1, deg)
}

func TestIncidence_RemoveVertexCascades(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B", "C", "D")

	_, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "B", "C"))
	require.NoError(err)
	hid, err := s.AddHyperedge(mustHyperedge(t, 1, "C", "D"))
	require.NoError(err)

	require.NoError(s.RemoveVertex("A"))
	require.Equal(1, s.HyperedgeCount(), "hyperedges containing the vertex must be dropped whole")

	_, err = s.Hyperedge(hid)
	require.NoError(err, "unrelated hyperedges survive")

	deg, err := s.Degree("B")
	require.NoError(err)
	require.Equal(0, deg)
}

func TestIncidence_RemoveHyperedge(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B")

	hid, err := s.AddHyperedge(mustHyperedge(t, 2, "A", "B"))
	require.NoError(err)

	require.NoError(s.RemoveHyperedge(hid))
	require.Equal(0, s.HyperedgeCount())
	require.ErrorIs(s.RemoveHyperedge(hid), core.ErrHyperedgeNotFound)
}

func TestIncidence_IncidentToOrdering(t *testing.T) {
	require := require.New(t)
	s := newIncidenceWith(t, "A", "B", "C")

	_, err := s.AddHyperedge(mustHyperedge(t, 1, "A", "C"))
	require.NoError(err)
	_, err = s.AddHyperedge(mustHyperedge(t, 1, "A", "B"))
	require.NoError(err)

	incident, err := s.IncidentTo("A")
	require.NoError(err)
	require.Len(incident, 2)
	require.Equal([]string{"A", "B"}, incident[0].Vertices, "ordered by vertex-set key, not insertion")
	require.Equal([]string{"A", "C"}, incident[1].Vertices)
}
