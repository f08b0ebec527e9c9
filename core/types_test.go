package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/core"
)

func TestNewVertex_Validation(t *testing.T) {
	require := require.New(t)

	v, err := core.NewVertex("  A  ", core.Attrs{"color": "red"})
	require.NoError(err)
	require.Equal("A", v.ID, "ID should be trimmed")
	require.Equal("red", v.Attrs["color"])

	_, err = core.NewVertex("", nil)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = core.NewVertex("   ", nil)
	require.ErrorIs(err, core.ErrEmptyVertexID, "whitespace-only ID should be rejected")
}

func TestNewVertex_AttrsCopied(t *testing.T) {
	require := require.New(t)

	attrs := core.Attrs{"k": 1}
	v, err := core.NewVertex("A", attrs)
	require.NoError(err)

	attrs["k"] = 2
	require.Equal(1, v.Attrs["k"], "vertex must own its attribute map")
}

func TestNewEdge_Validation(t *testing.T) {
	require := require.New(t)

	e, err := core.NewEdge("A", "B", 4, false, nil)
	require.NoError(err)
	require.Equal("A", e.Source)
	require.Equal("B", e.Target)
	require.Equal(4.0, e.Weight)
	require.False(e.SelfLoop())

	_, err = core.NewEdge("", "B", 1, false, nil)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = core.NewEdge("A", "B", -1, false, nil)
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = core.NewEdge("A", "B", math.NaN(), false, nil)
	require.ErrorIs(err, core.ErrBadWeight, "NaN weight should be rejected")

	loop, err := core.NewEdge("A", "A", 0, false, nil)
	require.NoError(err)
	require.True(loop.SelfLoop())
}

func TestEdgeKey_UndirectedNormalized(t *testing.T) {
	require := require.New(t)

	ab, _ := core.NewEdge("A", "B", 1, false, nil)
	ba, _ := core.NewEdge("B", "A", 1, false, nil)
	require.Equal(ab.Key(), ba.Key(), "undirected keys must be order-independent")

	dab, _ := core.NewEdge("A", "B", 1, true, nil)
	dba, _ := core.NewEdge("B", "A", 1, true, nil)
	require.NotEqual(dab.Key(), dba.Key(), "directed keys must preserve orientation")
}

func TestEdge_Other(t *testing.T) {
	require := require.New(t)

	e, _ := core.NewEdge("A", "B", 1, false, nil)
	require.Equal("B", e.Other("A"))
	require.Equal("A", e.Other("B"))
	require.Equal("", e.Other("C"))
}

func TestNewHyperedge_Validation(t *testing.T) {
	require := require.New(t)

	h, err := core.NewHyperedge([]string{"C", "A", "B", "A"}, 2, nil)
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, h.Vertices, "members should be deduplicated and sorted")
	require.Equal(3, h.Arity())
	require.True(h.Contains("B"))
	require.False(h.Contains("D"))

	_, err = core.NewHyperedge([]string{"A"}, 1, nil)
	require.ErrorIs(err, core.ErrBadArity)

	_, err = core.NewHyperedge([]string{"A", "A"}, 1, nil)
	require.ErrorIs(err, core.ErrBadArity, "duplicates collapse before the arity check")

	_, err = core.NewHyperedge([]string{"A", ""}, 1, nil)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = core.NewHyperedge([]string{"A", "B"}, -3, nil)
	require.ErrorIs(err, core.ErrBadWeight)
}

func TestHyperedge_KeyOrderIndependent(t *testing.T) {
	require := require.New(t)

	h1, _ := core.NewHyperedge([]string{"A", "B", "C"}, 1, nil)
	h2, _ := core.NewHyperedge([]string{"C", "B", "A"}, 1, nil)
	require.Equal(h1.Key(), h2.Key())
}

func TestParseKindAndRepKind(t *testing.T) {
	require := require.New(t)

	for _, name := range []string{"simple", "multi", "pseudo", "hyper"} {
		k, err := core.ParseKind(name)
		require.NoError(err)
		require.Equal(name, k.String())
	}
	_, err := core.ParseKind("directed")
	require.ErrorIs(err, core.ErrUnknownKind)

	r, err := core.ParseRepKind("adjacency_matrix")
	require.NoError(err)
	require.Equal(core.RepAdjacencyMatrix, r)
	_, err = core.ParseRepKind("csr")
	require.ErrorIs(err, core.ErrUnknownRepresentation)
}
