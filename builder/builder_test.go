package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/bfs"
	"github.com/kindgraph/kindgraph/builder"
	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
	"github.com/kindgraph/kindgraph/mst"
)

func TestBuild_Path(t *testing.T) {
	require := require.New(t)

	g, err := builder.Build(core.KindSimple, nil, builder.Path(4))
	require.NoError(err)
	require.Equal(4, g.VertexCount())
	require.Equal(3, g.EdgeCount())
	require.True(g.HasEdge("v0", "v1"))
	require.False(g.HasEdge("v0", "v3"))
}

func TestBuild_Cycle(t *testing.T) {
	require := require.New(t)

	g, err := builder.Build(core.KindSimple, nil, builder.Cycle(5))
	require.NoError(err)
	require.Equal(5, g.EdgeCount())
	require.True(g.HasEdge("v4", "v0"), "cycle closes")

	ok, err := bfs.IsConnected(g)
	require.NoError(err)
	require.True(ok)
}

func TestBuild_StarAndWheel(t *testing.T) {
	require := require.New(t)

	star, err := builder.Build(core.KindSimple, nil, builder.Star(5))
	require.NoError(err)
	deg, err := star.Degree(builder.Center)
	require.NoError(err)
	require.Equal(4, deg)

	wheel, err := builder.Build(core.KindSimple, nil, builder.Wheel(6))
	require.NoError(err)
	require.Equal(6, wheel.VertexCount())
	require.Equal(10, wheel.EdgeCount(), "rim C5 plus five spokes")
}

func TestBuild_Complete(t *testing.T) {
	require := require.New(t)

	g, err := builder.Build(core.KindSimple, nil, builder.Complete(4))
	require.NoError(err)
	require.Equal(6, g.EdgeCount())

	d, err := builder.Build(core.KindSimple,
		[]graph.Option{graph.WithDirected(true)}, builder.Complete(3))
	require.NoError(err)
	require.Equal(6, d.EdgeCount(), "both orientations on directed graphs")
	require.True(d.HasEdge("v2", "v0"))
}

func TestBuild_Grid(t *testing.T) {
	require := require.New(t)

	g, err := builder.Build(core.KindSimple, nil, builder.Grid(3, 3))
	require.NoError(err)
	require.Equal(9, g.VertexCount())
	require.Equal(12, g.EdgeCount())
	require.True(g.HasEdge("1,1", "1,2"))
	require.False(g.HasEdge("0,0", "1,1"), "no diagonals")

	// A grid is connected, so it always spans.
	_, total, err := mst.Kruskal(g)
	require.NoError(err)
	require.Equal(8.0, total)
}

func TestBuild_Composition(t *testing.T) {
	require := require.New(t)

	g, err := builder.Build(core.KindMulti, nil, builder.Path(3), builder.Star(3))
	require.NoError(err)
	require.Equal(core.KindMulti, g.Kind())
	// v0..v2 shared between both topologies, plus the hub.
	require.Equal(4, g.VertexCount())
	require.Equal(4, g.EdgeCount())
}

func TestBuild_Invalid(t *testing.T) {
	require := require.New(t)

	_, err := builder.Build(core.KindSimple, nil, builder.Path(1))
	require.ErrorIs(err, builder.ErrTooFewVertices)

	_, err = builder.Build(core.KindSimple, nil, builder.Cycle(2))
	require.ErrorIs(err, builder.ErrTooFewVertices)

	_, err = builder.Build(core.KindSimple, nil, nil)
	require.ErrorIs(err, builder.ErrNilConstructor)

	_, err = builder.Build(core.Kind("nope"), nil)
	require.ErrorIs(err, core.ErrUnknownKind)
}
