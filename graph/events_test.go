package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kindgraph/kindgraph/core"
	"github.com/kindgraph/kindgraph/graph"
)

func TestObserver_EmissionOrder(t *testing.T) {
	require := require.New(t)

	var events []graph.Event
	g, err := graph.NewSimple(graph.WithObserver(func(ev graph.Event) {
		events = append(events, ev)
	}))
	require.NoError(err)

	require.NoError(g.AddVertex("A"))
	require.NoError(g.AddVertex("A")) // no-op, no event
	require.NoError(g.AddVertex("B"))
	require.NoError(g.AddEdge("A", "B", 1))
	require.NoError(g.RemoveEdge("A", "B"))
	require.NoError(g.RemoveVertex("B"))

	require.Len(events, 5)
	require.Equal(graph.VertexAdded, events[0].Op)
	require.Equal("A", events[0].Source)
	require.Equal(graph.VertexAdded, events[1].Op)
	require.Equal(graph.EdgeAdded, events[2].Op)
	require.Equal("A", events[2].Source)
	require.Equal("B", events[2].Target)
	require.Equal(graph.EdgeRemoved, events[3].Op)
	require.Equal(graph.VertexRemoved, events[4].Op)
}

func TestObserver_FailedMutationEmitsNothing(t *testing.T) {
	require := require.New(t)

	count := 0
	g, err := graph.NewSimple(graph.WithObserver(func(graph.Event) { count++ }))
	require.NoError(err)

	require.NoError(g.AddVertex("A"))
	require.Error(g.AddEdge("A", "Z", 1))
	require.Error(g.AddEdge("A", "A", 1))
	require.Equal(1, count, "only the vertex insert may emit")
}

func TestObserver_HyperedgeEvents(t *testing.T) {
	require := require.New(t)

	var ops []graph.EventOp
	g, err := graph.NewHyper(graph.WithObserver(func(ev graph.Event) {
		ops = append(ops, ev.Op)
	}))
	require.NoError(err)

	require.NoError(g.AddVertex("A"))
	require.NoError(g.AddVertex("B"))
	hid, err := g.AddHyperedge([]string{"A", "B"}, 1, nil)
	require.NoError(err)
	require.NoError(g.RemoveHyperedge(hid))

	require.Equal([]graph.EventOp{
		graph.VertexAdded,
		graph.VertexAdded,
		graph.HyperedgeAdded,
		graph.HyperedgeRemoved,
	}, ops)
}

func TestObserver_MultipleObservers(t *testing.T) {
	require := require.New(t)

	first, second := 0, 0
	g, err := graph.NewSimple(
		graph.WithObserver(func(graph.Event) { first++ }),
		graph.WithObserver(func(graph.Event) { second++ }),
	)
	require.NoError(err)

	require.NoError(g.AddVertex("A"))
	require.Equal(1, first)
	require.Equal(1, second)
}

func TestConvertRepresentation_RoundTrip(t *testing.T) {
	require := require.New(t)

	var ops []graph.EventOp
	g, err := graph.NewSimple(graph.WithObserver(func(ev graph.Event) { ops = append(ops, ev.Op) }))
	require.NoError(err)

	addVertices(t, g, "A", "B", "C")
	require.NoError(g.AddEdge("A", "B", 4))
	require.NoError(g.AddEdge("B", "C", 1))

	for _, target := range []core.RepKind{core.RepAdjacencyMatrix, core.RepEdgeList, core.RepAdjacencyList} {
		require.NoError(g.ConvertRepresentation(target))
		require.Equal(target, g.Representation())
		require.Equal(3, g.VertexCount())
		require.Equal(2, g.EdgeCount())
		require.True(g.HasEdge("B", "A"))

		e, err := g.Edge("A", "B")
		require.NoError(err)
		require.Equal(4.0, e.Weight, "weights survive conversion")
	}

	require.Equal(graph.RepresentationChanged, ops[len(ops)-1])

	require.ErrorIs(g.ConvertRepresentation(core.RepMultiList), graph.ErrBadRepresentation)
	require.Equal(core.RepAdjacencyList, g.Representation(), "failed conversion must not swap the store")
}
