// Package vcgraph_test validates the graph kernel's core invariants:
//  1. Degree bucket membership tracks live degree exactly.
//  2. AddToCoverLogged / DeleteVertexLogged round-trip cleanly through a
//     snapshot restore.
//  3. Gadget primitives (CreateEdge/DestroyEdge, StealEdge/RestoreStolenEdge)
//     leave the graph byte-for-byte equivalent after an apply/undo cycle.
package vcgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcsolve/vcsolve/vcgraph"
)

func triangle(t *testing.T) (*vcgraph.Graph, vcgraph.VertexID, vcgraph.VertexID, vcgraph.VertexID) {
	t.Helper()
	g := vcgraph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	c, err := g.AddVertex("c")
	require.NoError(t, err)
	_, err = g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)
	_, err = g.AddEdge(a, c)
	require.NoError(t, err)

	return g, a, b, c
}

func TestDegreeBuckets(t *testing.T) {
	g, a, b, c := triangle(t)

	require.Equal(t, 2, g.Vertex(a).Deg())
	require.Contains(t, g.Degree2(), a)
	require.Contains(t, g.Degree2(), b)
	require.Contains(t, g.Degree2(), c)
	require.Len(t, g.Degree2(), 3)
	require.Empty(t, g.Degree1())
	require.Empty(t, g.Degree3())
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := vcgraph.NewGraph()
	a, err := g.AddVertex("a")
	require.NoError(t, err)
	_, err = g.AddEdge(a, a)
	require.ErrorIs(t, err, vcgraph.ErrSelfLoop)
}

func TestAddToCoverRoundTrip(t *testing.T) {
	g, a, _, _ := triangle(t)

	snap := g.CreateSnapshot()
	g.AddToCoverLogged(a)

	require.Equal(t, 0, g.Vertex(a).Deg())
	require.Equal(t, 2, g.NumVertices()) // only the far edge (b,c) keeps b,c live
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 1, g.CoverSize())

	g.RestoreSnapshot(snap)

	require.Equal(t, 2, g.Vertex(a).Deg())
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, 0, g.CoverSize())
}

func TestDeleteVertexRoundTrip(t *testing.T) {
	g, a, _, _ := triangle(t)

	snap := g.CreateSnapshot()
	g.DeleteVertexLogged(a)

	require.Equal(t, 0, g.Vertex(a).Deg())
	require.Equal(t, 0, g.CoverSize())

	g.RestoreSnapshot(snap)

	require.Equal(t, 2, g.Vertex(a).Deg())
	require.Equal(t, 3, g.NumEdges())
}

func TestNestedSnapshots(t *testing.T) {
	g, a, b, _ := triangle(t)

	outer := g.CreateSnapshot()
	g.AddToCoverLogged(a)

	inner := g.CreateSnapshot()
	g.AddToCoverLogged(b)
	require.Equal(t, 2, g.CoverSize())

	g.RestoreSnapshot(inner)
	require.Equal(t, 1, g.CoverSize())
	require.Equal(t, a, g.VC.V[0])

	g.RestoreSnapshot(outer)
	require.Equal(t, 0, g.CoverSize())
	require.Equal(t, 3, g.NumEdges())
}

func TestGadgetEdgeRoundTrip(t *testing.T) {
	g, a, b, _ := triangle(t)
	before := g.NumEdges()

	gadget := g.NewSyntheticVertex()
	e1 := g.CreateEdge(gadget, a)
	e2 := g.CreateEdge(gadget, b)

	require.Equal(t, before+2, g.NumEdges())
	require.Equal(t, 2, g.Vertex(gadget).Deg())
	require.Equal(t, 3, g.Vertex(a).Deg())

	g.DestroyEdge(e2)
	g.DestroyEdge(e1)

	require.Equal(t, before, g.NumEdges())
	require.Equal(t, 0, g.Vertex(gadget).Deg())
	require.Equal(t, 2, g.Vertex(a).Deg())
	require.Equal(t, 2, g.Vertex(b).Deg())
}

func TestStealEdgeRoundTrip(t *testing.T) {
	g, a, b, c := triangle(t)

	merged := g.NewSyntheticVertex()

	var edgesOfA []vcgraph.EdgeID
	for _, nb := range g.Vertex(a).Edges() {
		edgesOfA = append(edgesOfA, neighborEdges(g, a, nb)...)
	}
	require.NotEmpty(t, edgesOfA)

	for _, e := range edgesOfA {
		g.StealEdge(e, a, merged)
	}
	require.Equal(t, 0, g.Vertex(a).Deg())
	require.Equal(t, 2, g.Vertex(merged).Deg())

	for i := len(edgesOfA) - 1; i >= 0; i-- {
		g.RestoreStolenEdge(edgesOfA[i], merged, a)
	}
	require.Equal(t, 2, g.Vertex(a).Deg())
	require.Equal(t, 0, g.Vertex(merged).Deg())
	require.ElementsMatch(t, []vcgraph.VertexID{b, c}, g.Vertex(a).Edges())
}

// neighborEdges is a small scan helper: the public Vertex API intentionally
// exposes neighbor IDs, not edge IDs, so tests that need edge IDs look them
// up via the graph's edge table instead of widening the production API.
func neighborEdges(g *vcgraph.Graph, v, nb vcgraph.VertexID) []vcgraph.EdgeID {
	var out []vcgraph.EdgeID
	for id := 0; id < g.NumEdgesTotal(); id++ {
		e := g.Edge(vcgraph.EdgeID(id))
		if e == nil || e.Covered() {
			continue
		}
		x, y := e.Ends()
		if (x == v && y == nb) || (x == nb && y == v) {
			out = append(out, e.ID)
		}
	}
	return out
}
