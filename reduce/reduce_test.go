// Package reduce_test exercises each reduction rule against small graphs
// with a hand-computable outcome, and checks that Undo restores the graph
// to its pre-apply state exactly.
package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcsolve/vcsolve/reduce"
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

func path(t *testing.T, n int) (*vcgraph.Graph, []vcgraph.VertexID) {
	t.Helper()
	g := vcgraph.NewGraph()
	ids := make([]vcgraph.VertexID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(string(rune('a' + i)))
		require.NoError(t, err)
		ids[i] = id
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(ids[i], ids[i+1])
		require.NoError(t, err)
	}
	return g, ids
}

func TestDegree1ForcesNeighbor(t *testing.T) {
	// a-b path: both endpoints have degree 1; the rule takes the last
	// vertex in the degree-1 bucket (b) and forces its neighbor a into the
	// cover, which also retires b.
	g, ids := path(t, 2)
	forced := reduce.Degree1(g)
	require.Equal(t, 1, forced)
	require.Equal(t, []vcgraph.VertexID{ids[0]}, g.VC.V)
	require.Equal(t, 0, g.NumVertices())
}

func TestDegree1UndoRoundTrip(t *testing.T) {
	g, _ := path(t, 2)
	snap := g.CreateSnapshot()
	reduce.Degree1(g)
	g.RestoreSnapshot(snap)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
	require.Empty(t, g.VC.V)
}

func TestDegree2FoldTriangleForcesBothNeighbors(t *testing.T) {
	g := vcgraph.NewGraph()
	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	c, _ := g.AddVertex("c")
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(a, c)

	applied, delta := reduce.Degree2Fold(g)
	require.Equal(t, 1, applied)
	require.Equal(t, 0, delta)
	require.ElementsMatch(t, []vcgraph.VertexID{a, b}, g.VC.V)
	require.Equal(t, 0, g.NumVertices())
}

func TestDegree2FoldMergesPathVertex(t *testing.T) {
	// Path a-v-w-x: v and w both have degree 2, and the rule folds the last
	// one in the degree-2 bucket, w. Its neighbors v and x are not
	// adjacent, so the fold applies.
	g := vcgraph.NewGraph()
	a, _ := g.AddVertex("a")
	v, _ := g.AddVertex("v")
	w, _ := g.AddVertex("w")
	x, _ := g.AddVertex("x")
	_, _ = g.AddEdge(a, v)
	_, _ = g.AddEdge(v, w)
	_, _ = g.AddEdge(w, x)

	snap := g.CreateSnapshot()
	applied, delta := reduce.Degree2Fold(g)
	require.Equal(t, 1, applied)
	require.Equal(t, 1, delta)
	// v, w and x merged into one synthetic vertex adjacent to a; the
	// original v-w and w-x edges are gone.
	require.Equal(t, 2, g.NumVertices()) // merged vertex + a
	require.Equal(t, 1, g.NumEdges())

	g.RestoreSnapshot(snap)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
}

func TestDominationForcesDominatingNeighbor(t *testing.T) {
	// Star a-{b,c,d} plus edge b-c: b's closed neighborhood {a,b,c} is a
	// subset of a's closed neighborhood {a,b,c,d}, so a dominates b and
	// is forced. The leftover b-c edge then resolves the same way: c's
	// closed neighborhood {b,c} is dominated by b's, so b is forced,
	// ending at the optimal cover {a,b}.
	g := vcgraph.NewGraph()
	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	c, _ := g.AddVertex("c")
	d, _ := g.AddVertex("d")
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(a, c)
	_, _ = g.AddEdge(a, d)
	_, _ = g.AddEdge(b, c)

	forced := reduce.Domination(g)
	require.Equal(t, 2, forced)
	require.ElementsMatch(t, []vcgraph.VertexID{a, b}, g.VC.V)
	require.Equal(t, 0, g.NumVertices())
}

func TestUnconfinedForcesSingleEdgeEndpoint(t *testing.T) {
	// On a single edge a-b, growing S={a} finds u=b with an empty private
	// neighborhood, so a is unconfined and lands in the cover; b retires
	// with it.
	g, ids := path(t, 2)
	cfg := vcconfig.Default()
	forced := reduce.Unconfined(g, cfg)
	require.Equal(t, 1, forced)
	require.Equal(t, []vcgraph.VertexID{ids[0]}, g.VC.V)
	require.Equal(t, 0, g.NumVertices())
}

func TestDegree3GadgetRewiresAndRestores(t *testing.T) {
	// Star v-{a,b,c} with independent leaves: the gadget replaces v by the
	// path a-b-c (no external neighborhoods to graft), and a restore brings
	// the star back.
	g := vcgraph.NewGraph()
	v, _ := g.AddVertex("v")
	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	c, _ := g.AddVertex("c")
	_, _ = g.AddEdge(v, a)
	_, _ = g.AddEdge(v, b)
	_, _ = g.AddEdge(v, c)

	snap := g.CreateSnapshot()
	applied := reduce.Degree3Independent(g, vcconfig.Default())
	require.Equal(t, 1, applied)
	require.Equal(t, 0, g.Vertex(v).Deg())
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())

	g.RestoreSnapshot(snap)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
	require.Equal(t, 3, g.Vertex(v).Deg())
}

func TestCliqueNeighborhoodEliminatesFunnel(t *testing.T) {
	// Path w-u-v-k: u's neighborhood {w,v} splits into C1={w} (independent)
	// and C2={v} (trivially a clique), so u and v disappear, w inherits
	// v's outside edge to k, and the rule banks one future cover member.
	g := vcgraph.NewGraph()
	w, _ := g.AddVertex("w")
	u, _ := g.AddVertex("u")
	v, _ := g.AddVertex("v")
	k, _ := g.AddVertex("k")
	_, _ = g.AddEdge(w, u)
	_, _ = g.AddEdge(u, v)
	_, _ = g.AddEdge(v, k)

	cfg := vcconfig.Default()
	cfg.CNCheck1Enabled = false

	snap := g.CreateSnapshot()
	applied, delta := reduce.CliqueNeighborhood(g, cfg)
	require.Equal(t, 1, applied)
	require.Equal(t, 1, delta)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())

	g.RestoreSnapshot(snap)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
}

func TestUndeg3RewiresSharedNeighborhood(t *testing.T) {
	// Path a-b-c with two external vertices x1, x2 each adjacent to both a
	// and c: the gadget strips c's edges to x1 and x2 plus {a,b} and {b,c},
	// and plants one synthetic vertex adjacent to a, b, c.
	g := vcgraph.NewGraph()
	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")
	c, _ := g.AddVertex("c")
	x1, _ := g.AddVertex("x1")
	x2, _ := g.AddVertex("x2")
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(b, c)
	_, _ = g.AddEdge(a, x1)
	_, _ = g.AddEdge(c, x1)
	_, _ = g.AddEdge(a, x2)
	_, _ = g.AddEdge(c, x2)

	snap := g.CreateSnapshot()
	applied := reduce.Undeg3(g)
	require.Equal(t, 1, applied)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 5, g.NumEdges())

	g.RestoreSnapshot(snap)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
	require.Equal(t, 2, g.Vertex(b).Deg())
	require.Equal(t, 3, g.Vertex(c).Deg())
}

func TestScheduleReachesFixpointOnPath(t *testing.T) {
	g, _ := path(t, 5)
	cfg := vcconfig.Default()
	res := reduce.Schedule(g, cfg)
	require.GreaterOrEqual(t, res.Applied, 1)
	require.Equal(t, 0, g.NumVertices())
}
