package graphgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcsolve/vcsolve/graphgen"
)

func TestShapesHaveExpectedSizes(t *testing.T) {
	g := graphgen.Cycle(6)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())

	g = graphgen.Complete(4)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())

	g = graphgen.Star(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())

	g = graphgen.Path(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())

	g = graphgen.Wheel(5)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 8, g.NumEdges())

	g = graphgen.Bipartite(2, 3)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
}

func TestRandomSparseIsDeterministicUnderFixedSeed(t *testing.T) {
	a := graphgen.RandomSparse(12, 0.4, graphgen.WithSeed(7))
	b := graphgen.RandomSparse(12, 0.4, graphgen.WithSeed(7))
	require.Equal(t, a.NumEdges(), b.NumEdges())
}

func TestRandomRegularRespectsTargetDegree(t *testing.T) {
	g := graphgen.RandomRegular(10, 3, graphgen.WithSeed(3))
	for _, v := range g.LiveVertices() {
		require.LessOrEqual(t, g.Vertex(v).Deg(), 3)
	}
}
