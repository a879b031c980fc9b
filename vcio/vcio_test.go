package vcio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcsolve/vcsolve/vcio"
)

func TestParseIgnoresCommentsAndProblemLine(t *testing.T) {
	input := "c a comment with several words\np td 3\na b\nb c\n"
	g, n, err := vcio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestParseTreatsTwoTokenCLineAsEdge(t *testing.T) {
	// "c" is the hub vertex name here, so every edge line happens to
	// start with the token "c" without being a comment.
	input := "p td 5\nc a\nc b\nc d\nc e\n"
	g, _, err := vcio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())
	hub, ok := g.VertexByName("c")
	require.True(t, ok)
	require.Equal(t, 4, g.Vertex(hub).Deg())
}

func TestParseDropsDuplicateEdges(t *testing.T) {
	input := "p td 2\na b\nb a\na b\n"
	g, _, err := vcio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
}

func TestParseSelfLoopSpawnsCloneVertex(t *testing.T) {
	input := "p td 1\nx x\n"
	g, _, err := vcio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
	x, ok := g.VertexByName("x")
	require.True(t, ok)
	require.Equal(t, 1, g.Vertex(x).Deg())
}

func TestParseStripsTrailingCR(t *testing.T) {
	input := "p td 2\r\na b\r\n"
	g, _, err := vcio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.NumVertices())
	require.Equal(t, 1, g.NumEdges())
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, _, err := vcio.Parse(strings.NewReader("p td 2\na b c\n"))
	require.ErrorIs(t, err, vcio.ErrMalformedEdgeLine)
}

func TestWriteCoverFormat(t *testing.T) {
	g, _, err := vcio.Parse(strings.NewReader("p td 3\na b\nb c\nc a\n"))
	require.NoError(t, err)
	a, _ := g.VertexByName("a")
	c, _ := g.VertexByName("c")
	g.AddToCoverLogged(a)
	g.AddToCoverLogged(c)

	var buf bytes.Buffer
	require.NoError(t, vcio.WriteCover(&buf, g, 3, 7, 2))

	out := buf.String()
	require.Contains(t, out, "s vc 3 2\n")
	require.Contains(t, out, "a\n")
	require.Contains(t, out, "c\n")
	require.Contains(t, out, "c recursive steps: 7\n")
}
