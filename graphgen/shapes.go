package graphgen

import (
	"fmt"

	"github.com/vcsolve/vcsolve/vcgraph"
)

func namedVertices(g *vcgraph.Graph, n int) []vcgraph.VertexID {
	ids := make([]vcgraph.VertexID, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(fmt.Sprintf("v%d", i))
		if err != nil {
			panic(err) // generated names are always unique and non-empty
		}
		ids[i] = id
	}
	return ids
}

// Path builds a simple path on n vertices: v0-v1-...-v(n-1).
func Path(n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	for i := 0; i+1 < n; i++ {
		mustEdge(g, ids[i], ids[i+1])
	}
	return g
}

// Cycle builds a simple cycle on n vertices (n >= 3).
func Cycle(n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	for i := 0; i < n; i++ {
		mustEdge(g, ids[i], ids[(i+1)%n])
	}
	return g
}

// Complete builds the complete graph K_n.
func Complete(n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustEdge(g, ids[i], ids[j])
		}
	}
	return g
}

// Star builds K_{1,n-1}: vertex 0 is the hub, adjacent to every other
// vertex, which are otherwise independent.
func Star(n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	for i := 1; i < n; i++ {
		mustEdge(g, ids[0], ids[i])
	}
	return g
}

// Wheel builds a wheel graph: a hub adjacent to every vertex of an
// (n-1)-cycle.
func Wheel(n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	rim := ids[1:]
	for i := range rim {
		mustEdge(g, rim[i], rim[(i+1)%len(rim)])
		mustEdge(g, ids[0], rim[i])
	}
	return g
}

// Bipartite builds a complete bipartite graph K_{m,n}.
func Bipartite(m, n int) *vcgraph.Graph {
	g := vcgraph.NewGraph()
	left := make([]vcgraph.VertexID, m)
	for i := 0; i < m; i++ {
		id, _ := g.AddVertex(fmt.Sprintf("l%d", i))
		left[i] = id
	}
	right := make([]vcgraph.VertexID, n)
	for i := 0; i < n; i++ {
		id, _ := g.AddVertex(fmt.Sprintf("r%d", i))
		right[i] = id
	}
	for _, a := range left {
		for _, b := range right {
			mustEdge(g, a, b)
		}
	}
	return g
}

func mustEdge(g *vcgraph.Graph, a, b vcgraph.VertexID) {
	if _, err := g.AddEdge(a, b); err != nil {
		panic(err) // generators never request a==b
	}
}
