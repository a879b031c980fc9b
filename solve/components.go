package solve

import (
	"sort"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// connectedComponents labels the live graph's connected components by plain
// DFS over the uncovered adjacency. Components are returned in ascending
// order of their smallest member id, and each component's own members are
// listed in discovery order, which keeps the split deterministic across
// runs.
func connectedComponents(g *vcgraph.Graph) [][]vcgraph.VertexID {
	ids := append([]vcgraph.VertexID(nil), g.LiveVertices()...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	visited := make(map[vcgraph.VertexID]bool, len(ids))
	var comps [][]vcgraph.VertexID

	for _, start := range ids {
		if visited[start] {
			continue
		}
		var comp []vcgraph.VertexID
		stack := []vcgraph.VertexID{start}
		visited[start] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, w := range g.Vertex(u).Edges() {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// hideVertices removes every id from the active graph, the way a
// component-split evaluation sets aside the components it isn't currently
// considering. Unlike DeleteVertexLogged it bypasses the modification log
// entirely: the caller is responsible for unhiding via unhideEdges itself,
// in the reverse order, which is always possible from the returned slice
// alone without consulting the log.
func hideVertices(g *vcgraph.Graph, ids []vcgraph.VertexID) []vcgraph.EdgeID {
	var hidden []vcgraph.EdgeID
	for _, v := range ids {
		hidden = append(hidden, g.DeleteVertex(v)...)
	}
	return hidden
}

// unhideEdges reverses hideVertices, restoring edges in the opposite order
// they were hidden.
func unhideEdges(g *vcgraph.Graph, edges []vcgraph.EdgeID) {
	for i := len(edges) - 1; i >= 0; i-- {
		g.UnhideEdge(edges[i])
	}
}
