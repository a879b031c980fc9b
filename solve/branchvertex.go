package solve

import "github.com/vcsolve/vcsolve/vcgraph"

// pickBranchVertex selects the highest-degree live vertex, breaking ties
// by ascending id for deterministic, reproducible branch order.
func pickBranchVertex(g *vcgraph.Graph) vcgraph.VertexID {
	best := vcgraph.NilVertex
	bestDeg := -1
	for _, v := range g.LiveVertices() {
		deg := g.Vertex(v).Deg()
		if deg > bestDeg || (deg == bestDeg && v < best) {
			bestDeg = deg
			best = v
		}
	}
	return best
}

// pruneKernel applies the kernel-size cutoff: with k = u - size - 1 (any
// improving solution uses at most k more vertices), prune when the branch
// vertex's degree already fits within k and the remaining instance exceeds
// the classical kernel size for parameter k, since no cover of at most k
// vertices can exist above that size.
func pruneKernel(g *vcgraph.Graph, v vcgraph.VertexID, size, upperBound int) bool {
	k := upperBound - size - 1
	deg := g.Vertex(v).Deg()
	if deg > k {
		return false
	}
	return g.NumVertices() > k*k+k || g.NumEdges() > k*k
}
