package reduce

import "github.com/vcsolve/vcsolve/vcgraph"

// Domination applies the domination rule to fixpoint: if a live vertex u
// has a neighbor v with N[u] ⊆ N[v], then v dominates u, and v can be
// safely forced into the cover — any cover using u instead can swap it for
// v without growing. Like Degree1, the forced vertex is real, so plain
// AddToCoverLogged bookkeeping is enough; no custom Modification is needed.
func Domination(g *vcgraph.Graph) int {
	forced := 0
	for {
		v, ok := findDominating(g)
		if !ok {
			return forced
		}
		g.AddToCoverLogged(v)
		forced++
	}
}

// findDominating returns a vertex v that dominates one of its neighbors u
// (N[u] ⊆ N[v]). Neighbors are scanned in adjacency order, which is
// deterministic, so repeated runs force the same vertex.
func findDominating(g *vcgraph.Graph) (vcgraph.VertexID, bool) {
	for _, u := range g.LiveVertices() {
		nu := closedNeighborSet(g, u)
		for _, v := range g.Vertex(u).Edges() {
			nv := closedNeighborSet(g, v)
			if subset(nu, nv) {
				return v, true
			}
		}
	}
	return vcgraph.NilVertex, false
}
