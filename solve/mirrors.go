package solve

import (
	"sort"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// adjacent reports whether u and v are currently joined by a live edge.
// Duplicated from the (unexported) helper of the same name in package
// reduce: both packages need it, and vcgraph intentionally exposes no
// general-purpose adjacency test of its own.
func adjacent(g *vcgraph.Graph, u, v vcgraph.VertexID) bool {
	for _, x := range g.Vertex(u).Edges() {
		if x == v {
			return true
		}
	}
	return false
}

func isClique(g *vcgraph.Graph, members []vcgraph.VertexID) bool {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !adjacent(g, members[i], members[j]) {
				return false
			}
		}
	}
	return true
}

// findMirrors returns every mirror of v: a vertex m at distance exactly 2
// from v such that N(v)\N(m) induces a clique. A mirror can always join v
// in the "v into cover" branch without losing an optimal solution. Results
// are sorted by ascending id for deterministic branch ordering.
func findMirrors(g *vcgraph.Graph, v vcgraph.VertexID) []vcgraph.VertexID {
	nv := g.Vertex(v).Edges()
	nvSet := make(map[vcgraph.VertexID]bool, len(nv))
	for _, x := range nv {
		nvSet[x] = true
	}

	dist2 := make(map[vcgraph.VertexID]bool)
	for _, u := range nv {
		for _, w := range g.Vertex(u).Edges() {
			if w != v && !nvSet[w] {
				dist2[w] = true
			}
		}
	}

	candidates := make([]vcgraph.VertexID, 0, len(dist2))
	for m := range dist2 {
		candidates = append(candidates, m)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var mirrors []vcgraph.VertexID
	for _, m := range candidates {
		nm := g.Vertex(m).Edges()
		nmSet := make(map[vcgraph.VertexID]bool, len(nm))
		for _, x := range nm {
			nmSet[x] = true
		}
		var diff []vcgraph.VertexID
		for _, x := range nv {
			if !nmSet[x] {
				diff = append(diff, x)
			}
		}
		if isClique(g, diff) {
			mirrors = append(mirrors, m)
		}
	}
	return mirrors
}
