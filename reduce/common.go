package reduce

import "github.com/vcsolve/vcsolve/vcgraph"

// neighborSet returns v's open neighborhood N(v) as a lookup set.
func neighborSet(g *vcgraph.Graph, v vcgraph.VertexID) map[vcgraph.VertexID]bool {
	edges := g.Vertex(v).Edges()
	set := make(map[vcgraph.VertexID]bool, len(edges))
	for _, u := range edges {
		set[u] = true
	}
	return set
}

// closedNeighborSet returns N[v] = N(v) ∪ {v}.
func closedNeighborSet(g *vcgraph.Graph, v vcgraph.VertexID) map[vcgraph.VertexID]bool {
	set := neighborSet(g, v)
	set[v] = true
	return set
}

// adjacent reports whether u and v are currently joined by an uncovered
// edge, by scanning the smaller of the two adjacency lists.
func adjacent(g *vcgraph.Graph, u, v vcgraph.VertexID) bool {
	scan, target := g.Vertex(u).Edges(), v
	if ev := g.Vertex(v).Edges(); len(ev) < len(scan) {
		scan, target = ev, u
	}
	for _, x := range scan {
		if x == target {
			return true
		}
	}
	return false
}

// subset reports whether every element of a is present in b.
func subset(a, b map[vcgraph.VertexID]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
