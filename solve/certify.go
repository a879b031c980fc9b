package solve

import "github.com/vcsolve/vcsolve/vcgraph"

// BruteForceMinCover enumerates all 2^|V| vertex subsets of g's current
// live vertices and returns the size of the smallest one covering every
// live edge. It exists so property tests can certify Solve against an
// answer computed by exhaustion, and must only be called on graphs small
// enough to afford it; callers gate on vertex count (around 20 is the
// practical ceiling).
func BruteForceMinCover(g *vcgraph.Graph) int {
	verts := g.LiveVertices()
	n := len(verts)
	index := make(map[vcgraph.VertexID]int, n)
	for i, v := range verts {
		index[v] = i
	}

	type pair struct{ a, b int }
	var edges []pair
	seen := make(map[pair]bool)
	for _, v := range verts {
		for _, u := range g.Vertex(v).Edges() {
			a, b := index[v], index[u]
			if a > b {
				a, b = b, a
			}
			p := pair{a, b}
			if !seen[p] {
				seen[p] = true
				edges = append(edges, p)
			}
		}
	}

	best := n
	for mask := 0; mask < (1 << uint(n)); mask++ {
		if popcount(mask) >= best {
			continue
		}
		covers := true
		for _, e := range edges {
			if mask&(1<<uint(e.a)) == 0 && mask&(1<<uint(e.b)) == 0 {
				covers = false
				break
			}
		}
		if covers {
			best = popcount(mask)
		}
	}
	return best
}

func popcount(mask int) int {
	c := 0
	for mask != 0 {
		c += mask & 1
		mask >>= 1
	}
	return c
}
