package reduce

import "github.com/vcsolve/vcsolve/vcgraph"

// Degree1 applies the degree-1 rule to fixpoint: every live vertex of
// degree 1 forces its sole neighbor into the cover. It reports how many
// vertices were forced.
//
// No Modification beyond vcgraph.AddToCoverLogged's own is needed here: the
// forced neighbor is a genuine answer vertex, not a synthetic stand-in, so
// vcgraph's own bookkeeping undoes and translates it correctly on its own.
func Degree1(g *vcgraph.Graph) int {
	forced := 0
	for len(g.Degree1()) > 0 {
		bucket := g.Degree1()
		v := bucket[len(bucket)-1]
		u := g.Vertex(v).Edges()[0]
		g.AddToCoverLogged(u)
		forced++
	}
	return forced
}
