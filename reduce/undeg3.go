package reduce

import "github.com/vcsolve/vcsolve/vcgraph"

// minUndeg3Weight gates when the "undeg-3" gadget fires: the number of
// distinct external vertices shared between a, b, and c must reach this
// threshold before the rewiring pays off.
const minUndeg3Weight = 2

// Undeg3 applies the "undeg-3" gadget to fixpoint. For a vertex b and two
// of its non-adjacent neighbors a, c, provided every external neighbor of
// {a,b,c} is adjacent to at least two of them, one edge from each external
// neighbor into {a,b,c} is removed, the edges {a,b} and {b,c} are
// removed, and one new vertex adjacent to a, b, and c takes over the
// pressure those edges exerted. The cover size is unchanged; TranslateVC
// swaps the synthetic vertex back out.
func Undeg3(g *vcgraph.Graph) int {
	applied := 0
	for {
		b, a, c, ok := findUndeg3(g)
		if !ok {
			return applied
		}
		applyUndeg3(g, b, a, c)
		applied++
	}
}

// findUndeg3 scans every vertex b and every unordered pair of b's
// neighbors, keeping the pair with the highest shared-neighbor weight.
func findUndeg3(g *vcgraph.Graph) (b, a, c vcgraph.VertexID, ok bool) {
	for _, bb := range g.LiveVertices() {
		nb := g.Vertex(bb).Edges()
		var bestA, bestC vcgraph.VertexID
		best := 0
		for i := 0; i < len(nb); i++ {
			for j := i + 1; j < len(nb); j++ {
				aa, cc := nb[i], nb[j]
				if adjacent(g, aa, cc) {
					continue
				}
				if w := undeg3Weight(g, aa, bb, cc); w > best {
					best = w
					bestA, bestC = aa, cc
				}
			}
		}
		if best >= minUndeg3Weight {
			return bb, bestA, bestC, true
		}
	}
	return vcgraph.NilVertex, vcgraph.NilVertex, vcgraph.NilVertex, false
}

// undeg3Weight returns the number of distinct external vertices adjacent to
// two or more of {a,b,c}, or 0 when some external neighbor touches only one
// of them (the gadget would leave that vertex's edge unaccounted for, so
// the pair is infeasible).
func undeg3Weight(g *vcgraph.Graph, a, b, c vcgraph.VertexID) int {
	count := make(map[vcgraph.VertexID]int)
	for _, center := range [3]vcgraph.VertexID{a, b, c} {
		for _, x := range g.Vertex(center).Edges() {
			if x != a && x != b && x != c {
				count[x]++
			}
		}
	}
	shared := 0
	for _, n := range count {
		if n == 1 {
			return 0
		}
		shared++
	}
	return shared
}

type undeg3Mod struct {
	v, a, b, c  vcgraph.VertexID
	newEdges    []vcgraph.EdgeID
	hiddenEdges []vcgraph.EdgeID
}

// applyUndeg3 removes, for each external neighbor u of {a,b,c}, exactly one
// of u's edges into the triple: the edge from b when u touches all three or
// misses a, from c when u misses b, from a when u misses c. The edges
// {a,b} and {b,c} go too (when present), and the replacement vertex v
// arrives adjacent to a, b, and c.
func applyUndeg3(g *vcgraph.Graph, b, a, c vcgraph.VertexID) {
	mod := &undeg3Mod{a: a, b: b, c: c}

	adjA := neighborSet(g, a)
	adjB := neighborSet(g, b)
	adjC := neighborSet(g, c)

	external := make(map[vcgraph.VertexID]bool)
	for _, center := range [3]vcgraph.VertexID{a, b, c} {
		for _, x := range g.Vertex(center).Edges() {
			if x != a && x != b && x != c {
				external[x] = true
			}
		}
	}

	hide := func(from, to vcgraph.VertexID) {
		eid, found := g.EdgeTo(from, to)
		if found {
			g.HideEdge(eid)
			mod.hiddenEdges = append(mod.hiddenEdges, eid)
		}
	}

	for _, u := range sortedKeys(external) {
		inA, inB, inC := adjA[u], adjB[u], adjC[u]
		switch {
		case inA && inB && inC:
			hide(b, u)
		case !inA:
			hide(b, u)
		case !inB:
			hide(c, u)
		default: // !inC
			hide(a, u)
		}
	}

	hide(a, b)
	hide(b, c)

	v := g.NewSyntheticVertex()
	mod.v = v
	mod.newEdges = append(mod.newEdges, g.CreateEdge(v, a), g.CreateEdge(v, b), g.CreateEdge(v, c))

	g.PushModification(mod)
}

func (m *undeg3Mod) Undo(g *vcgraph.Graph) {
	for i := len(m.newEdges) - 1; i >= 0; i-- {
		g.DestroyEdge(m.newEdges[i])
	}
	for i := len(m.hiddenEdges) - 1; i >= 0; i-- {
		g.UnhideEdge(m.hiddenEdges[i])
	}
}

// TranslateVC maps a cover of the gadget graph back to one of the same
// size, keyed on how many of {a,b,c} joined v in the reduced cover.
// Whenever the synthetic v is in the cover it swaps for whichever real
// vertex the removed edges still need: the missing member of {a,b,c} when
// two of them are present, the counterpart of the lone present member (a
// present needs c, b needs a, c needs b), or b itself when v stood alone.
// Without v, the reduced cover holds all of a, b, c and already covers
// every removed edge.
func (m *undeg3Mod) TranslateVC(g *vcgraph.Graph) {
	if !g.InCover(m.v) {
		return
	}

	inA, inB, inC := g.InCover(m.a), g.InCover(m.b), g.InCover(m.c)
	num := 0
	for _, in := range [3]bool{inA, inB, inC} {
		if in {
			num++
		}
	}

	switch num {
	case 3:
		g.ReplaceCoverMember(m.v)
	case 2:
		switch {
		case !inA:
			g.ReplaceCoverMember(m.v, m.a)
		case !inB:
			g.ReplaceCoverMember(m.v, m.b)
		default:
			g.ReplaceCoverMember(m.v, m.c)
		}
	case 1:
		switch {
		case inA:
			g.ReplaceCoverMember(m.v, m.c)
		case inB:
			g.ReplaceCoverMember(m.v, m.a)
		default:
			g.ReplaceCoverMember(m.v, m.b)
		}
	default:
		g.ReplaceCoverMember(m.v, m.b)
	}
}
