package reduce

import "github.com/vcsolve/vcsolve/vcgraph"

// Degree2Fold applies the degree-2 rule to fixpoint. For each live
// degree-2 vertex v with neighbors u, w:
// if u and w are already adjacent, the triangle v-u-w is resolved directly
// by forcing both u and w into the cover (v retires as a side effect, with
// no synthetic vertex needed); otherwise u, v, and w are folded into one
// synthetic vertex m whose neighborhood is N(u) ∪ N(w) \ {v}.
//
// The second case always costs exactly one guaranteed future cover member,
// which has not yet materialized into any real vertex at fold time (m
// stands in for it during the rest of the search). Degree2Fold reports
// that count separately as sizeDelta so the branch driver can add it to
// its running cover-size accounting without vcgraph itself needing to
// understand fold semantics.
func Degree2Fold(g *vcgraph.Graph) (applied, sizeDelta int) {
	for len(g.Degree2()) > 0 {
		bucket := g.Degree2()
		v := bucket[len(bucket)-1]
		nb := g.Vertex(v).Edges()
		u, w := nb[0], nb[1]

		if adjacent(g, u, w) {
			g.AddToCoverLogged(u)
			g.AddToCoverLogged(w)
		} else {
			foldTriple(g, v, u, w)
			sizeDelta++
		}
		applied++
	}
	return applied, sizeDelta
}

// deg2FoldMod is the Modification a single non-triangle fold pushes.
type deg2FoldMod struct {
	v, u, w vcgraph.VertexID
	m       vcgraph.VertexID

	uvEdge, wvEdge vcgraph.EdgeID
	stolenFromU    []vcgraph.EdgeID
	stolenFromW    []vcgraph.EdgeID
	dupHidden      []vcgraph.EdgeID
}

func foldTriple(g *vcgraph.Graph, v, u, w vcgraph.VertexID) {
	m := g.NewSyntheticVertex()
	mod := &deg2FoldMod{v: v, u: u, w: w, m: m}

	mNeighbors := make(map[vcgraph.VertexID]bool)

	for _, x := range g.Vertex(u).Edges() {
		if x == v {
			continue
		}
		eid, _ := g.EdgeTo(u, x)
		g.StealEdge(eid, u, m)
		mod.stolenFromU = append(mod.stolenFromU, eid)
		mNeighbors[x] = true
	}

	for _, y := range g.Vertex(w).Edges() {
		if y == v {
			continue
		}
		eid, _ := g.EdgeTo(w, y)
		if mNeighbors[y] {
			g.HideEdge(eid)
			mod.dupHidden = append(mod.dupHidden, eid)
			continue
		}
		g.StealEdge(eid, w, m)
		mod.stolenFromW = append(mod.stolenFromW, eid)
		mNeighbors[y] = true
	}

	mod.uvEdge, _ = g.EdgeTo(v, u)
	mod.wvEdge, _ = g.EdgeTo(v, w)
	g.HideEdge(mod.uvEdge)
	g.HideEdge(mod.wvEdge)

	g.SetMergeTag(m, mod)
	g.PushModification(mod)
}

func (m *deg2FoldMod) Undo(g *vcgraph.Graph) {
	g.UnhideEdge(m.wvEdge)
	g.UnhideEdge(m.uvEdge)

	for i := len(m.dupHidden) - 1; i >= 0; i-- {
		g.UnhideEdge(m.dupHidden[i])
	}
	for i := len(m.stolenFromW) - 1; i >= 0; i-- {
		g.RestoreStolenEdge(m.stolenFromW[i], m.m, m.w)
	}
	for i := len(m.stolenFromU) - 1; i >= 0; i-- {
		g.RestoreStolenEdge(m.stolenFromU[i], m.m, m.u)
	}
}

// TranslateVC materializes the fold's promised cover member: if m ended up
// in the final cover, u and w cover everything m did (and v needs nothing,
// since v's two edges go to u and w); otherwise v alone must be in the
// cover (it is the cheaper of the two ways to cover v's edges, and the
// fold's whole point was guaranteeing exactly one of these two outcomes).
func (m *deg2FoldMod) TranslateVC(g *vcgraph.Graph) {
	if g.InCover(m.m) {
		g.ReplaceCoverMember(m.m, m.u, m.w)
	} else {
		g.AppendCoverMember(m.v)
	}
}
