package bound

import "github.com/vcsolve/vcsolve/vcgraph"

// role identifies one of the two roles (left/right) a vertex plays in the
// double cover's implicit flow network.
type role struct {
	v    vcgraph.VertexID
	left bool
}

type sccRoot struct {
	v        vcgraph.VertexID
	left     bool
	assigned bool
}

// tighten is Kosaraju's algorithm run to a fixpoint over the double cover's
// residual digraph: an SCC all of whose members agree (all left roles
// forced to 0, all right roles forced to 1) can be resolved integrally:
// its left-role vertices are deleted, its right-role vertices join the
// cover, and the bound drops by the number of vertices covered. Because resolving one SCC can change the
// graph underneath later ones, the whole decomposition restarts from
// scratch after every round that found something; it stops once a full
// round finds nothing left to tighten.
func (dc *doubleCover) tighten(g *vcgraph.Graph, lowerBound *int64) {
	for {
		n := g.NumVerticesTotal()
		visited := make([][2]bool, n)
		rootOf := make([][2]sccRoot, n)
		sccMembers := make(map[vcgraph.VertexID][2][]role)

		var order []role
		for _, v := range g.LiveVertices() {
			order = dc.visit(g, v, false, visited, order)
			order = dc.visit(g, v, true, visited, order)
		}

		for _, r := range order {
			dc.assign(g, r.v, r.v, r.left, r.left, rootOf, sccMembers)
		}

		ran := false
		live := append([]vcgraph.VertexID(nil), g.LiveVertices()...)
		for _, v := range live {
			if g.Vertex(v) == nil || g.Vertex(v).Deg() == 0 {
				continue
			}
			if rootOf[v][0].assigned && rootOf[v][0].v == v && rootOf[v][0].left {
				slot := sccMembers[v]
				if dc.checkSCC(g, v, true, slot[0], rootOf, lowerBound) {
					ran = true
				}
			}
			if rootOf[v][1].assigned && rootOf[v][1].v == v && !rootOf[v][1].left {
				slot := sccMembers[v]
				if dc.checkSCC(g, v, false, slot[1], rootOf, lowerBound) {
					ran = true
				}
			}
		}

		if !ran {
			return
		}
	}
}

// visit is Kosaraju's first pass: left v points to the right copy of every
// neighbor (any original edge can carry LP flow); right v points to the
// left copy of its matched partner only (the reverse of the matching
// edge). The finish order is accumulated by prepending.
func (dc *doubleCover) visit(g *vcgraph.Graph, v vcgraph.VertexID, left bool, visited [][2]bool, order []role) []role {
	idx := 0
	if !left {
		idx = 1
	}
	if visited[v][idx] {
		return order
	}
	visited[v][idx] = true

	if left {
		for _, u := range g.Vertex(v).Edges() {
			order = dc.visit(g, u, false, visited, order)
		}
	} else if p := dc.pairV[v]; p != vcgraph.NilVertex {
		order = dc.visit(g, p, true, visited, order)
	}

	return append([]role{{v: v, left: left}}, order...)
}

// assign is Kosaraju's second pass, run over the transpose of the graph
// visit walked, in reverse finish order: it paints every role reachable
// from a not-yet-assigned root with that root's identity.
func (dc *doubleCover) assign(
	g *vcgraph.Graph,
	v, root vcgraph.VertexID,
	left, rootLeft bool,
	rootOf [][2]sccRoot,
	members map[vcgraph.VertexID][2][]role,
) {
	idx := 0
	if !left {
		idx = 1
	}
	if rootOf[v][idx].assigned {
		return
	}
	rootOf[v][idx] = sccRoot{v: root, left: rootLeft, assigned: true}

	j := 0
	if !rootLeft {
		j = 1
	}
	slot := members[root]
	slot[j] = append(slot[j], role{v: v, left: left})
	members[root] = slot

	if left {
		if p := dc.pairU[v]; p != vcgraph.NilVertex {
			dc.assign(g, p, root, false, rootLeft, rootOf, members)
		}
	} else {
		for _, u := range g.Vertex(v).Edges() {
			dc.assign(g, u, root, true, rootLeft, rootOf, members)
		}
	}
}

// checkSCC decides whether the SCC rooted at (root, left) can be safely
// resolved: every member's two roles must disagree (no vertex whose left
// and right role both collapsed into this one SCC) and every edge leaving
// the SCC, in the direction visit walked, must stay inside it. If so, every
// left member is deleted (forced out of the cover) and every right member
// is added to it (forced in), and lowerBound is adjusted to account for the
// members that are no longer "halves".
func (dc *doubleCover) checkSCC(g *vcgraph.Graph, root vcgraph.VertexID, left bool, scc []role, rootOf [][2]sccRoot, lowerBound *int64) bool {
	if len(scc) <= 1 {
		return false
	}

	for _, m := range scc {
		v := m.v
		if g.Vertex(v) == nil || g.Vertex(v).Deg() == 0 {
			return false
		}
		r0, r1 := rootOf[v][0], rootOf[v][1]
		if r0.assigned && r1.assigned && r0.v == r1.v && r0.left == r1.left {
			return false
		}

		if m.left {
			for _, u := range g.Vertex(v).Edges() {
				ru := rootOf[u][1]
				if !ru.assigned || ru.v != root || ru.left != left {
					return false
				}
			}
		} else if p := dc.pairV[v]; p != vcgraph.NilVertex {
			rp := rootOf[p][0]
			if !rp.assigned || rp.v != root || rp.left != left {
				return false
			}
		}
	}

	for _, m := range scc {
		if m.left {
			g.DeleteVertexLogged(m.v)
		} else {
			g.AddToCoverLogged(m.v)
			*lowerBound--
		}
	}

	return true
}
