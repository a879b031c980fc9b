package bound

import (
	"math"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// infinity is the BFS layer value for unreached vertices. The NIL sentinel
// pseudo-vertex's own distance is tracked as an ordinary variable alongside
// the per-vertex slices (distNil) rather than as a real vertex.
const infinity = math.MaxInt32

// LPBound computes the classic LP-relaxation lower bound for a vertex
// cover, tightened by a strongly-connected-components pass. It is not a
// pure function: every vertex the relaxation can decide outright (weight 0
// or 1) is actually deleted from, or added to the cover of, g, and the
// return value covers only the half vertices that remain — callers pick up
// the forced weight-1 vertices through g.CoverSize, never through the
// returned bound. Callers evaluating this as a bound at a branch node must
// snapshot g first and restore once they are done with the bound.
//
// cutoff gates the cost of the underlying matching computation: when
// sqrt(|V|)*|E| exceeds it, LPBound returns 0 without touching g
// (configuration key LP_BOUND_CUTOFF).
func LPBound(g *vcgraph.Graph, cutoff float64) int64 {
	if !feasible(g, cutoff) {
		return 0
	}

	dc := newDoubleCover(g)
	g.AddObserver(dc)
	defer g.RemoveObserver(dc)

	dc.match()
	dc.buildCoverFlags()

	var halves int64
	live := append([]vcgraph.VertexID(nil), g.LiveVertices()...)
	for _, v := range live {
		left, right := dc.cover0[v], dc.cover1[v]
		switch {
		case !left && !right:
			g.DeleteVertexLogged(v)
		case left && right:
			g.AddToCoverLogged(v)
		default:
			halves++
		}
	}

	lowerBound := (halves + 1) / 2

	dc.tighten(g, &lowerBound)

	return lowerBound
}

func feasible(g *vcgraph.Graph, cutoff float64) bool {
	val := math.Sqrt(float64(g.NumVertices())) * float64(g.NumEdges())
	return val <= cutoff
}

// doubleCover is the Hopcroft-Karp matching state over a graph's "double
// cover": every live vertex plays a left role and a right role of the same
// bipartite instance, left-u adjacent to right-v iff u,v are adjacent in
// the underlying graph. A maximum matching here, read through Koenig's
// theorem, gives the {0, 1/2, 1} assignment the LP relaxation would pick.
type doubleCover struct {
	g *vcgraph.Graph

	pairU, pairV []vcgraph.VertexID // indexed by VertexID; NilVertex if unmatched
	dist         []int
	alternating  []bool
	cover0       []bool // left-role in the bipartite vertex cover
	cover1       []bool // right-role in the bipartite vertex cover
	distNil      int
}

func newDoubleCover(g *vcgraph.Graph) *doubleCover {
	n := g.NumVerticesTotal()
	dc := &doubleCover{
		g:           g,
		pairU:       make([]vcgraph.VertexID, n),
		pairV:       make([]vcgraph.VertexID, n),
		dist:        make([]int, n),
		alternating: make([]bool, n),
		cover0:      make([]bool, n),
		cover1:      make([]bool, n),
	}
	for i := range dc.pairU {
		dc.pairU[i] = vcgraph.NilVertex
		dc.pairV[i] = vcgraph.NilVertex
	}
	return dc
}

func (dc *doubleCover) distOf(v vcgraph.VertexID) int {
	if v == vcgraph.NilVertex {
		return dc.distNil
	}
	return dc.dist[v]
}

func (dc *doubleCover) setDist(v vcgraph.VertexID, d int) {
	if v == vcgraph.NilVertex {
		dc.distNil = d
		return
	}
	dc.dist[v] = d
}

// match runs Hopcroft-Karp to exhaustion.
func (dc *doubleCover) match() {
	for dc.bfs() {
		for _, u := range dc.g.LiveVertices() {
			if dc.pairU[u] == vcgraph.NilVertex {
				dc.dfs(u)
			}
		}
	}
}

func (dc *doubleCover) bfs() bool {
	var queue []vcgraph.VertexID
	for _, u := range dc.g.LiveVertices() {
		dc.alternating[u] = false
		dc.cover0[u] = false
		dc.cover1[u] = false
		if dc.pairU[u] == vcgraph.NilVertex {
			dc.setDist(u, 0)
			queue = append(queue, u)
		} else {
			dc.setDist(u, infinity)
		}
	}
	dc.distNil = infinity

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if dc.distOf(u) >= dc.distNil {
			continue
		}
		for _, v := range dc.g.Vertex(u).Edges() {
			if v != dc.pairU[u] {
				dc.alternating[v] = true
			}
			p := dc.pairV[v]
			if dc.distOf(p) == infinity {
				dc.setDist(p, dc.distOf(u)+1)
				if p != vcgraph.NilVertex {
					queue = append(queue, p)
				}
			}
		}
	}
	return dc.distNil != infinity
}

func (dc *doubleCover) dfs(u vcgraph.VertexID) bool {
	if u == vcgraph.NilVertex {
		return true
	}
	for _, v := range dc.g.Vertex(u).Edges() {
		if dc.distOf(dc.pairV[v]) == dc.distOf(u)+1 {
			if dc.dfs(dc.pairV[v]) {
				dc.pairV[v] = u
				dc.pairU[u] = v
				return true
			}
		}
	}
	dc.setDist(u, infinity)
	return false
}

// buildCoverFlags reads the Koenig vertex cover off the finished matching,
// per Diestel's construction: right roles reachable by an alternating path
// from an exposed left vertex go into the cover; otherwise, the left role
// of the matched partner does.
func (dc *doubleCover) buildCoverFlags() {
	for _, v := range dc.g.LiveVertices() {
		if dc.alternating[v] {
			dc.cover1[v] = true
		} else if p := dc.pairV[v]; p != vcgraph.NilVertex {
			dc.cover0[p] = true
		}
	}
}

// doubleCover registers itself as a graph observer for the duration of one
// LPBound call: deleting or covering a vertex mid-algorithm (the loop over
// LP-decided vertices, and the SCC tightening pass, both mutate the graph
// while reusing this matching) dissolves any matched pair touching the
// removed object, so the matching stays a valid — if no longer maximum —
// matching of whatever graph remains.

func (dc *doubleCover) VertexCreated(id vcgraph.VertexID) {
	for int(id) >= len(dc.pairU) {
		dc.pairU = append(dc.pairU, vcgraph.NilVertex)
		dc.pairV = append(dc.pairV, vcgraph.NilVertex)
		dc.dist = append(dc.dist, 0)
		dc.alternating = append(dc.alternating, false)
		dc.cover0 = append(dc.cover0, false)
		dc.cover1 = append(dc.cover1, false)
	}
}

func (dc *doubleCover) VertexRetired(id vcgraph.VertexID) {
	if p := dc.pairU[id]; p != vcgraph.NilVertex {
		dc.pairV[p] = vcgraph.NilVertex
		dc.pairU[id] = vcgraph.NilVertex
	}
	if p := dc.pairV[id]; p != vcgraph.NilVertex {
		dc.pairV[id] = vcgraph.NilVertex
		dc.pairU[p] = vcgraph.NilVertex
	}
}

func (dc *doubleCover) EdgeRemoved(id vcgraph.EdgeID) {
	a, b := dc.g.Edge(id).Ends()
	if dc.pairU[a] == b && dc.pairV[b] == a {
		dc.pairU[a] = vcgraph.NilVertex
		dc.pairV[b] = vcgraph.NilVertex
	}
	if dc.pairU[b] == a && dc.pairV[a] == b {
		dc.pairU[b] = vcgraph.NilVertex
		dc.pairV[a] = vcgraph.NilVertex
	}
}
