package reduce

import (
	"sort"

	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// Unconfined applies the unconfined-vertex rule to fixpoint. A live
// vertex v is unconfined if a greedy
// set-growing process starting from S={v} ever finds a neighbor of S whose
// private neighborhood (relative to S) is empty; such a v can always be
// forced into the cover. Like Degree1 and Domination, the forced vertex is
// real, so no custom Modification is needed.
func Unconfined(g *vcgraph.Graph, cfg *vcconfig.Config) int {
	forced := 0
	for {
		v, ok := findUnconfined(g, cfg)
		if !ok {
			return forced
		}
		g.AddToCoverLogged(v)
		forced++
	}
}

// UnconfinedCombo is Unconfined with a degree-1/2 chaser: each forced
// vertex is followed immediately by a degree-1 sweep and a degree-2 fold
// pass, since forcing a vertex typically spills fresh low-degree neighbors
// that are cheaper to clear right away than to rediscover on the next full
// sweep. Fold credits earned by the chaser are reported as sizeDelta.
func UnconfinedCombo(g *vcgraph.Graph, cfg *vcconfig.Config) (applied, sizeDelta int) {
	for {
		v, ok := findUnconfined(g, cfg)
		if !ok {
			return applied, sizeDelta
		}
		g.AddToCoverLogged(v)
		applied++

		applied += Degree1(g)
		a2, d2 := Degree2Fold(g)
		applied += a2
		sizeDelta += d2
	}
}

func findUnconfined(g *vcgraph.Graph, cfg *vcconfig.Config) (vcgraph.VertexID, bool) {
	for _, v := range g.LiveVertices() {
		if isUnconfined(g, v, cfg) {
			return v, true
		}
	}
	return vcgraph.NilVertex, false
}

func isUnconfined(g *vcgraph.Graph, v vcgraph.VertexID, cfg *vcconfig.Config) bool {
	if g.Vertex(v).Deg() > cfg.UnconfMaxDeg {
		return false
	}

	s := map[vcgraph.VertexID]bool{v: true}

	for {
		closedS := make(map[vcgraph.VertexID]bool, len(s))
		for x := range s {
			closedS[x] = true
		}
		ns := neighborsOfSet(g, s, closedS)
		if len(ns) > cfg.UnconfCutoff {
			return false
		}
		for x := range ns {
			closedS[x] = true
		}

		var bestU vcgraph.VertexID = vcgraph.NilVertex
		var bestPrivate []vcgraph.VertexID
		for _, u := range sortedKeys(ns) {
			if intersectSize(neighborSet(g, u), s) != 1 {
				continue
			}
			private := setMinus(neighborSet(g, u), closedS)
			if bestU == vcgraph.NilVertex || len(private) < len(bestPrivate) {
				bestU, bestPrivate = u, private
			}
		}

		if bestU == vcgraph.NilVertex {
			return false
		}
		switch len(bestPrivate) {
		case 0:
			return true
		case 1:
			s[bestPrivate[0]] = true
		default:
			return false
		}
	}
}

// neighborsOfSet returns N(S), the union of open neighborhoods of every
// member of s, excluding s itself.
func neighborsOfSet(g *vcgraph.Graph, s, closedS map[vcgraph.VertexID]bool) map[vcgraph.VertexID]bool {
	out := make(map[vcgraph.VertexID]bool)
	for x := range s {
		for _, y := range g.Vertex(x).Edges() {
			if !closedS[y] {
				out[y] = true
			}
		}
	}
	return out
}

func intersectSize(a, b map[vcgraph.VertexID]bool) int {
	n := 0
	for k := range a {
		if b[k] {
			n++
		}
	}
	return n
}

func setMinus(a, b map[vcgraph.VertexID]bool) []vcgraph.VertexID {
	var out []vcgraph.VertexID
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	return out
}

// sortedKeys returns m's keys in ascending id order, so ties in the greedy
// set-growing step resolve the same way on every run.
func sortedKeys(m map[vcgraph.VertexID]bool) []vcgraph.VertexID {
	out := make([]vcgraph.VertexID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
