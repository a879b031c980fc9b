package reduce

import (
	"math"

	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// CliqueNeighborhood applies the clique-neighborhood rule to fixpoint: for
// a live vertex v, attempt to partition N(v) into an independent set C1 and
// a clique C2 with |C1| >= |C2|. When that partition exists, v and every
// member of C2 can be eliminated: each a in C1 picks up the edges of its
// unique non-neighbor nn(a) within N(v), which preserves the cover-size
// relationship the removed vertices enforced.
//
// Every application is worth exactly |C2| guaranteed future cover members
// (the back-translation adds either C2 itself, or v plus all but one of C2
// while dropping one already-picked C1 member). That guarantee has no
// materialized vertex during the search, so it is reported as sizeDelta,
// the same way Degree2Fold reports its per-fold credit.
func CliqueNeighborhood(g *vcgraph.Graph, cfg *vcconfig.Config) (applied, sizeDelta int) {
	for {
		v, c1, c2, ok := findCliqueNeighborhood(g, cfg)
		if !ok {
			return applied, sizeDelta
		}
		applyCliqueNeighborhood(g, v, c1, c2)
		applied++
		sizeDelta += len(c2)
	}
}

func findCliqueNeighborhood(g *vcgraph.Graph, cfg *vcconfig.Config) (v vcgraph.VertexID, c1, c2 []vcgraph.VertexID, ok bool) {
	for _, cand := range g.LiveVertices() {
		deg := g.Vertex(cand).Deg()
		if deg < 2 {
			continue
		}
		if cfg.CNCheck1Enabled && (deg < cfg.CNCheck1MinDeg || deg > cfg.CNCheck1MaxDeg) {
			continue
		}
		n := g.Vertex(cand).Edges()

		m := inducedEdgeCount(g, n)
		wantC1 := deg*(deg-1)/2 - m
		if wantC1 <= 0 || wantC1 > deg {
			continue
		}

		candidates := singleNonNeighborCandidates(g, n)
		if len(candidates) < wantC1 {
			continue
		}
		if !cnFeasible2(len(candidates), wantC1, cfg) {
			continue
		}

		chosen, found := chooseIndependentSubset(g, candidates, wantC1)
		if !found {
			continue
		}
		c1set := make(map[vcgraph.VertexID]bool, len(chosen))
		for _, a := range chosen {
			c1set[a] = true
		}
		var c2 []vcgraph.VertexID
		for _, x := range n {
			if !c1set[x] {
				c2 = append(c2, x)
			}
		}
		if len(chosen) < len(c2) {
			continue
		}
		if !isClique(g, c2) {
			continue
		}
		return cand, chosen, c2, true
	}
	return vcgraph.NilVertex, nil, nil, false
}

// cnFeasible2 bounds the C1 search space before committing to the DFS:
// there are up to binom(n, k) ways to choose C1 from the candidate list, so
// the choice count is approximated (squaring e*n/k k times overshoots the
// binomial) and the search is refused once the approximation clears the
// configured cutoff. Small candidate lists are always allowed through, and
// large n with non-trivial k is refused outright.
func cnFeasible2(n, k int, cfg *vcconfig.Config) bool {
	if !cfg.CNCheck2Enabled {
		return true
	}
	if n <= cfg.CNCheck2RelaxN {
		return true
	}
	if k > n/2 {
		k = n - k
	}
	if k == 0 {
		return true
	}
	if n >= cfg.CNCheck2LargeN && k >= cfg.CNCheck2LargeK {
		return false
	}

	x := math.E * float64(n) / float64(k)
	for ; k > 0; k-- {
		if x > cfg.CNCheck2Cutoff {
			return false
		}
		x = x * x
	}
	return true
}

func inducedEdgeCount(g *vcgraph.Graph, n []vcgraph.VertexID) int {
	count := 0
	for i := 0; i < len(n); i++ {
		for j := i + 1; j < len(n); j++ {
			if adjacent(g, n[i], n[j]) {
				count++
			}
		}
	}
	return count
}

// singleNonNeighborCandidates returns the members of n that have exactly
// one non-neighbor within n; only those can sit in C1, since each C1
// member must pick up its unique non-neighbor's edges.
func singleNonNeighborCandidates(g *vcgraph.Graph, n []vcgraph.VertexID) []vcgraph.VertexID {
	var out []vcgraph.VertexID
	for _, x := range n {
		nonNeighbors := 0
		for _, y := range n {
			if x != y && !adjacent(g, x, y) {
				nonNeighbors++
			}
		}
		if nonNeighbors == 1 {
			out = append(out, x)
		}
	}
	return out
}

// chooseIndependentSubset runs a small bounded DFS over candidates looking
// for an independent subset of exactly size want.
func chooseIndependentSubset(g *vcgraph.Graph, candidates []vcgraph.VertexID, want int) ([]vcgraph.VertexID, bool) {
	var chosen []vcgraph.VertexID
	var rec func(idx int) bool
	rec = func(idx int) bool {
		if len(chosen) == want {
			return true
		}
		if idx >= len(candidates) || len(candidates)-idx < want-len(chosen) {
			return false
		}
		x := candidates[idx]
		conflict := false
		for _, c := range chosen {
			if adjacent(g, x, c) {
				conflict = true
				break
			}
		}
		if !conflict {
			chosen = append(chosen, x)
			if rec(idx + 1) {
				return true
			}
			chosen = chosen[:len(chosen)-1]
		}
		return rec(idx + 1)
	}
	if rec(0) {
		return chosen, true
	}
	return nil, false
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

// nonNeighborWithin returns a's unique non-neighbor among n, or NilVertex
// if a has none (candidates are pre-filtered to have exactly one).
func nonNeighborWithin(g *vcgraph.Graph, a vcgraph.VertexID, n []vcgraph.VertexID) vcgraph.VertexID {
	for _, y := range n {
		if y != a && !adjacent(g, a, y) {
			return y
		}
	}
	return vcgraph.NilVertex
}

type cliqueNeighMod struct {
	v        vcgraph.VertexID
	c1, c2   []vcgraph.VertexID
	nn       map[vcgraph.VertexID]vcgraph.VertexID // a in C1 -> its non-neighbor
	newEdges []vcgraph.EdgeID
}

func applyCliqueNeighborhood(g *vcgraph.Graph, v vcgraph.VertexID, c1, c2 []vcgraph.VertexID) {
	n := g.Vertex(v).Edges()
	mod := &cliqueNeighMod{v: v, c1: c1, c2: c2, nn: make(map[vcgraph.VertexID]vcgraph.VertexID, len(c1))}

	for _, a := range c1 {
		partner := nonNeighborWithin(g, a, n)
		mod.nn[a] = partner
		if partner == vcgraph.NilVertex {
			continue
		}
		for _, x := range g.Vertex(partner).Edges() {
			if x == a || x == v || adjacent(g, a, x) {
				continue
			}
			mod.newEdges = append(mod.newEdges, g.CreateEdge(a, x))
		}
	}

	g.PushModification(mod)
	g.DeleteVertexLogged(v)
	for _, x := range c2 {
		g.DeleteVertexLogged(x)
	}
}

func (m *cliqueNeighMod) Undo(g *vcgraph.Graph) {
	for i := len(m.newEdges) - 1; i >= 0; i-- {
		g.DestroyEdge(m.newEdges[i])
	}
}

// TranslateVC expands the rule back out at cost exactly |C2|. If every
// member of C1 made the reduced cover, adding C2 suffices: C1 covers v's
// edges into C1, C2 covers the rest. If exactly one a in C1 is missing,
// the gadget edges a picked up force N(nn(a)) into the cover, so nn(a) is
// redundant: v joins (covering v's own edges), C2 minus nn(a) joins, and
// nn(a) leaves if an outer translation had put it in. Both paths add the
// same net count, which is what the search-time sizeDelta credit promised.
func (m *cliqueNeighMod) TranslateVC(g *vcgraph.Graph) {
	var missing []vcgraph.VertexID
	for _, a := range m.c1 {
		if !g.InCover(a) {
			missing = append(missing, a)
		}
	}

	if len(missing) == 0 {
		for _, x := range m.c2 {
			if !g.InCover(x) {
				g.AppendCoverMember(x)
			}
		}
		return
	}

	a := missing[0]
	nn := m.nn[a]
	if g.InCover(nn) {
		g.ReplaceCoverMember(nn, m.v)
	} else {
		g.AppendCoverMember(m.v)
	}
	for _, x := range m.c2 {
		if x != nn && !g.InCover(x) {
			g.AppendCoverMember(x)
		}
	}
}
