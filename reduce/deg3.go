package reduce

import (
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// Degree3Independent applies the degree-3 independent-set gadget to
// fixpoint: a live degree-3 vertex v whose neighbors {a,b,c} induce no
// edges among themselves can be eliminated by rewiring a,b,c so the rest
// of the graph enforces the same "v in cover, or all of a,b,c in cover"
// constraint v itself used to. It is gated by cfg.Deg3Cutoff1/Deg3Cutoff2
// so it only fires where the rewiring stays cheap.
func Degree3Independent(g *vcgraph.Graph, cfg *vcconfig.Config) int {
	applied := 0
	for {
		v, ok := findDeg3Candidate(g, cfg)
		if !ok {
			return applied
		}
		applyDeg3(g, v)
		applied++
	}
}

func findDeg3Candidate(g *vcgraph.Graph, cfg *vcconfig.Config) (vcgraph.VertexID, bool) {
	for _, v := range g.Degree3() {
		nb := g.Vertex(v).Edges()
		a, b, c := nb[0], nb[1], nb[2]
		if adjacent(g, a, b) || adjacent(g, b, c) || adjacent(g, a, c) {
			continue
		}
		sumDeg := g.Vertex(a).Deg() + g.Vertex(b).Deg() + g.Vertex(c).Deg()
		if sumDeg > cfg.Deg3Cutoff1+1 {
			continue
		}
		if countNewEdges(g, a, b, c) > cfg.Deg3Cutoff2 {
			continue
		}
		return v, true
	}
	return vcgraph.NilVertex, false
}

// countNewEdges estimates how many edges applyDeg3 would actually create
// (skipping pairs already adjacent), for the DEG3_CUTOFF2 feasibility gate.
func countNewEdges(g *vcgraph.Graph, a, b, c vcgraph.VertexID) int {
	n := 0
	for _, x := range g.Vertex(b).Edges() {
		if x != a && !adjacent(g, a, x) {
			n++
		}
	}
	for _, x := range g.Vertex(c).Edges() {
		if x != b && !adjacent(g, b, x) {
			n++
		}
	}
	for _, x := range g.Vertex(a).Edges() {
		if x != c && !adjacent(g, c, x) {
			n++
		}
	}
	if !adjacent(g, a, b) {
		n++
	}
	if !adjacent(g, b, c) {
		n++
	}
	return n
}

type deg3Mod struct {
	v, a, b, c vcgraph.VertexID
	newEdges   []vcgraph.EdgeID
}

// applyDeg3 performs the rewiring: a gains an edge to every vertex of N(b),
// b gains an edge to every vertex of N(c), c gains an edge to every vertex
// of N(a) (each excluding v, which is about to disappear, and skipping pairs
// already adjacent), plus the two edges {a,b} and {b,c}; then v is deleted.
// All three neighborhoods are captured up front so the rewiring sees the
// original adjacency, not edges added by an earlier connect step.
func applyDeg3(g *vcgraph.Graph, v vcgraph.VertexID) {
	nb := g.Vertex(v).Edges()
	a, b, c := nb[0], nb[1], nb[2]

	na := append([]vcgraph.VertexID(nil), g.Vertex(a).Edges()...)
	nbs := append([]vcgraph.VertexID(nil), g.Vertex(b).Edges()...)
	nc := append([]vcgraph.VertexID(nil), g.Vertex(c).Edges()...)

	mod := &deg3Mod{v: v, a: a, b: b, c: c}
	connect := func(from vcgraph.VertexID, neighbors []vcgraph.VertexID, skip vcgraph.VertexID) {
		for _, x := range neighbors {
			if x == skip || x == from || adjacent(g, from, x) {
				continue
			}
			eid := g.CreateEdge(from, x)
			mod.newEdges = append(mod.newEdges, eid)
		}
	}

	connect(a, nbs, v)
	connect(b, nc, v)
	connect(c, na, v)

	if !adjacent(g, a, b) {
		mod.newEdges = append(mod.newEdges, g.CreateEdge(a, b))
	}
	if !adjacent(g, b, c) {
		mod.newEdges = append(mod.newEdges, g.CreateEdge(b, c))
	}

	g.PushModification(mod)
	g.DeleteVertexLogged(v)
}

func (m *deg3Mod) Undo(g *vcgraph.Graph) {
	for i := len(m.newEdges) - 1; i >= 0; i-- {
		g.DestroyEdge(m.newEdges[i])
	}
}

// TranslateVC maps a cover of the rewired graph back to one of the same
// size for the original, keyed on how many of a, b, c the reduced solve
// picked. The gadget edges {a,b} and {b,c} force at least one of them in.
//
// With all three present, they cover every edge v had and nothing changes.
// With exactly two present, the gadget edges incident to the missing vertex
// force the relevant original neighborhood into the cover (a missing forces
// N(b) via the a-N(b) edges, b missing forces N(c), c missing forces N(a)),
// so the member whose own neighborhood is thereby covered swaps out for v.
// With exactly one present, both missing vertices force neighborhoods, and
// the lone member swaps out for v the same way.
func (m *deg3Mod) TranslateVC(g *vcgraph.Graph) {
	inA, inB, inC := g.InCover(m.a), g.InCover(m.b), g.InCover(m.c)
	switch {
	case inA && inB && inC:
		// a, b, c already cover every original edge of v.
	case inA && inB:
		g.ReplaceCoverMember(m.a, m.v)
	case inB && inC:
		g.ReplaceCoverMember(m.b, m.v)
	case inA && inC:
		g.ReplaceCoverMember(m.c, m.v)
	case inA:
		g.ReplaceCoverMember(m.a, m.v)
	case inB:
		g.ReplaceCoverMember(m.b, m.v)
	case inC:
		g.ReplaceCoverMember(m.c, m.v)
	}
}
