package solve

import (
	"math/rand"

	"github.com/vcsolve/vcsolve/bound"
	"github.com/vcsolve/vcsolve/reduce"
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// state carries the mutable search context through the recursive evaluate /
// reconstruct pair: the graph being solved, its configuration, the
// deterministically-seeded clique-bound generator, and running statistics.
type state struct {
	g   *vcgraph.Graph
	cfg *vcconfig.Config
	rng *rand.Rand

	stats Stats
}

func (st *state) cliqueConfig() bound.CliqueConfig {
	return bound.CliqueConfig{
		Iterations:  st.cfg.CliqueBoundIter,
		Ascend:      st.cfg.CliqueBoundAscend,
		Mixed:       st.cfg.CliqueBoundMixed,
		ShufflePct:  st.cfg.CliqueBoundShufflePct,
		ShuffleDist: st.cfg.CliqueBoundShuffleDist,
	}
}

func (st *state) applyLeftBranch(v vcgraph.VertexID) {
	if st.cfg.Mirror {
		for _, m := range findMirrors(st.g, v) {
			st.g.AddToCoverLogged(m)
		}
	}
	st.g.AddToCoverLogged(v)
}

func (st *state) applyRightBranch(v vcgraph.VertexID) {
	neighbors := append([]vcgraph.VertexID(nil), st.g.Vertex(v).Edges()...)
	for _, u := range neighbors {
		st.g.AddToCoverLogged(u)
	}
}

// evaluate is the pure half of the branch step: it always restores the
// graph to exactly the state it had on entry before returning, and its
// return value is either a new proven size strictly less than upperBound,
// or upperBound itself unchanged (meaning nothing this deep beats the
// incoming bound). reconstruct (its companion in reconstruct.go) uses
// evaluate purely as an oracle to decide, at each binary choice, which side
// actually contains an optimal solution, then commits that side for real.
// Splitting the branch step into a pure search pass and a separate
// committing replay pass avoids having to thread "did my callee already
// commit, or do I still need to restore" state through every return path of
// one combined function.
func (st *state) evaluate(foldCredit, upperBound int) int {
	st.stats.RecursiveSteps++

	if st.g.NumVertices() == 0 {
		size := st.g.CoverSize() + foldCredit
		if size < upperBound {
			return size
		}
		return upperBound
	}

	snap := st.g.CreateSnapshot()
	defer st.g.RestoreSnapshot(snap)

	red := reduce.Schedule(st.g, st.cfg)
	foldCredit += red.SizeDelta
	st.stats.ReductionApplications += red.Applied
	size := st.g.CoverSize() + foldCredit

	if st.g.NumVertices() == 0 {
		if size < upperBound {
			return size
		}
		return upperBound
	}

	var maxBound int64
	if st.cfg.LPBoundEnabled {
		maxBound = bound.LPBound(st.g, st.cfg.LPBoundCutoff)
		size = st.g.CoverSize() + foldCredit
		if st.g.NumVertices() == 0 {
			if size < upperBound {
				return size
			}
			return upperBound
		}
	}
	if st.cfg.CliqueBoundEnabled {
		if c := bound.CliqueBound(st.g, st.cliqueConfig(), st.rng); c > maxBound {
			maxBound = c
		}
	}
	if int64(size)+maxBound >= int64(upperBound) {
		return upperBound
	}

	if st.cfg.Components {
		if comps := connectedComponents(st.g); len(comps) >= 2 {
			return st.evaluateComponents(comps, foldCredit, upperBound)
		}
	}

	v := pickBranchVertex(st.g)
	if pruneKernel(st.g, v, size, upperBound) {
		return upperBound
	}

	best := upperBound

	leftSnap := st.g.CreateSnapshot()
	st.applyLeftBranch(v)
	if r := st.evaluate(foldCredit, best); r < best {
		best = r
	}
	st.g.RestoreSnapshot(leftSnap)

	st.applyRightBranch(v)
	if r := st.evaluate(foldCredit, best); r < best {
		best = r
	}
	st.g.RestoreSnapshot(leftSnap)

	return best
}

// evaluateComponents solves each connected component in isolation and sums
// their costs. evaluate always restores the graph before returning, so the
// base term (vertices already committed plus fold credit) appears in every
// per-component result; it is subtracted back out when accumulating, and the
// per-component budget shrinks by the cost of the components already solved.
func (st *state) evaluateComponents(comps [][]vcgraph.VertexID, foldCredit, upperBound int) int {
	base := st.g.CoverSize() + foldCredit
	total := base
	for i := range comps {
		var other []vcgraph.VertexID
		for j, c := range comps {
			if j != i {
				other = append(other, c...)
			}
		}
		hidden := hideVertices(st.g, other)
		budget := upperBound - (total - base)
		result := st.evaluate(foldCredit, budget)
		unhideEdges(st.g, hidden)
		if result >= budget {
			return upperBound
		}
		total += result - base
		if total >= upperBound {
			return upperBound
		}
	}
	return total
}
