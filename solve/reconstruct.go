package solve

import (
	"github.com/vcsolve/vcsolve/bound"
	"github.com/vcsolve/vcsolve/reduce"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// reconstruct replays the same decision structure evaluate explores, except
// every reduction, LP-forced vertex, and binary branch choice it makes is
// committed permanently (no snapshot/restore at this level): it is the
// second pass that turns evaluate's proven optimal size into an actual
// witness cover. target is the absolute total size (vertices already in
// VC.V, plus any not-yet-materialized fold credit) known to be achievable
// from the current state; reconstruct never re-derives it, only confirms
// which branch still admits it via evaluate used as an oracle.
//
// The return value is the fold credit committed by this call and all of its
// recursive callees: size guaranteed by folds whose extra cover member only
// materializes later, in TranslateSolution. Callers that keep solving after
// a reconstruct call returns (the component loop) add it to their own
// running credit so evaluate's absolute sizes stay comparable.
func (st *state) reconstruct(foldCredit, target int) int {
	if st.g.NumVertices() == 0 {
		return 0
	}

	red := reduce.Schedule(st.g, st.cfg)
	committed := red.SizeDelta
	foldCredit += red.SizeDelta
	if st.g.NumVertices() == 0 {
		return committed
	}

	if st.cfg.LPBoundEnabled {
		bound.LPBound(st.g, st.cfg.LPBoundCutoff)
		if st.g.NumVertices() == 0 {
			return committed
		}
	}

	if st.cfg.Components {
		if comps := connectedComponents(st.g); len(comps) >= 2 {
			return committed + st.reconstructComponents(comps, foldCredit, target)
		}
	}

	v := pickBranchVertex(st.g)

	leftSnap := st.g.CreateSnapshot()
	st.applyLeftBranch(v)
	if st.evaluate(foldCredit, target+1) <= target {
		return committed + st.reconstruct(foldCredit, target)
	}
	st.g.RestoreSnapshot(leftSnap)

	st.applyRightBranch(v)
	return committed + st.reconstruct(foldCredit, target)
}

// reconstructComponents commits each component's witness in turn, sizing
// each one's local target via evaluate before replaying it for real with
// reconstruct. Once a component's vertices are actually covered they retire
// (degree drops to zero) as a side effect of the commit, so their cost is
// already part of the base evaluate reports for the next component and the
// budget stays target+1 throughout; fold credit committed along the way is
// threaded forward the same way. Hiding a component whose vertices have all
// retired is a no-op, so the "other" list never needs to exclude
// already-committed components.
func (st *state) reconstructComponents(comps [][]vcgraph.VertexID, foldCredit, target int) int {
	committed := 0
	for i := range comps {
		var other []vcgraph.VertexID
		for j, c := range comps {
			if j != i {
				other = append(other, c...)
			}
		}
		hidden := hideVertices(st.g, other)
		localTarget := st.evaluate(foldCredit, target+1)
		delta := st.reconstruct(foldCredit, localTarget)
		unhideEdges(st.g, hidden)
		foldCredit += delta
		committed += delta
	}
	return committed
}
