package solve

import (
	"math/rand"

	"github.com/vcsolve/vcsolve/bound"
	"github.com/vcsolve/vcsolve/reduce"
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// preOptimizationRounds bounds the reduction sweep Solve runs before the
// first branch step. reduce.Schedule already sweeps its configured rule
// list to its own fixpoint on every call, so in practice the loop below
// exits on round 2 once the first round's fixpoint has nothing left to do;
// the bound is a backstop, not a tuning knob.
const preOptimizationRounds = 50

// cliqueRNGSeed seeds the clique-cover bound's perturbation generator. A
// fixed seed keeps repeated Solve calls over the same graph byte-identical,
// matching the deterministic tie-breaking the rest of the driver commits
// to. The default clique-bound configuration (Iterations: 1) never actually
// draws from it, since no perturbation pass runs with only one iteration.
const cliqueRNGSeed = 1

// Solve computes a proven-minimum vertex cover of g under cfg: a bounded
// pre-optimization sweep, a pure branch-and-bound search for the optimal
// size, and a deterministic replay that commits a witness achieving it.
// g.TranslateSolution is called before returning, so g.VC.V names only
// vertices that existed in the original input, never synthetic gadget or
// merge vertices.
func Solve(g *vcgraph.Graph, cfg *vcconfig.Config) Result {
	st := &state{g: g, cfg: cfg, rng: rand.New(rand.NewSource(cliqueRNGSeed))}

	// Pre-optimization interleaves the configured rule schedule with the LP
	// bound's own vertex forcing, all committed permanently: anything decided
	// here is part of every solution explored below.
	var pre reduce.Result
	for i := 0; i < preOptimizationRounds; i++ {
		r := reduce.Schedule(g, cfg)
		if cfg.LPBoundEnabled {
			before := g.CoverSize()
			bound.LPBound(g, cfg.LPBoundCutoff)
			r.Applied += g.CoverSize() - before
		}
		pre.Applied += r.Applied
		pre.SizeDelta += r.SizeDelta
		if r.Applied == 0 {
			break
		}
	}
	st.stats.ReductionApplications += pre.Applied

	upperBound := g.CoverSize() + pre.SizeDelta + g.NumVertices()

	optimal := st.evaluate(pre.SizeDelta, upperBound)
	st.reconstruct(pre.SizeDelta, optimal)

	g.TranslateSolution()

	return Result{CoverSize: g.CoverSize(), Stats: st.stats}
}
