package reduce

import (
	"github.com/vcsolve/vcsolve/bound"
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcgraph"
)

// Result summarizes one Schedule call.
type Result struct {
	// Applied is the total number of individual rule applications across
	// every slot and every fixpoint round.
	Applied int

	// SizeDelta is the guaranteed-but-not-yet-materialized cover size
	// credit earned this call: one per degree-2 fold, |C2| per
	// clique-neighborhood application. Callers add this to their running
	// cover-size accounting.
	SizeDelta int
}

// Schedule runs cfg's configured rule slots, in order, to a combined
// fixpoint: it keeps sweeping the slot list until one full sweep applies
// nothing. Both the branch driver's per-node reduction pass and the
// top-level pre-optimization sweep go through here.
func Schedule(g *vcgraph.Graph, cfg *vcconfig.Config) Result {
	var total Result
	for {
		round := applyOneSweep(g, cfg)
		total.Applied += round.Applied
		total.SizeDelta += round.SizeDelta
		if round.Applied == 0 {
			return total
		}
	}
}

func applyOneSweep(g *vcgraph.Graph, cfg *vcconfig.Config) Result {
	var r Result
	for _, tag := range cfg.Rules {
		switch tag {
		case vcconfig.RuleNone:
			continue
		case vcconfig.RuleDeg1:
			r.Applied += Degree1(g)
		case vcconfig.RuleDeg2:
			applied, delta := Degree2Fold(g)
			r.Applied += applied
			r.SizeDelta += delta
		case vcconfig.RuleDeg12:
			r.Applied += Degree1(g)
			applied, delta := Degree2Fold(g)
			r.Applied += applied
			r.SizeDelta += delta
		case vcconfig.RuleDeg3:
			r.Applied += Degree3Independent(g, cfg)
		case vcconfig.RuleDom:
			r.Applied += Domination(g)
		case vcconfig.RuleUnconf:
			r.Applied += Unconfined(g, cfg)
		case vcconfig.RuleUnconfCombo:
			applied, delta := UnconfinedCombo(g, cfg)
			r.Applied += applied
			r.SizeDelta += delta
		case vcconfig.RuleCN:
			applied, delta := CliqueNeighborhood(g, cfg)
			r.Applied += applied
			r.SizeDelta += delta
		case vcconfig.RuleUndeg3:
			r.Applied += Undeg3(g)
		case vcconfig.RuleLP:
			if cfg.LPBoundEnabled {
				before := g.CoverSize()
				bound.LPBound(g, cfg.LPBoundCutoff)
				r.Applied += g.CoverSize() - before
			}
		}
	}
	return r
}
