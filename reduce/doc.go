// Package reduce implements the kernelization rules that shrink a
// vcgraph.Graph before (and between) branch-and-bound steps: degree-1
// forcing, degree-2 folding, the degree-3 independent-set gadget,
// domination, unconfined-vertex forcing, clique-neighborhood substitution,
// and the "undeg-3" gadget. Every rule that succeeds
// pushes a vcgraph.Modification recording how to undo itself and, later,
// how to translate a cover of the reduced graph back into one over the
// original vertex set.
//
// Rules are applied via Schedule, which walks a vcconfig.Config's 16-slot
// rule order to a fixpoint: it keeps re-running the configured rules until
// a full pass makes no further change. Both the pre-optimization sweep and
// the branch driver's per-node reduction pass go through it.
package reduce
