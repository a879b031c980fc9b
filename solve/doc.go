// Package solve implements the recursive branch-and-bound driver: at each
// node it snapshots the graph, reduces it to a fixpoint, evaluates the LP
// and clique-cover lower bounds, splits disconnected components, and
// otherwise picks a branching vertex and tries both "v in cover" (with
// mirror branching) and "N(v) in cover" before restoring.
//
// The driver runs in two passes. evaluate is a pure search: it proves the
// optimal cover size and restores every mutation it makes before
// returning. reconstruct then replays the search deterministically, using
// evaluate as an oracle at each binary choice and committing the winning
// side for real, so the graph ends up holding an actual witness cover of
// the proven size. Solve wires the two together and back-translates
// synthetic fold/gadget vertices into original ones.
package solve
