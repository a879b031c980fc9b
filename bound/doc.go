// Package bound computes lower bounds the branch-and-bound driver uses to
// prune a node without recursing into it: an LP-relaxation bound sharpened
// by a strongly-connected-components tightening pass, and a greedy
// clique-cover bound. Both bounds are grounded on the rest of the
// vcsolve tree: they read a *vcgraph.Graph, and the LP bound actively
// mutates it (deleting vertices the relaxation sets to 0 and covering those
// it sets to 1), exactly the way the branch driver's own reduction rules do.
// The clique-cover bound only reads the graph. Callers are responsible for
// snapshotting the graph before calling the LP bound and restoring
// afterwards if the mutation should not stick.
package bound
