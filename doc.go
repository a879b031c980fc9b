// Package vcsolve is the root of a minimum-vertex-cover solver for
// arbitrary undirected simple graphs: a branch-and-bound search over a
// mutable graph kernel with reversible modifications, exact kernelization
// reductions, and two algebraic lower bounds.
//
// The packages compose bottom-up:
//
//	vcgraph/  — mutable graph kernel: adjacency with positional
//	            back-pointers, degree buckets, the reversible modification
//	            log and O(1) snapshots
//	reduce/   — kernelization rules (degree-1, degree-2 fold, degree-3
//	            gadget, domination, unconfined, clique-neighborhood,
//	            undeg-3) plus the configurable rule schedule
//	bound/    — lower bounds: LP relaxation via Hopcroft-Karp matching on
//	            the bipartite double cover with SCC tightening, and a
//	            greedy clique-cover bound
//	solve/    — the branch-and-bound driver: mirror branching, connected
//	            component split, kernel-size cutoff, witness reconstruction
//	vcconfig/ — threaded configuration value and its KEY VALUE file format
//	vcio/     — stdin edge-list parser and stdout cover writer
//	graphgen/ — graph generators for property tests and benchmarks
//
// cmd/vccover wires parsing, solving, and writing into a runnable CLI.
package vcsolve
