// Package vcgraph is the mutable graph kernel for the vertex-cover solver.
//
// It holds the live adjacency (Vertex/Edge), the degree buckets the
// reduction rules and branch driver consume, and a reversible modification
// log: every structural rewrite (covering an edge, merging vertices,
// inserting a gadget) pushes a Modification onto the log, and a Snapshot
// token lets a caller roll the graph back to exactly the state it had when
// the snapshot was taken.
//
// The graph is single-threaded: no method here is safe for concurrent use,
// and none of them block. Observers (see observer.go) let other packages
// (the bipartite matcher) keep incrementally-maintained state in sync with
// every mutation without vcgraph importing them back.
package vcgraph

import "errors"

// Sentinel errors returned by vcgraph operations.
var (
	// ErrEmptyName indicates AddVertex was called with an empty display name.
	ErrEmptyName = errors.New("vcgraph: vertex name is empty")

	// ErrVertexNotFound indicates an operation referenced an unknown VertexID.
	ErrVertexNotFound = errors.New("vcgraph: vertex not found")

	// ErrVertexRetired indicates an operation required a live vertex but found
	// one with degree 0.
	ErrVertexRetired = errors.New("vcgraph: vertex already retired")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("vcgraph: self-loop not allowed")
)
