// Package graphgen builds *vcgraph.Graph instances of familiar shapes and
// random families, for use in property-based tests and benchmarks. The
// randomized generators take functional options (WithSeed-style knobs
// applied in order over a starting configuration) so test suites stay
// reproducible.
package graphgen
