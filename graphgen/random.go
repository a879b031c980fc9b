package graphgen

import "github.com/vcsolve/vcsolve/vcgraph"

// RandomSparse builds an Erdos-Renyi G(n,p) graph: every one of the n*(n-1)/2
// candidate edges is included independently with probability p.
func RandomSparse(n int, p float64, opts ...Option) *vcgraph.Graph {
	cfg := newConfig(opts...)
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				mustEdge(g, ids[i], ids[j])
			}
		}
	}
	return g
}

// RandomRegular builds a graph on n vertices where every vertex has
// (approximately) degree d, via repeated random pairing with a rejection
// check against self-loops and already-present edges. It is a best-effort
// construction (the pairing process can strand a handful of vertices short
// of degree d on unlucky draws); callers needing an exact regular graph for
// a property test should check the result rather than assume it.
func RandomRegular(n, d int, opts ...Option) *vcgraph.Graph {
	cfg := newConfig(opts...)
	g := vcgraph.NewGraph()
	ids := namedVertices(g, n)

	have := make(map[[2]int]bool)
	deg := make([]int, n)

	const maxAttempts = 200
	for attempt := 0; attempt < maxAttempts; attempt++ {
		progressed := false
		for i := 0; i < n; i++ {
			for deg[i] < d {
				j := cfg.rng.Intn(n)
				if j == i || deg[j] >= d {
					break
				}
				a, b := i, j
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if have[key] {
					break
				}
				have[key] = true
				mustEdge(g, ids[i], ids[j])
				deg[i]++
				deg[j]++
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return g
}
