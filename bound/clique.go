package bound

import (
	"math/rand"
	"sort"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// CliqueConfig controls the greedy clique-cover bound's heuristics. The
// fields correspond one-to-one to the CLIQUE_BOUND_* configuration keys,
// threaded explicitly instead of living as process-wide state.
type CliqueConfig struct {
	Iterations  int
	Ascend      bool
	Mixed       bool
	ShufflePct  int     // 0-100
	ShuffleDist float64 // fraction of the array a shuffle swap may jump
}

// DefaultCliqueConfig returns the compiled-in defaults, matching what
// vcconfig.Default carries for the same knobs.
func DefaultCliqueConfig() CliqueConfig {
	return CliqueConfig{
		Iterations:  1,
		Ascend:      false,
		Mixed:       false,
		ShufflePct:  50,
		ShuffleDist: 0.3,
	}
}

// CliqueBound computes a greedy disjoint-clique-partition lower bound for
// the vertex cover: any clique of size k forces at least k-1 of its members
// into the cover, so the sum of (size-1) over a vertex-disjoint partition
// into cliques lower-bounds the whole cover. It takes the best of
// cfg.Iterations greedy passes: bucket-sort by degree, then repeatedly
// perturb the processing order (ascending/descending/shuffled) and
// re-partition, keeping the best bound found.
//
// Each pass maintains an explicit clique-member list per representative and
// checks full mutual adjacency against the candidate's marked neighborhood
// before a vertex joins an existing clique.
func CliqueBound(g *vcgraph.Graph, cfg CliqueConfig, rng *rand.Rand) int64 {
	order := bucketSortByDegree(g)

	var best int64
	for iter := 0; iter < cfg.Iterations; iter++ {
		shuffle := (cfg.Mixed && iter >= 2 && iter%2 == 0) || (!cfg.Mixed && iter >= 1)
		if shuffle {
			shuffleOrder(order, cfg, rng)
		}

		ascending := (cfg.Ascend && !cfg.Mixed) || (cfg.Mixed && iter%2 == 1)
		bound := greedyCliquePartition(g, order, ascending)
		if bound > best {
			best = bound
		}
	}
	return best
}

// bucketSortByDegree orders live vertices by ascending degree using a
// fixed-width bucket array for degrees below 30 and a sorted overflow slice
// for the rest.
func bucketSortByDegree(g *vcgraph.Graph) []vcgraph.VertexID {
	const buckets = 30
	bucket := make([][]vcgraph.VertexID, buckets)
	var highDeg []vcgraph.VertexID

	for _, v := range g.LiveVertices() {
		deg := g.Vertex(v).Deg()
		if deg < buckets {
			bucket[deg] = append(bucket[deg], v)
		} else {
			highDeg = append(highDeg, v)
		}
	}

	sort.Slice(highDeg, func(i, j int) bool {
		return g.Vertex(highDeg[i]).Deg() < g.Vertex(highDeg[j]).Deg()
	})

	order := make([]vcgraph.VertexID, 0, g.NumVertices())
	for i := 0; i < buckets; i++ {
		order = append(order, bucket[i]...)
	}
	order = append(order, highDeg...)

	return order
}

func shuffleOrder(order []vcgraph.VertexID, cfg CliqueConfig, rng *rand.Rand) {
	n := len(order)
	if n == 0 {
		return
	}
	for i := range order {
		if rng.Intn(100) >= cfg.ShufflePct {
			continue
		}
		dist := int(float64(rng.Intn(n)) * cfg.ShuffleDist)
		if rng.Intn(2) == 0 {
			dist = -dist
		}
		if j := i + dist; j >= 0 && j < n {
			order[i], order[j] = order[j], order[i]
		}
	}
}

func greedyCliquePartition(g *vcgraph.Graph, order []vcgraph.VertexID, ascending bool) int64 {
	n := len(order)
	assigned := make(map[vcgraph.VertexID]vcgraph.VertexID, n)
	members := make(map[vcgraph.VertexID][]vcgraph.VertexID)
	marked := make(map[vcgraph.VertexID]bool, n)

	for i := 0; i < n; i++ {
		idx := i
		if !ascending {
			idx = n - 1 - i
		}
		v := order[idx]
		if _, done := assigned[v]; done {
			continue
		}

		for _, u := range g.Vertex(v).Edges() {
			marked[u] = true
		}

		var bestRoot vcgraph.VertexID = vcgraph.NilVertex
		bestSize := 0
		for _, u := range g.Vertex(v).Edges() {
			root, ok := assigned[u]
			if !ok {
				continue
			}
			if len(members[root]) <= bestSize {
				continue
			}
			if allMarked(members[root], marked) {
				bestRoot = root
				bestSize = len(members[root])
			}
		}

		for _, u := range g.Vertex(v).Edges() {
			delete(marked, u)
		}

		if bestRoot == vcgraph.NilVertex {
			assigned[v] = v
			members[v] = []vcgraph.VertexID{v}
		} else {
			assigned[v] = bestRoot
			members[bestRoot] = append(members[bestRoot], v)
		}
	}

	var bound int64
	for root, ms := range members {
		_ = root
		bound += int64(len(ms) - 1)
	}
	return bound
}

func allMarked(members []vcgraph.VertexID, marked map[vcgraph.VertexID]bool) bool {
	for _, m := range members {
		if !marked[m] {
			return false
		}
	}
	return true
}
