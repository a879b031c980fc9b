package reduce_test

import (
	"testing"

	"github.com/vcsolve/vcsolve/graphgen"
	"github.com/vcsolve/vcsolve/reduce"
	"github.com/vcsolve/vcsolve/vcconfig"
)

func BenchmarkScheduleSparse(b *testing.B) {
	cfg := vcconfig.Default()
	g := graphgen.RandomSparse(400, 0.01, graphgen.WithSeed(1))
	snap := g.CreateSnapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reduce.Schedule(g, cfg)
		g.RestoreSnapshot(snap)
	}
}
