package vcio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// WriteCover writes the final result: "c "-prefixed statistics lines, a
// header "s vc <n> <|VC|>", then one vertex name per line for every cover
// member. n is the problem's declared vertex count (the "p td <n>" line);
// recursiveSteps and reductionApplications come from the solver's Stats.
func WriteCover(w io.Writer, g *vcgraph.Graph, n, recursiveSteps, reductionApplications int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "c recursive steps: %d\n", recursiveSteps)
	fmt.Fprintf(bw, "c reduction applications: %d\n", reductionApplications)
	fmt.Fprintf(bw, "c cover size: %d\n", len(g.VC.V))
	fmt.Fprintf(bw, "s vc %d %d\n", n, len(g.VC.V))

	for _, v := range g.VC.V {
		if _, err := fmt.Fprintln(bw, g.Vertex(v).Name); err != nil {
			return err
		}
	}

	return bw.Flush()
}
