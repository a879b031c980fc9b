// Command vccover reads a vertex-cover instance from stdin and writes a
// proven-minimum cover to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vcsolve/vcsolve/solve"
	"github.com/vcsolve/vcsolve/vcconfig"
	"github.com/vcsolve/vcsolve/vcio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vccover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a KEY VALUE configuration file (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	// A bare positional argument is accepted as the configuration file too,
	// so "vccover solver.conf < instance" works without the flag.
	if *configPath == "" && fs.NArg() > 0 {
		*configPath = fs.Arg(0)
	}

	cfg := vcconfig.Default()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "vccover: %v\n", err)
			return 1
		}
		defer f.Close()
		cfg, err = vcconfig.Load(f)
		if err != nil {
			fmt.Fprintf(stderr, "vccover: %v\n", err)
			return 1
		}
	}

	g, n, err := vcio.Parse(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "vccover: %v\n", err)
		return 1
	}
	if n == 0 {
		n = g.NumVerticesTotal()
	}

	res := solve.Solve(g, cfg)

	if err := vcio.WriteCover(stdout, g, n, res.Stats.RecursiveSteps, res.Stats.ReductionApplications); err != nil {
		fmt.Fprintf(stderr, "vccover: %v\n", err)
		return 1
	}
	return 0
}
