package vcio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vcsolve/vcsolve/vcgraph"
)

// Parse reads the stdin edge-list format into a fresh graph. n is the
// declared vertex count from the "p td <n>" problem line (0 if no problem
// line was present); it is metadata only and never used to size or validate
// the parsed graph, since vertex names are opaque tokens created on first
// mention regardless of what n says.
//
// A line is treated as a comment when its first token is "c" and it does
// not have exactly two tokens. Vertex names are opaque, so "c" itself is a
// legal vertex name and a line like "c a" is an edge, not a comment; a bare
// first-token check would misparse every edge incident to such a vertex.
// Requiring comments to not look like a two-token edge line resolves the
// ambiguity.
func Parse(r io.Reader) (g *vcgraph.Graph, n int, err error) {
	g = vcgraph.NewGraph()
	seen := make(map[[2]vcgraph.VertexID]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "p" {
			if len(fields) >= 3 && fields[1] == "td" {
				if v, convErr := strconv.Atoi(fields[2]); convErr == nil {
					n = v
				}
			}
			continue
		}
		if fields[0] == "c" && len(fields) != 2 {
			continue
		}
		if len(fields) != 2 {
			return nil, 0, fmt.Errorf("vcio: line %d: %w", lineNo, ErrMalformedEdgeLine)
		}

		a := vertexFor(g, fields[0])
		b := vertexFor(g, fields[1])
		if a == b {
			b = cloneVertex(g, fields[1])
		}

		key := edgeKey(a, b)
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, addErr := g.AddEdge(a, b); addErr != nil {
			return nil, 0, fmt.Errorf("vcio: line %d: %w", lineNo, addErr)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, 0, fmt.Errorf("vcio: %w", scanErr)
	}
	return g, n, nil
}

func vertexFor(g *vcgraph.Graph, name string) vcgraph.VertexID {
	if id, ok := g.VertexByName(name); ok {
		return id
	}
	id, _ := g.AddVertex(name) // name is non-empty: it came from strings.Fields
	return id
}

// cloneVertex spawns a dummy vertex for a self-loop's second endpoint, so
// the loop becomes an ordinary edge forcing the original vertex (or its
// clone) into the cover. The clone's display name is disambiguated against
// whatever vertices already exist.
func cloneVertex(g *vcgraph.Graph, name string) vcgraph.VertexID {
	for i := 0; ; i++ {
		candidate := name + "'"
		if i > 0 {
			candidate = fmt.Sprintf("%s'%d", name, i)
		}
		if _, exists := g.VertexByName(candidate); !exists {
			id, _ := g.AddVertex(candidate)
			return id
		}
	}
}

func edgeKey(a, b vcgraph.VertexID) [2]vcgraph.VertexID {
	if a > b {
		a, b = b, a
	}
	return [2]vcgraph.VertexID{a, b}
}
