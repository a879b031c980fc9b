package vcgraph

// AddVertex inserts a new named vertex and returns its ID. Names need not be
// unique from the graph's point of view (the parser guarantees uniqueness
// via VertexByName before calling this); synthetic vertices created by
// reduction rules are never named and so never touch nameIndex.
func (g *Graph) AddVertex(name string) (VertexID, error) {
	if name == "" {
		return NilVertex, ErrEmptyName
	}
	id := g.allocVertex(name)
	g.nameIndex[name] = id

	return id, nil
}

// allocVertex creates a degree-0 (retired) vertex record and notifies
// observers. It never fails.
func (g *Graph) allocVertex(name string) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{
		ID:     id,
		Name:   name,
		posV:   -1,
		posDeg: -1,
	})
	g.notifyVertexCreated(id)

	return id
}

// AddEdge creates an uncovered edge between a and b, bumping both
// endpoints' degree. It does not check for parallel edges or self-loops
// other than rejecting a == b; the stdin parser is responsible for
// deduplication and for self-loop handling (spawning a dummy clone).
func (g *Graph) AddEdge(a, b VertexID) (EdgeID, error) {
	if a == b {
		return -1, ErrSelfLoop
	}
	return g.createEdge(a, b), nil
}

// createEdge is the low-level primitive shared by AddEdge and every
// reduction rule that introduces a gadget edge (deg-3 independent set,
// clique-neighborhood, "undeg-3"). It performs no validation.
func (g *Graph) createEdge(a, b VertexID) EdgeID {
	id := EdgeID(len(g.edges))
	e := &Edge{ID: id, end: [2]VertexID{a, b}}
	g.edges = append(g.edges, e)

	va, vb := g.vertices[a], g.vertices[b]
	e.pos[0] = len(va.edges)
	va.edges = append(va.edges, edgeSlot{other: b, edge: id})
	e.pos[1] = len(vb.edges)
	vb.edges = append(vb.edges, edgeSlot{other: a, edge: id})

	e.posE = len(g.e)
	g.e = append(g.e, id)

	g.vertChangeDeg(a, va.deg+1)
	g.vertChangeDeg(b, vb.deg+1)

	return id
}
