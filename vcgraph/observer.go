package vcgraph

// Observer lets another package (the bipartite matcher) maintain
// incrementally-updated state without vcgraph depending on it. Every
// observer hook fires synchronously from within the mutating call; observers
// must not themselves call back into the Graph.
//
// vcgraph stays ignorant of who observes it; the matcher registers for the
// duration of one bound evaluation and deregisters before any rollback.
type Observer interface {
	// VertexCreated fires once, right after a vertex is allocated (by
	// AddVertex, or by a reduction rule that introduces a synthetic
	// vertex such as a degree-2 fold or a gadget).
	VertexCreated(id VertexID)

	// VertexRetired fires whenever a vertex's degree drops to 0, whether
	// because it was covered, added to the cover, or merged away.
	VertexRetired(id VertexID)

	// EdgeRemoved fires whenever an edge leaves the uncovered-edge set E,
	// whether because it was covered or because a gadget rule deleted it
	// outright.
	EdgeRemoved(id EdgeID)
}

// AddObserver registers o to receive future mutation callbacks. Observers
// are notified in registration order.
func (g *Graph) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// RemoveObserver deregisters o. Observers with a bounded lifetime (the
// matcher lives only for one bound evaluation) must deregister before the
// graph is rolled back past their registration point, since rollback does
// not replay mutations through the observer hooks.
func (g *Graph) RemoveObserver(o Observer) {
	for i, x := range g.observers {
		if x == o {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return
		}
	}
}

func (g *Graph) notifyVertexCreated(id VertexID) {
	for _, o := range g.observers {
		o.VertexCreated(id)
	}
}

func (g *Graph) notifyVertexRetired(id VertexID) {
	for _, o := range g.observers {
		o.VertexRetired(id)
	}
}

func (g *Graph) notifyEdgeRemoved(id EdgeID) {
	for _, o := range g.observers {
		o.EdgeRemoved(id)
	}
}
