package vcgraph

// Modification is one reversible structural rewrite recorded on the
// graph's change log: every reduction rule and branch step that mutates the
// graph pushes a concrete Modification via PushModification, and the log is
// unwound in LIFO order by RestoreSnapshot.
//
// Undo must leave the graph exactly as it was before Apply ran (modulo
// identical vertex/edge IDs, which are never reused). TranslateVC runs once,
// after the whole search is done, walking the log in the same LIFO order to
// expand the raw cover the branch driver accumulated (which may contain
// synthetic gadget/merge vertices) back into a cover over the original
// vertex set.
type Modification interface {
	Undo(g *Graph)
	TranslateVC(g *Graph)
}

// PushModification appends m to the change log. Reduction rules (outside
// this package) call it once per applied rule instance, after performing
// whatever CreateEdge/HideEdge/StealEdge calls the rule needs.
func (g *Graph) PushModification(m Modification) {
	g.changes = append(g.changes, m)
}

// vertexCoveredMod records a single AddToCover call: vertex was pushed onto
// VC.V and its then-incident edges were covered, in the given order.
type vertexCoveredMod struct {
	vertex VertexID
	edges  []EdgeID
}

func (m *vertexCoveredMod) Undo(g *Graph) {
	for i := len(m.edges) - 1; i >= 0; i-- {
		g.uncoverEdge(m.edges[i])
	}
	g.VC.E = g.VC.E[:len(g.VC.E)-len(m.edges)]
	g.VC.V = g.VC.V[:len(g.VC.V)-1]
}

// TranslateVC is a no-op: the vertex is already the correct, final answer
// vertex, not a synthetic stand-in.
func (m *vertexCoveredMod) TranslateVC(g *Graph) {}

// vertexExcludedMod records a single DeleteVertex call: vertex was removed
// from the active graph (its incident edges hidden) without being added to
// the cover.
type vertexExcludedMod struct {
	vertex VertexID
	edges  []EdgeID
}

func (m *vertexExcludedMod) Undo(g *Graph) {
	for i := len(m.edges) - 1; i >= 0; i-- {
		g.uncoverEdge(m.edges[i])
	}
}

func (m *vertexExcludedMod) TranslateVC(g *Graph) {}

// AddToCoverLogged is AddToCover plus automatic change-log bookkeeping; this
// is what the branch driver and simple reduction rules (degree-1, clique
// bound tightening is not one of these) should call instead of AddToCover
// directly, so the pick survives a later RestoreSnapshot.
func (g *Graph) AddToCoverLogged(id VertexID) {
	edges := g.AddToCover(id)
	g.PushModification(&vertexCoveredMod{vertex: id, edges: edges})
}

// DeleteVertexLogged is DeleteVertex plus change-log bookkeeping.
func (g *Graph) DeleteVertexLogged(id VertexID) {
	edges := g.DeleteVertex(id)
	g.PushModification(&vertexExcludedMod{vertex: id, edges: edges})
}
