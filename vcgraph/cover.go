package vcgraph

// InCover reports whether id currently appears in VC.V. It is used by
// Modification.TranslateVC implementations that need to decide between
// back-translation cases based on a vertex's final cover membership.
func (g *Graph) InCover(id VertexID) bool {
	for _, x := range g.VC.V {
		if x == id {
			return true
		}
	}
	return false
}

// ReplaceCoverMember removes old from VC.V, if present, and appends each of
// with, in order. It is the primitive TranslateVC implementations use to
// swap a synthetic placeholder vertex for the real vertices it stood in
// for.
func (g *Graph) ReplaceCoverMember(old VertexID, with ...VertexID) {
	for i, x := range g.VC.V {
		if x == old {
			g.VC.V = append(g.VC.V[:i], g.VC.V[i+1:]...)
			break
		}
	}
	g.VC.V = append(g.VC.V, with...)
}

// AppendCoverMember appends id directly to VC.V, with no edge bookkeeping.
// TranslateVC implementations use this once the search is over and the
// edges that would normally drive AddToCover's accounting no longer exist
// in their original form.
func (g *Graph) AppendCoverMember(id VertexID) {
	g.VC.V = append(g.VC.V, id)
}
