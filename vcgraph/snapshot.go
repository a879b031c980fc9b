package vcgraph

// Snapshot is an O(1) restore point. It only records lengths: the
// modification log, VC.V and VC.E are all append-only between a snapshot and
// its restore, so truncation is enough to undo everything recorded since.
//
// A single AddToCoverLogged/DeleteVertexLogged call already coalesces all of
// the edges it touches into one log entry. Deliberately, that coalescing
// never reaches across a CreateSnapshot call: each logged call opens its own
// entry, so two calls that happen to straddle a snapshot boundary are never
// merged and a restore can always truncate at the recorded length.
type Snapshot struct {
	changesLen int
	vcVLen     int
	vcELen     int
}

// CreateSnapshot records the current graph state and returns a token that
// RestoreSnapshot can later roll back to.
func (g *Graph) CreateSnapshot() Snapshot {
	return Snapshot{
		changesLen: len(g.changes),
		vcVLen:     len(g.VC.V),
		vcELen:     len(g.VC.E),
	}
}

// RestoreSnapshot undoes every modification recorded since s was taken, in
// LIFO order, and truncates VC.V/VC.E back to their recorded lengths.
func (g *Graph) RestoreSnapshot(s Snapshot) {
	for len(g.changes) > s.changesLen {
		m := g.changes[len(g.changes)-1]
		g.changes = g.changes[:len(g.changes)-1]
		m.Undo(g)
	}
	g.VC.V = g.VC.V[:s.vcVLen]
	g.VC.E = g.VC.E[:s.vcELen]
}

// TranslateSolution walks the modification log in LIFO order once, after the
// search has produced its final VC.V, expanding any synthetic gadget or
// merge vertices it contains into real answer vertices. Callers should only
// invoke this on the graph's outermost, fully-solved state.
func (g *Graph) TranslateSolution() {
	for i := len(g.changes) - 1; i >= 0; i-- {
		g.changes[i].TranslateVC(g)
	}
}
