package solve

// Stats counts solver activity for diagnostics (the "c "-prefixed
// statistics lines a caller may want to print). RecursiveSteps counts every
// evaluate call, including the ones the reconstruction pass makes to size
// its branches; the reconstruction pass's own recursion is not counted.
type Stats struct {
	RecursiveSteps        int
	ReductionApplications int
}

// Result is the outcome of a complete Solve call.
type Result struct {
	// CoverSize is the proven-minimum cover size, after back-translation of
	// any synthetic gadget/merge vertices to original ones.
	CoverSize int
	Stats     Stats
}
