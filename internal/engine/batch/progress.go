package batch

// Progress describes how far a chunked run has advanced. A copy is handed
// to the progress callback after every chunk.
type Progress struct {
	// TotalItems is the size of the full input.
	TotalItems int
	// Processed is the number of items completed so far.
	Processed int
	// TotalChunks is the number of chunks the input was split into.
	TotalChunks int
	// ChunksDone is the number of chunks completed so far.
	ChunksDone int
}

// Percent returns completion as a 0-100 percentage. An empty input reports
// 100 immediately.
func (p Progress) Percent() float64 {
	if p.TotalItems == 0 {
		return 100
	}
	return float64(p.Processed) / float64(p.TotalItems) * 100
}

// Done reports whether every item has been processed.
func (p Progress) Done() bool {
	return p.Processed >= p.TotalItems
}
