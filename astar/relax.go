package astar

// RelaxProposal records a neighbor update accepted during one expansion.
type RelaxProposal struct {
	FromNode Coord
	ToNode   Coord
	GScore   int
	FCost    int
	// Inserted is true when ToNode entered the open set, false for a
	// decrease-key on a node already queued.
	Inserted bool
}
