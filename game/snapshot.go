package game

// Snapshot is the read-only view handed to a decision. Grid is shared by
// reference; everything else is copied, so a Snapshot may be rebuilt freely per
// turn or per search node.
type Snapshot struct {
	Grid     *Grid
	Pursuers [2]Position
	// Evader is nil when the evader's position is not available this turn.
	Evader *Position
	// Visible is set once a pursuer has confirmed the evader this turn.
	Visible bool
	// Previous holds the pursuers' positions before their last committed move.
	Previous [2]Position
}

// EvaderAt returns a pointer to a copy of p, for building snapshots.
func EvaderAt(p Position) *Position {
	return &p
}
