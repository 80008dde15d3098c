package searcher

// mockState is an explicit game tree. Moves are child indices.
type mockState struct {
	max      bool
	value    float64
	children []*mockState
	terminal bool
}

func (m *mockState) Maximizing() bool { return m.max }

func (m *mockState) LegalMoves() []int {
	moves := make([]int, len(m.children))
	for i := range m.children {
		moves[i] = i
	}
	return moves
}

func (m *mockState) Play(move int) State[int] {
	return m.children[move]
}

func (m *mockState) Terminal() bool    { return m.terminal }
func (m *mockState) Evaluate() float64 { return m.value }

func leaf(v float64) *mockState {
	return &mockState{value: v}
}

func maxNode(children ...*mockState) *mockState {
	return &mockState{max: true, children: children}
}

func minNode(children ...*mockState) *mockState {
	return &mockState{max: false, children: children}
}

// textbookTree is the classic depth-3 alpha-beta example with a maximizing root.
func textbookTree() *mockState {
	return maxNode(
		minNode(maxNode(leaf(3), leaf(5)), maxNode(leaf(6), leaf(9))),
		minNode(maxNode(leaf(1), leaf(2)), maxNode(leaf(0), leaf(-1))),
		minNode(maxNode(leaf(4), leaf(7)), maxNode(leaf(8), leaf(2))),
	)
}
