package evader

import "pursuit/game"

// heatMap counts entries per cell, row-major like game.Grid. Counters only grow.
type heatMap struct {
	width  int
	height int
	counts []int
}

func newHeatMap(width, height int) *heatMap {
	if width <= 0 || height <= 0 {
		panic("heat map dimensions must be positive")
	}
	return &heatMap{width: width, height: height, counts: make([]int, width*height)}
}

func (h *heatMap) inBounds(p game.Position) bool {
	return p.X >= 0 && p.X < h.width && p.Y >= 0 && p.Y < h.height
}

func (h *heatMap) at(p game.Position) int {
	if h == nil || !h.inBounds(p) {
		return 0
	}
	return h.counts[p.Y*h.width+p.X]
}

func (h *heatMap) visit(p game.Position) {
	if h.inBounds(p) {
		h.counts[p.Y*h.width+p.X]++
	}
}
