package pathfind

import "container/heap"

// Graph is generic over node type N.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []NodeType
}

// Heuristic estimates the remaining cost from node to the fixed goal.
type Heuristic[NodeType comparable] func(node NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	// Path runs from start to goal inclusive; nil when not found.
	Path          []NodeType
	Cost          int
	ExpandedNodes int
	Found         bool
}

// Search runs A* from start to goal with unit edge weights. A node's priority
// is g + h(node); the start is seeded with priority 0. It stops when the goal
// is popped or the frontier empties.
func Search[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
) Result[NodeType] {
	open := make(frontier[NodeType], 0)
	heap.Init(&open)

	seq := 0
	heap.Push(&open, &entry[NodeType]{priority: 0, seq: seq, node: startNode})

	cameFrom := make(map[NodeType]NodeType)
	gScore := map[NodeType]int{startNode: 0}
	closed := make(map[NodeType]bool)

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(&open).(*entry[NodeType])
		if closed[current.node] {
			continue
		}
		closed[current.node] = true
		expanded++

		if current.node == goalNode {
			return Result[NodeType]{
				Path:          reconstructPath(cameFrom, current.node, startNode),
				Cost:          current.gScore,
				ExpandedNodes: expanded,
				Found:         true,
			}
		}

		for _, next := range graph.Neighbors(current.node) {
			if closed[next] {
				continue
			}
			tentative := current.gScore + 1
			if prev, ok := gScore[next]; ok && tentative >= prev {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = current.node
			seq++
			heap.Push(&open, &entry[NodeType]{
				priority: float64(tentative) + heuristic(next),
				seq:      seq,
				node:     next,
				gScore:   tentative,
			})
		}
	}

	return Result[NodeType]{ExpandedNodes: expanded}
}

func reconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
