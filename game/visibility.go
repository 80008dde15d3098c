package game

import (
	"fmt"
	"pursuit/utils"
)

// Policy selects how an observer senses a target.
type Policy int

const (
	// DistanceOnly detects anything within the radius, walls notwithstanding.
	DistanceOnly Policy = iota
	// LineOfSight additionally requires an unobstructed raster line.
	LineOfSight
)

func (p Policy) String() string {
	if p == LineOfSight {
		return "line-of-sight"
	}
	return "distance"
}

// ParsePolicy maps "distance" and "line-of-sight" (or "los") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "distance", "":
		return DistanceOnly, nil
	case "line-of-sight", "los":
		return LineOfSight, nil
	}
	return DistanceOnly, fmt.Errorf("unknown sensing policy %q", s)
}

// CanDetect reports whether observer senses target: Manhattan distance within
// radius and, under LineOfSight, no WALL strictly between the two cells.
func CanDetect(observer, target Position, grid *Grid, radius int, policy Policy) bool {
	if Manhattan(observer, target) > radius {
		return false
	}
	if policy == DistanceOnly {
		return true
	}
	return Visible(grid, observer, target)
}

// Visible walks the Bresenham line from a to b and fails on the first WALL
// between the endpoints. It takes at most max(|dx|,|dy|) steps.
func Visible(grid *Grid, a, b Position) bool {
	dx := utils.Abs(b.X - a.X)
	dy := utils.Abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy

	x, y := a.X, a.Y
	for {
		if x == b.X && y == b.Y {
			return true
		}
		if (x != a.X || y != a.Y) && grid.At(Position{X: x, Y: y}) == Wall {
			return false
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Sensor bundles a radius with a policy for one observer.
type Sensor struct {
	Radius int
	Policy Policy
}

func (s Sensor) Detects(grid *Grid, observer, target Position) bool {
	return CanDetect(observer, target, grid, s.Radius, s.Policy)
}

// Filter returns the targets the observer detects, preserving order.
func (s Sensor) Filter(grid *Grid, observer Position, targets []Position) []Position {
	var seen []Position
	for _, t := range targets {
		if s.Detects(grid, observer, t) {
			seen = append(seen, t)
		}
	}
	return seen
}
