package game

import (
	"errors"
	"fmt"
	"pursuit/utils"
)

// Cell is the state of one grid square. The integer values match the grid input
// contract: FREE=0, WALL=1.
type Cell int

const (
	Free Cell = iota
	Wall
)

var ErrMalformedGrid = errors.New("malformed grid")

// Grid is a static rectangular board. Cells are stored row-major and always
// addressed as (x, y): column x of row y. A Grid is never mutated after
// construction and may be shared by reference.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns an all-FREE grid with the given walls.
func NewGrid(width, height int, walls ...Position) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", width, height))
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for _, w := range walls {
		if !g.InBounds(w) {
			panic(fmt.Sprintf("wall %s is out of bounds", w))
		}
		g.cells[g.index(w)] = Wall
	}
	return g
}

// FromMatrix builds a grid from rows of cell codes; rows[y][x] is cell (x, y).
func FromMatrix(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformedGrid)
	}
	width := len(rows[0])
	g := &Grid{width: width, height: len(rows), cells: make([]Cell, width*len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, y, len(row), width)
		}
		for x, code := range row {
			switch Cell(code) {
			case Free, Wall:
				g.cells[y*width+x] = Cell(code)
			default:
				return nil, fmt.Errorf("%w: unknown cell code %d at (%d,%d)", ErrMalformedGrid, code, x, y)
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Out-of-bounds positions read as WALL.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// IsFree reports whether p is in bounds and not a wall.
func (g *Grid) IsFree(p Position) bool {
	return g.At(p) == Free
}

// Neighbors returns the in-bounds FREE 4-neighbors of p, skipping occupied cells.
func (g *Grid) Neighbors(p Position, occupied ...Position) []Position {
	neighbors := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		next := p.Add(d)
		if !g.IsFree(next) || utils.FindIndex(occupied, next) >= 0 {
			continue
		}
		neighbors = append(neighbors, next)
	}
	return neighbors
}

// Obstructed is a grid view with extra temporarily impassable cells. It is the
// graph searched by the path planners.
type Obstructed struct {
	Grid     *Grid
	Occupied []Position
}

func (o Obstructed) Neighbors(p Position) []Position {
	return o.Grid.Neighbors(p, o.Occupied...)
}
