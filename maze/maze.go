package maze

import (
	"fmt"
	"math"
)

// New constructs a Maze from a row-major tile slice of length width×height.
// It deep-copies tiles so later changes to the argument do not leak in.
// The distance table starts empty.
//
// Returns ErrInvalidSize if width or height is not positive or the slice
// length differs from width×height, ErrInvalidToken for a tile value other
// than Path or Wall, and ErrInvalidPosition if start or goal lies outside the
// grid. A Wall goal is accepted here; Decode is stricter.
// Complexity: O(W×H) time and memory.
func New(width, height, start, goal int, tiles []Tile) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidSize, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d grid overflows", ErrInvalidSize, width, height)
	}
	n := width * height
	if len(tiles) != n {
		return nil, fmt.Errorf("%w: got %d tiles, want %d", ErrInvalidSize, len(tiles), n)
	}
	for i, t := range tiles {
		if t != Path && t != Wall {
			return nil, fmt.Errorf("%w: tile %d has value %d", ErrInvalidToken, i, uint8(t))
		}
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d outside [0,%d)", ErrInvalidPosition, start, n)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal %d outside [0,%d)", ErrInvalidPosition, goal, n)
	}

	cells := make([]Tile, n)
	copy(cells, tiles)

	return &Maze{
		width:   width,
		height:  height,
		start:   start,
		goal:    goal,
		tiles:   cells,
		dist:    make([]int, n),
		reached: make([]bool, n),
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the flat index of the start cell.
func (m *Maze) Start() int { return m.start }

// Goal returns the flat index of the goal cell.
func (m *Maze) Goal() int { return m.goal }

// Len returns the number of cells, width×height.
func (m *Maze) Len() int { return len(m.tiles) }

// Tile returns the classification of cell i. It panics if i is out of range,
// like a slice index would.
func (m *Maze) Tile(i int) Tile { return m.tiles[i] }

// Tiles returns a copy of the row-major tile slice.
func (m *Maze) Tiles() []Tile {
	out := make([]Tile, len(m.tiles))
	copy(out, m.tiles)
	return out
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (m *Maze) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *Maze) Coordinate(i int) (x, y int) {
	return i % m.width, i / m.width
}

// Neighbors returns the four grid neighbors of index i in North, South, West,
// East order. A slot has OK == false only at the true grid boundary; wall
// status is reported through Tile and never hides a slot.
// Complexity: O(1).
func (m *Maze) Neighbors(i int) [4]Neighbor {
	var out [4]Neighbor
	x := i % m.width
	n := len(m.tiles)

	if i-m.width >= 0 {
		out[North] = m.neighbor(i - m.width)
	}
	if i+m.width < n {
		out[South] = m.neighbor(i + m.width)
	}
	if x != 0 {
		out[West] = m.neighbor(i - 1)
	}
	if x != m.width-1 {
		out[East] = m.neighbor(i + 1)
	}
	return out
}

func (m *Maze) neighbor(i int) Neighbor {
	return Neighbor{Index: i, Tile: m.tiles[i], OK: true}
}

// openNeighbors appends to buf the Path neighbors of i, tagged with their
// direction, in scan order.
func (m *Maze) openNeighbors(i int, buf []step) []step {
	for d, nb := range m.Neighbors(i) {
		if nb.OK && nb.Tile == Path {
			buf = append(buf, step{index: nb.Index, dir: Direction(d)})
		}
	}
	return buf
}

// step is a neighbor index together with the direction taken to reach it.
type step struct {
	index int
	dir   Direction
}
