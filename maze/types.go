// Package maze defines core types, sentinel errors, and options
// for the maze package of github.com/katalvlaran/floodmaze.
package maze

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for decoding and constructing mazes.
var (
	// ErrInvalidToken indicates a malformed literal, count or tile character.
	ErrInvalidToken = errors.New("maze: invalid token")
	// ErrUnexpectedEnding indicates the description stops before any tile data.
	ErrUnexpectedEnding = errors.New("maze: unexpected end of description")
	// ErrInvalidSize indicates the tile run does not cover width×height cells.
	ErrInvalidSize = errors.New("maze: tile count does not match width×height")
	// ErrInvalidPosition indicates a start or goal index that cannot be used.
	ErrInvalidPosition = errors.New("maze: invalid start or goal position")
)

// Tile classifies a single grid cell.
type Tile uint8

const (
	// Path is a traversable cell, encoded as '0'.
	Path Tile = iota
	// Wall is a blocking cell, encoded as '1'.
	Wall
)

func (t Tile) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Direction names one of the four grid neighbors. The numeric order is the
// scan order used everywhere in this package.
type Direction int

const (
	// North is index - width.
	North Direction = iota
	// South is index + width.
	South
	// West is index - 1.
	West
	// East is index + 1.
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Neighbor is one slot returned by Maze.Neighbors.
// OK is false when the grid has no cell in that direction; Index and Tile are
// then meaningless.
type Neighbor struct {
	Index int
	Tile  Tile
	OK    bool
}

// Maze is a rectangular grid of tiles with a start and a goal cell, plus the
// distance table filled by FloodFill.
//
// The grid itself is immutable once built. The distance table is guarded by
// mu: FloodFill and ResetDistances take the write lock, readers the read lock.
type Maze struct {
	width, height int
	start, goal   int
	tiles         []Tile

	mu      sync.RWMutex
	dist    []int
	reached []bool
}

// TieBreak selects how Solve chooses among neighbors sharing the smallest
// distance.
type TieBreak int

const (
	// TieBreakFixed takes the first minimum in North, South, West, East order.
	TieBreakFixed TieBreak = iota
	// TieBreakStraight prefers the neighbor that continues the previous step,
	// falling back to TieBreakFixed.
	TieBreakStraight
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks that customize Solve.
type Options struct {
	// TieBreak picks the rule for equal-distance neighbors.
	TieBreak TieBreak

	// OnStep is called for every index appended to the path, start included,
	// with its distance to the goal.
	OnStep func(index, distance int)
}

// DefaultOptions returns Options with fixed-order tie-breaking and a no-op
// OnStep hook.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakFixed,
		OnStep:   func(int, int) {},
	}
}

// WithTieBreak sets the tie-breaking rule. Unknown values are ignored.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		if tb == TieBreakFixed || tb == TieBreakStraight {
			o.TieBreak = tb
		}
	}
}

// WithOnStep registers a callback run for each path element.
func WithOnStep(fn func(index, distance int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
