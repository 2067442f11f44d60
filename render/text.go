// Package render draws a maze and an optional solved path, either as text
// for terminals or as an image for files. It only uses the maze's public
// read surface.
package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/floodmaze/maze"
)

// Glyphs used by Text.
const (
	GlyphWall  = '#'
	GlyphPath  = '.'
	GlyphRoute = '*'
	GlyphStart = 'S'
	GlyphGoal  = 'G'
)

// Text renders m one row per line. Cells on path are drawn with GlyphRoute;
// start and goal always keep their own glyphs. path may be nil.
// Complexity: O(W×H + len(path)).
func Text(m *maze.Maze, path []int) string {
	onPath := pathSet(m, path)

	var sb strings.Builder
	sb.Grow((m.Width() + 1) * m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			i := m.Index(x, y)
			switch {
			case i == m.Start():
				sb.WriteByte(GlyphStart)
			case i == m.Goal():
				sb.WriteByte(GlyphGoal)
			case m.Tile(i) == maze.Wall:
				sb.WriteByte(GlyphWall)
			case onPath[i]:
				sb.WriteByte(GlyphRoute)
			default:
				sb.WriteByte(GlyphPath)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DistanceText renders the flood fill table as right-aligned numbers, one row
// per line; walls print as GlyphWall and unreached path cells as GlyphPath.
func DistanceText(m *maze.Maze) string {
	dist := m.Distances()
	width := 1
	for _, d := range dist {
		if n := len(strconv.Itoa(d)); d >= 0 && n > width {
			width = n
		}
	}

	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			i := m.Index(x, y)
			cell := string(GlyphPath)
			switch {
			case m.Tile(i) == maze.Wall && dist[i] < 0:
				cell = string(GlyphWall)
			case dist[i] >= 0:
				cell = strconv.Itoa(dist[i])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pathSet marks the in-range indices of path.
func pathSet(m *maze.Maze, path []int) []bool {
	set := make([]bool, m.Len())
	for _, i := range path {
		if i >= 0 && i < len(set) {
			set[i] = true
		}
	}
	return set
}
