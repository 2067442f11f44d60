package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/floodmaze/maze"
)

// CellPixels is the edge length, in pixels, of one maze cell in NewImage.
// Must be at least 4 so the route inset stays visible.
const CellPixels = 12

// Colors used by the image renderer.
var (
	WallColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	PathColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RouteColor = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	StartColor = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	GoalColor  = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// cellRole decides how a cell is painted.
type cellRole uint8

const (
	roleWall cellRole = iota
	rolePath
	roleRoute
	roleStart
	roleGoal
)

func (r cellRole) String() string {
	switch r {
	case roleWall:
		return "wall"
	case rolePath:
		return "path"
	case roleRoute:
		return "route"
	case roleStart:
		return "start"
	case roleGoal:
		return "goal"
	}
	return fmt.Sprintf("Unknown cellRole: %d", uint8(r))
}

// gridImage satisfies image.Image by painting each maze cell as a
// CellPixels×CellPixels square.
type gridImage struct {
	width, height int
	roles         []cellRole
}

// NewImage returns an image.Image view of m with path highlighted. The view
// is a snapshot: later flood fills do not change it.
func NewImage(m *maze.Maze, path []int) image.Image {
	onPath := pathSet(m, path)
	roles := make([]cellRole, m.Len())
	for i := range roles {
		switch {
		case i == m.Start():
			roles[i] = roleStart
		case i == m.Goal():
			roles[i] = roleGoal
		case m.Tile(i) == maze.Wall:
			roles[i] = roleWall
		case onPath[i]:
			roles[i] = roleRoute
		default:
			roles[i] = rolePath
		}
	}
	return &gridImage{width: m.Width(), height: m.Height(), roles: roles}
}

func (g *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (g *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.width*CellPixels, g.height*CellPixels)
}

func (g *gridImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= g.width*CellPixels || y >= g.height*CellPixels {
		return color.Transparent
	}
	role := g.roles[(y/CellPixels)*g.width+x/CellPixels]
	switch role {
	case roleWall:
		return WallColor
	case rolePath:
		return PathColor
	}
	// Route, start and goal cells get a colored square inset by a quarter
	// cell so neighboring highlights stay distinguishable.
	px, py := x%CellPixels, y%CellPixels
	inset := CellPixels / 4
	if px < inset || py < inset || px >= CellPixels-inset || py >= CellPixels-inset {
		return PathColor
	}
	switch role {
	case roleStart:
		return StartColor
	case roleGoal:
		return GoalColor
	}
	return RouteColor
}

// WritePNG rasterizes m (with path highlighted) and writes it as PNG to w.
// An arrow marks the start cell, pointing toward the first step of path.
func WritePNG(w io.Writer, m *maze.Maze, path []int) error {
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(NewImage(m, path), image.Pt(0, 0)); err != nil {
		return fmt.Errorf("render: setting base maze image: %w", err)
	}

	if len(path) > 1 {
		arrow := image_utils.ResizeImage(startArrow(m, path[0], path[1]), CellPixels, CellPixels)
		x, y := m.Coordinate(path[0])
		if err := composite.AddImage(arrow, image.Pt(x*CellPixels, y*CellPixels)); err != nil {
			return fmt.Errorf("render: adding start arrow: %w", err)
		}
	}

	if err := png.Encode(w, image_utils.ToRGBA(composite)); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

// startArrow picks the arrow glyph for the move from→to.
func startArrow(m *maze.Maze, from, to int) image.Image {
	switch to - from {
	case -m.Width():
		return image_utils.UpArrow(StartColor)
	case m.Width():
		return image_utils.DownArrow(StartColor)
	case -1:
		return image_utils.LeftArrow(StartColor)
	}
	return image_utils.RightArrow(StartColor)
}
