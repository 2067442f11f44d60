package render_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodmaze/maze"
	"github.com/katalvlaran/floodmaze/render"
)

func solvedSmall(t *testing.T) (*maze.Maze, []int) {
	t.Helper()
	m, err := maze.Decode("w5h5s10g0#0000011101000011010100100")
	require.NoError(t, err)
	m.FloodFill()
	path, ok := m.Solve()
	require.True(t, ok)
	return m, path
}

// TestText draws walls, route, start and goal.
func TestText(t *testing.T) {
	m, path := solvedSmall(t)

	want := "" +
		"G***.\n" +
		"###*#\n" +
		"S***#\n" +
		"#.#.#\n" +
		"..#..\n"
	assert.Equal(t, want, render.Text(m, path))
}

// TestText_NoPath keeps every open cell as GlyphPath and ignores bad indices.
func TestText_NoPath(t *testing.T) {
	m, err := maze.Decode("w3h1s0g2#010")
	require.NoError(t, err)
	assert.Equal(t, "S#G\n", render.Text(m, nil))
	assert.Equal(t, "S#G\n", render.Text(m, []int{-3, 99}))
}

// TestDistanceText pins the flood fill table layout.
func TestDistanceText(t *testing.T) {
	m, _ := solvedSmall(t)

	want := "" +
		" 0  1  2  3  4\n" +
		" #  #  #  4  #\n" +
		" 8  7  6  5  #\n" +
		" #  8  #  6  #\n" +
		"10  9  #  7  8\n"
	assert.Equal(t, want, render.DistanceText(m))
}

// TestNewImage samples cell centers and insets.
func TestNewImage(t *testing.T) {
	m, path := solvedSmall(t)
	img := render.NewImage(m, path)

	c := render.CellPixels
	require.Equal(t, image.Rect(0, 0, 5*c, 5*c), img.Bounds())

	center := func(i int) (int, int) {
		x, y := m.Coordinate(i)
		return x*c + c/2, y*c + c/2
	}
	cases := []struct {
		cell int
		want any
	}{
		{0, render.GoalColor},
		{10, render.StartColor},
		{7, render.WallColor},
		{12, render.RouteColor},
		{16, render.PathColor},
	}
	for _, tc := range cases {
		x, y := center(tc.cell)
		assert.Equal(t, tc.want, img.At(x, y), "cell %d", tc.cell)
	}

	// The corner of a route cell is background, not route.
	x, y := m.Coordinate(12)
	assert.Equal(t, render.PathColor, img.At(x*c, y*c))
	// Outside the bounds nothing is drawn.
	_, _, _, a := img.At(-1, 0).RGBA()
	assert.Zero(t, a)
}

// TestWritePNG round-trips through the png decoder.
func TestWritePNG(t *testing.T) {
	m, path := solvedSmall(t)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, m, path))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	c := render.CellPixels
	assert.Equal(t, 5*c, img.Bounds().Dx())
	assert.Equal(t, 5*c, img.Bounds().Dy())

	// The wall at cell 7 is untouched by the start arrow.
	x, y := m.Coordinate(7)
	r, g, b, _ := img.At(x*c+c/2, y*c+c/2).RGBA()
	assert.Equal(t, [3]uint32{20, 20, 20}, [3]uint32{r >> 8, g >> 8, b >> 8})
}
