package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodmaze/maze"
)

const (
	small = "w5h5s10g0#0000011101000011010100100"
	seven = "w7h7s7g41#1111111000010111101011000101101110110000001111111"
)

//----------------------------------------------------------------------------//
// Decode
//----------------------------------------------------------------------------//

// TestDecode_Small checks header fields and a couple of tiles of the 5×5 sample.
func TestDecode_Small(t *testing.T) {
	m, err := maze.Decode(small)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, 10, m.Start())
	assert.Equal(t, 0, m.Goal())
	assert.Equal(t, 25, m.Len())
	assert.Equal(t, maze.Path, m.Tile(0))
	assert.Equal(t, maze.Wall, m.Tile(7))

	// Nothing has been flooded yet.
	for i := 0; i < m.Len(); i++ {
		_, ok := m.Distance(i)
		assert.False(t, ok, "distance of %d set before FloodFill", i)
	}
}

// TestDecode_Errors verifies that every malformed description is rejected
// with the matching sentinel and no Maze.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		desc string
		err  error
	}{
		{"Empty", "", maze.ErrUnexpectedEnding},
		{"TrailingHash", "w2h1s0g1#", maze.ErrUnexpectedEnding},
		{"NoHash", "w2h1s0g1", maze.ErrUnexpectedEnding},
		{"HeaderCut", "w2h1", maze.ErrUnexpectedEnding},
		{"WrongLiteral", "w2x1s0g1#00", maze.ErrInvalidToken},
		{"UpperCaseLiteral", "W2h1s0g1#00", maze.ErrInvalidToken},
		{"SwappedFields", "h1w2s0g1#00", maze.ErrInvalidToken},
		{"MissingCount", "wh1s0g1#00", maze.ErrInvalidToken},
		{"NegativeCount", "w-2h1s0g1#00", maze.ErrInvalidToken},
		{"HugeCount", "w99999999999999999999h1s0g1#00", maze.ErrInvalidToken},
		{"StrayBeforeHash", "w2h1s0g1x#00", maze.ErrInvalidToken},
		{"BadTileChar", "w2h1s0g1#0a", maze.ErrInvalidToken},
		{"TileTwo", "w2h1s0g1#02", maze.ErrInvalidToken},
		{"ShortRun", "w2h2s0g1#000", maze.ErrInvalidSize},
		{"LongRun", "w2h1s0g1#000", maze.ErrInvalidSize},
		{"ZeroWidth", "w0h1s0g0#0", maze.ErrInvalidSize},
		{"StartOutside", "w2h1s2g1#00", maze.ErrInvalidPosition},
		{"GoalOutside", "w2h1s0g5#00", maze.ErrInvalidPosition},
		{"GoalOnWall", "w2h1s0g1#01", maze.ErrInvalidPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Decode(tc.desc)
			if !errors.Is(err, tc.err) {
				t.Errorf("Decode(%q) error = %v; want %v", tc.desc, err, tc.err)
			}
			if m != nil {
				t.Errorf("Decode(%q) returned a maze alongside error", tc.desc)
			}
		})
	}
}

// TestDecode_StartOnWall is accepted: the maze is simply unsolvable.
func TestDecode_StartOnWall(t *testing.T) {
	m, err := maze.Decode("w2h1s0g1#10")
	require.NoError(t, err)
	assert.Equal(t, maze.Wall, m.Tile(m.Start()))
}

//----------------------------------------------------------------------------//
// Encode
//----------------------------------------------------------------------------//

// TestEncode_RoundTrip checks that Encode reproduces the input exactly.
func TestEncode_RoundTrip(t *testing.T) {
	for _, desc := range []string{small, seven, "w1h1s0g0#0"} {
		m, err := maze.Decode(desc)
		require.NoError(t, err)
		assert.Equal(t, desc, m.Encode())
		assert.Equal(t, desc, m.String())
	}
}

// TestEncode_FromNew covers mazes built programmatically.
func TestEncode_FromNew(t *testing.T) {
	m, err := maze.New(3, 1, 0, 2, []maze.Tile{maze.Path, maze.Wall, maze.Path})
	require.NoError(t, err)
	assert.Equal(t, "w3h1s0g2#010", m.Encode())
}
