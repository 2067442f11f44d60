package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Description syntax: w<W>h<H>s<S>g<G>#<tiles>.
const (
	tileSeparator = '#'
	pathChar      = '0'
	wallChar      = '1'
)

// headerFields lists the literal of each numeric header field, in order.
var headerFields = [...]string{"w", "h", "s", "g"}

// token is a lexical unit of a description together with its byte offset.
type token struct {
	text string
	pos  int
}

type charClass int

const (
	classLetter charClass = iota
	classDigit
	classOther
)

func classify(c byte) charClass {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return classLetter
	case c >= '0' && c <= '9':
		return classDigit
	}
	return classOther
}

// tokenize splits desc at letter/digit boundaries and at '#'. Everything
// after the first '#' forms a single trailing token holding the tile run.
// Any other character becomes a token of its own, so it can be reported.
func tokenize(desc string) []token {
	var toks []token
	for i := 0; i < len(desc); {
		c := desc[i]
		if c == tileSeparator {
			toks = append(toks, token{text: desc[i : i+1], pos: i})
			if i+1 < len(desc) {
				toks = append(toks, token{text: desc[i+1:], pos: i + 1})
			}
			break
		}
		cls := classify(c)
		j := i + 1
		if cls != classOther {
			for j < len(desc) && desc[j] != tileSeparator && classify(desc[j]) == cls {
				j++
			}
		}
		toks = append(toks, token{text: desc[i:j], pos: i})
		i = j
	}
	return toks
}

// decoder walks the token stream of one description.
type decoder struct {
	toks []token
	next int
	end  int // len(desc), reported when the stream runs dry
}

func (d *decoder) take(want string) (token, error) {
	if d.next >= len(d.toks) {
		return token{}, fmt.Errorf("%w: expected %s at offset %d", ErrUnexpectedEnding, want, d.end)
	}
	tok := d.toks[d.next]
	d.next++
	return tok, nil
}

func (d *decoder) literal(lit string) error {
	tok, err := d.take(strconv.Quote(lit))
	if err != nil {
		return err
	}
	if tok.text != lit {
		return fmt.Errorf("%w: got %q at offset %d, want %q", ErrInvalidToken, tok.text, tok.pos, lit)
	}
	return nil
}

func (d *decoder) number(field string) (int, error) {
	tok, err := d.take("value of " + strconv.Quote(field))
	if err != nil {
		return 0, err
	}
	if classify(tok.text[0]) != classDigit {
		return 0, fmt.Errorf("%w: got %q at offset %d, want a number for %q",
			ErrInvalidToken, tok.text, tok.pos, field)
	}
	v, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at offset %d: %v", ErrInvalidToken, tok.text, tok.pos, err)
	}
	return v, nil
}

// Decode parses a description of the form "w<W>h<H>s<S>g<G>#<tiles>" where
// tiles is a row-major run of W×H characters, '0' for Path and '1' for Wall.
//
// Errors (all wrap a sentinel, test with errors.Is):
//   - ErrInvalidToken: wrong literal, non-numeric count, stray character,
//     or a tile character other than '0'/'1'.
//   - ErrUnexpectedEnding: the description stops before the tile run,
//     including a trailing '#'.
//   - ErrInvalidSize: the tile run length differs from W×H, or W or H is zero.
//   - ErrInvalidPosition: start or goal outside the grid, or goal on a Wall.
//
// No partially decoded Maze is ever returned.
// Complexity: O(len(desc)).
func Decode(desc string) (*Maze, error) {
	d := &decoder{toks: tokenize(desc), end: len(desc)}

	var vals [len(headerFields)]int
	for k, lit := range headerFields {
		if err := d.literal(lit); err != nil {
			return nil, err
		}
		v, err := d.number(lit)
		if err != nil {
			return nil, err
		}
		vals[k] = v
	}
	if err := d.literal(string(tileSeparator)); err != nil {
		return nil, err
	}
	run, err := d.take("tile data")
	if err != nil {
		return nil, err
	}

	tiles, err := decodeTiles(run)
	if err != nil {
		return nil, err
	}
	width, height, start, goal := vals[0], vals[1], vals[2], vals[3]
	m, err := New(width, height, start, goal, tiles)
	if err != nil {
		return nil, err
	}
	if m.tiles[goal] == Wall {
		return nil, fmt.Errorf("%w: goal %d is a wall", ErrInvalidPosition, goal)
	}
	return m, nil
}

// decodeTiles converts a run of '0'/'1' characters into tiles.
func decodeTiles(run token) ([]Tile, error) {
	tiles := make([]Tile, len(run.text))
	for i := 0; i < len(run.text); i++ {
		switch run.text[i] {
		case pathChar:
			tiles[i] = Path
		case wallChar:
			tiles[i] = Wall
		default:
			return nil, fmt.Errorf("%w: tile %q at offset %d", ErrInvalidToken, run.text[i], run.pos+i)
		}
	}
	return tiles, nil
}

// Encode renders the maze back into the description format accepted by
// Decode.
// Complexity: O(W×H).
func (m *Maze) Encode() string {
	var sb strings.Builder
	sb.Grow(len(m.tiles) + 32)
	fmt.Fprintf(&sb, "w%dh%ds%dg%d%c", m.width, m.height, m.start, m.goal, tileSeparator)
	for _, t := range m.tiles {
		if t == Wall {
			sb.WriteByte(wallChar)
		} else {
			sb.WriteByte(pathChar)
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using Encode.
func (m *Maze) String() string {
	return m.Encode()
}
