package buffer

import (
	"math"
	"unicode"
)

// The cursor lives in the buffer package because it needs the buffer to know
// where lines end and how it can move. The buffer is the city, and the Cursor
// is the car.

type position struct {
	line int
	col  int
}

// A Cursor's functions emulate common cursor actions. Cursors are values:
// every movement returns the moved Cursor and leaves the receiver alone.
type Cursor struct {
	buffer *Buffer
	position
}

func NewCursor(in *Buffer) Cursor {
	return Cursor{
		buffer: in,
	}
}

func (c Cursor) Left() Cursor {
	if c.col == 0 && c.line != 0 { // At the beginning of a line, go to the end of the one above
		c.line--
		c.col = (*c.buffer).RunesInLine(c.line)
	} else {
		c.col = max(c.col-1, 0)
	}
	return c
}

func (c Cursor) Right() Cursor {
	if c.col >= (*c.buffer).RunesInLine(c.line) && c.line < (*c.buffer).Lines()-1 {
		c.line, c.col = c.line+1, 0
	} else {
		c.line, c.col = (*c.buffer).ClampLineCol(c.line, c.col+1)
	}
	return c
}

func (c Cursor) Up() Cursor {
	if c.line == 0 {
		c.line, c.col = 0, 0
	} else {
		c.line, c.col = (*c.buffer).ClampLineCol(c.line-1, c.col)
	}
	return c
}

func (c Cursor) Down() Cursor {
	if c.line == (*c.buffer).Lines()-1 {
		c.line, c.col = (*c.buffer).ClampLineCol(c.line, math.MaxInt32)
	} else {
		c.line, c.col = (*c.buffer).ClampLineCol(c.line+1, c.col)
	}
	return c
}

// NextWordBoundaryEnd moves to the position after the end of the next run of
// same-classed runes on the current line, skipping whitespace before it. At
// the end of a line it moves to the start of the next.
func (c Cursor) NextWordBoundaryEnd() Cursor {
	runes := []rune(string(c.lineText()))
	if c.col >= len(runes) {
		return c.Right()
	}

	col := c.col
	for col < len(runes) && runeCharclass(runes[col]) == charwhitespace {
		col++
	}
	if col < len(runes) {
		class := runeCharclass(runes[col])
		for col < len(runes) && runeCharclass(runes[col]) == class {
			col++
		}
	}
	c.col = col
	return c
}

// PrevWordBoundaryStart moves to the start of the previous run of
// same-classed runes on the current line, skipping whitespace before the
// cursor. At the start of a line it moves to the end of the previous one.
func (c Cursor) PrevWordBoundaryStart() Cursor {
	if c.col == 0 {
		return c.Left()
	}
	runes := []rune(string(c.lineText()))

	col := min(c.col, len(runes))
	for col > 0 && runeCharclass(runes[col-1]) == charwhitespace {
		col--
	}
	if col > 0 {
		class := runeCharclass(runes[col-1])
		for col > 0 && runeCharclass(runes[col-1]) == class {
			col--
		}
	}
	c.col = col
	return c
}

func (c Cursor) lineText() []byte {
	line := (*c.buffer).Line(c.line)
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func (c Cursor) GetLineCol() (line, col int) {
	return c.line, c.col
}

// SetLineCol sets the line and col of the Cursor to those provided. `line` is
// clamped within the range (0, lines in buffer). `col` is then clamped within
// the range (0, line length in runes).
func (c Cursor) SetLineCol(line, col int) Cursor {
	c.line, c.col = (*c.buffer).ClampLineCol(line, col)
	return c
}

func (c Cursor) Eq(other Cursor) bool {
	return c.buffer == other.buffer && c.line == other.line && c.col == other.col
}

type charclass uint8

const (
	charwhitespace charclass = iota
	charword
	charsymbol
)

func runeCharclass(r rune) charclass {
	if unicode.IsSpace(r) {
		return charwhitespace
	} else if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return charword
	}
	return charsymbol
}
