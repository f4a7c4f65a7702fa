package buffer

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/zyedidia/rope"
)

var newline = []byte{'\n'}

// RopeBuffer implements Buffer over a rope, so that large files can be
// sliced by line without copying the whole text.
type RopeBuffer rope.Node

func NewRopeBuffer(contents []byte) *RopeBuffer {
	return (*RopeBuffer)(rope.New(contents))
}

func (b *RopeBuffer) node() *rope.Node {
	return (*rope.Node)(b)
}

// slice returns the bytes in [start, end), clamped to the buffer.
func (b *RopeBuffer) slice(start, end int) []byte {
	if length := b.Len(); end > length {
		end = length
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}
	return b.node().Slice(start, end)
}

// Line returns the data of the given line, including its line delimiter.
func (b *RopeBuffer) Line(line int) []byte {
	start := b.getLineStartPos(line)
	return b.slice(start, b.getLineEndPos(start)+1)
}

// lineText returns the given line without its delimiter.
func (b *RopeBuffer) lineText(line int) []byte {
	start := b.getLineStartPos(line)
	text := b.slice(start, b.getLineEndPos(start))
	return bytes.TrimSuffix(text, []byte{'\r'})
}

func (b *RopeBuffer) Bytes() []byte {
	return b.node().Value()
}

func (b *RopeBuffer) Len() int {
	return b.node().Len()
}

func (b *RopeBuffer) Lines() int {
	n := b.node()
	return n.Count(0, n.Len(), newline) + 1
}

// getLineStartPos returns the first byte index of the given line. The index
// may equal Len() when the line is the last, empty line of the buffer. If the
// buffer does not have that many lines, a panic is issued.
func (b *RopeBuffer) getLineStartPos(line int) int {
	if line < 0 {
		panic("getLineStartPos: negative line")
	}

	n := b.node()
	var pos int
	if line > 0 {
		n.IndexAllFunc(0, n.Len(), newline, func(idx int) bool {
			line--
			pos = idx + 1
			return line <= 0
		})
	}

	if line > 0 {
		panic("getLineStartPos: not enough lines in buffer to reach position")
	}
	return pos
}

// getLineEndPos returns the index of the '\n' ending the line that starts at
// start, or Len() if that line is the last.
func (b *RopeBuffer) getLineEndPos(start int) int {
	n := b.node()
	end := n.Len()
	if start < end {
		n.IndexAllFunc(0, end, newline, func(idx int) bool {
			if idx >= start {
				end = idx
				return true
			}
			return false
		})
	}
	return end
}

func (b *RopeBuffer) RunesInLine(line int) int {
	return utf8.RuneCount(b.lineText(line))
}

func (b *RopeBuffer) ClampLineCol(line, col int) (int, int) {
	if line < 0 {
		line = 0
	} else if last := b.Lines() - 1; line > last {
		line = last
	}

	if col < 0 {
		col = 0
	} else if runes := b.RunesInLine(line); col > runes {
		col = runes
	}

	return line, col
}

func (b *RopeBuffer) LineColToPos(line, col int) int {
	if col < 0 {
		panic("LineColToPos: negative column")
	}

	pos := b.getLineStartPos(line)
	text := b.lineText(line)

	var i int
	for col > 0 && i < len(text) {
		_, size := utf8.DecodeRune(text[i:])
		i += size
		col--
	}
	return pos + i
}

func (b *RopeBuffer) PosToLineCol(pos int) (int, int) {
	if pos <= 0 {
		return 0, 0
	}
	if length := b.Len(); pos > length {
		pos = length
	}

	line := b.node().Count(0, pos, newline)
	start := b.getLineStartPos(line)
	return line, utf8.RuneCount(b.slice(start, pos))
}

func (b *RopeBuffer) RuneAtPos(pos int) rune {
	r, _ := utf8.DecodeRune(b.slice(pos, pos+utf8.UTFMax))
	return r
}

func (b *RopeBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.node().WriteTo(w)
}
