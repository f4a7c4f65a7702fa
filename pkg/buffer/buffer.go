package buffer

import (
	"io"
)

// A Buffer is a read-only view of source text, addressed either by byte
// offset or by line and column. It is the source buffer handed to the lexer
// and the highlighter. Lines and columns start at zero here; columns count
// runes, not bytes.
//
// Any line out of range is a panic! If you are unsure a position is in
// bounds, use ClampLineCol() or compare with Lines() and RunesInLine().
type Buffer interface {
	// Line returns the data of the given line, including its line delimiter.
	// Do not write to the returned slice.
	Line(line int) []byte

	// Bytes returns all of the bytes in the buffer. This is likely a copy, and
	// is what the lexer scans.
	Bytes() []byte

	// Len returns the number of bytes in the buffer.
	Len() int

	// Lines returns the number of lines in the buffer. An empty buffer still
	// has one line. This is one more than the number of '\n' bytes.
	Lines() int

	// RunesInLine returns the number of runes in the given line, excluding the
	// line delimiter ("\n" or "\r\n").
	RunesInLine(line int) int

	// ClampLineCol clamps line, then col, to positions that exist in the
	// buffer. The column may equal RunesInLine, pointing at the delimiter.
	ClampLineCol(line, col int) (int, int)

	// LineColToPos returns the byte offset of the rune at line, col. A col past
	// the end of the line yields the offset of the line delimiter.
	LineColToPos(line, col int) int

	// PosToLineCol converts a byte offset into a line and column. The offset
	// is clamped to [0, Len()].
	PosToLineCol(pos int) (int, int)

	// RuneAtPos decodes the rune starting at pos. It returns utf8.RuneError
	// when pos is out of range or does not start a valid encoding.
	RuneAtPos(pos int) rune

	WriteTo(w io.Writer) (int64, error)
}
