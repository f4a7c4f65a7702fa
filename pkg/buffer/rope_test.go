package buffer

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestRopePosToLineCol(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("line0\nline1\n\nline3\n"))
	//line0
	//line1
	//
	//line3
	//

	startLine, startCol := buf.PosToLineCol(0)
	if startLine != 0 || startCol != 0 {
		t.Errorf("Expected 0,0 got %v,%v", startLine, startCol)
	}

	endPos := buf.Len() - 1 // The last '\n'
	endLine, endCol := buf.PosToLineCol(endPos)
	if endLine != 3 || endCol != 5 {
		t.Errorf("Expected 3,5 got %v,%v", endLine, endCol)
	}

	line1Pos := 11 // Byte index of the delim separating line1 and line 2
	line1Line, line1Col := buf.PosToLineCol(line1Pos)
	if line1Line != 1 || line1Col != 5 {
		t.Errorf("Expected 1,5 got %v,%v", line1Line, line1Col)
	}

	lastLine, lastCol := buf.PosToLineCol(buf.Len() + 10) // Clamped
	if lastLine != 4 || lastCol != 0 {
		t.Errorf("Expected 4,0 got %v,%v", lastLine, lastCol)
	}
}

func TestRopeLineColToPos(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("ab\nは c\r\nd"))

	tests := []struct {
		line, col, pos int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{0, 9, 2}, // Past the end points at the delimiter
		{1, 0, 3},
		{1, 1, 6}, // 'は' is three bytes
		{1, 3, 8},
		{1, 4, 8}, // '\r' is part of the delimiter
		{2, 0, 10},
		{2, 1, 11},
	}
	for _, tt := range tests {
		if pos := buf.LineColToPos(tt.line, tt.col); pos != tt.pos {
			t.Errorf("LineColToPos(%v, %v): expected %v, got %v", tt.line, tt.col, tt.pos, pos)
		}
	}
}

func TestRopeBounds(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("this\nis (は)\n\tsome\ntext\n"))
	//this
	//is (は)
	//	some
	//text
	//

	if buf.Lines() != 5 {
		t.Errorf("Expected buf.Lines() == 5")
	}

	if len := buf.RunesInLine(1); len != 6 { // "is" in English and in japanese
		t.Errorf("Expected 6 runes in line 2, found %v", len)
	}

	if len := buf.RunesInLine(4); len != 0 {
		t.Errorf("Expected 0 runes in line 5, found %v", len)
	}

	line, col := buf.ClampLineCol(15, 5) // Should become last line, first column
	if line != 4 || col != 0 {
		t.Errorf("Expected to clamp line col to 4,0 got %v,%v", line, col)
	}

	line, col = buf.ClampLineCol(4, -1)
	if line != 4 || col != 0 {
		t.Errorf("Expected to clamp line col to 4,0 got %v,%v", line, col)
	}

	line, col = buf.ClampLineCol(2, 9) // Should be third line, pointing at the newline char
	if line != 2 || col != 5 {
		t.Errorf("Expected to clamp line, col to 2,5 got %v,%v", line, col)
	}

	if line := string(buf.Line(2)); line != "\tsome\n" {
		t.Errorf("Expected line 3 to equal \"\\tsome\\n\", got %#v", line)
	}

	if line := string(buf.Line(4)); line != "" {
		t.Errorf("Got %#v", line)
	}
}

func TestRopeEmpty(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte{})

	if buf.Lines() != 1 {
		t.Errorf("Expected an empty buffer to have one line, got %v", buf.Lines())
	}
	if n := buf.RunesInLine(0); n != 0 {
		t.Errorf("Expected 0 runes, got %v", n)
	}
	if r := buf.RuneAtPos(0); r != utf8.RuneError {
		t.Errorf("Expected RuneError, got %q", r)
	}
}

func TestRopeRuneAtPos(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("aは"))

	if r := buf.RuneAtPos(0); r != 'a' {
		t.Errorf("Expected 'a', got %q", r)
	}
	if r := buf.RuneAtPos(1); r != 'は' {
		t.Errorf("Expected 'は', got %q", r)
	}
	if r := buf.RuneAtPos(2); r != utf8.RuneError { // Inside 'は'
		t.Errorf("Expected RuneError, got %q", r)
	}
}

func TestRopeWriteTo(t *testing.T) {
	contents := []byte("if x:\n\treturn 1\n")
	var buf Buffer = NewRopeBuffer(contents)

	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if int(n) != len(contents) || !bytes.Equal(out.Bytes(), contents) {
		t.Errorf("Expected %q, got %q (%v bytes)", contents, out.Bytes(), n)
	}
	if !bytes.Equal(buf.Bytes(), contents) {
		t.Errorf("Bytes() = %q", buf.Bytes())
	}
}
