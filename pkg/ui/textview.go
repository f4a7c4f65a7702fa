package ui

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/fivemoreminix/culebra/pkg/buffer"
	"github.com/fivemoreminix/culebra/pkg/lexer"
)

// TextView is a read-only, syntax highlighted view of a file. It keeps a
// cursor that can be moved around the text, and can report the token under
// that cursor.
type TextView struct {
	Buffer      buffer.Buffer
	Highlighter *buffer.Highlighter
	LineNumbers bool   // Whether to render line numbers (and therefore the column)
	TabSize     int    // How many cells a hard tab takes up
	FilePath    string // Source identifier shown in positions; may be empty

	screen           tcell.Screen // We keep our own reference to the screen for cursor purposes.
	cursor           buffer.Cursor
	scrollx, scrolly int // X offset in cells and Y offset in lines

	baseComponent
}

// NewTextView initializes the buffer using the given 'contents'. The language
// used for highlighting is picked from the extension of 'filePath'.
func NewTextView(screen tcell.Screen, filePath string, contents []byte, theme *Theme) *TextView {
	t := &TextView{
		LineNumbers:   true,
		TabSize:       4,
		FilePath:      filePath,
		screen:        screen,
		baseComponent: baseComponent{theme: theme},
	}
	t.SetContents(contents)
	return t
}

// SetContents replaces the text being viewed and resets the cursor and scroll.
func (t *TextView) SetContents(contents []byte) {
	t.Buffer = buffer.NewRopeBuffer(contents)
	t.cursor = buffer.NewCursor(&t.Buffer)
	t.scrollx, t.scrolly = 0, 0

	lang := buffer.LanguageForPath(t.FilePath)
	colorscheme := buffer.DefaultColorscheme
	t.Highlighter = buffer.NewHighlighter(t.Buffer, lang, &colorscheme)
}

// CurrentToken returns the token under the cursor.
func (t *TextView) CurrentToken() lexer.Token {
	line, col := t.cursor.GetLineCol()
	return t.Highlighter.TokenAt(line, col)
}

// Position returns the cursor position, counting lines and columns from one.
func (t *TextView) Position() lexer.Position {
	line, col := t.cursor.GetLineCol()
	return lexer.Position{Name: t.FilePath, Line: line + 1, Col: col + 1}
}

// Status describes the cursor position and the token under it, for a status line.
func (t *TextView) Status() string {
	tok := t.CurrentToken()
	return fmt.Sprintf("%v %v %q", t.Position(), tok.Kind, tok.Text)
}

func (t *TextView) GetCursor() buffer.Cursor {
	return t.cursor
}

func (t *TextView) SetCursor(newCursor buffer.Cursor) {
	t.cursor = newCursor
	t.ScrollToCursor()
	t.updateCursorVisibility()
}

// getColumnWidth returns the width of the line numbers column if it is present.
func (t *TextView) getColumnWidth() int {
	var columnWidth int
	if t.LineNumbers {
		// Set columnWidth to max count of line number digits
		columnWidth = max(3, 1+len(strconv.Itoa(t.Buffer.Lines())))
	}
	return columnWidth
}

func (t *TextView) cellWidth(r rune) int {
	if r == '\t' {
		return t.TabSize
	}
	return max(runewidth.RuneWidth(r), 1)
}

// visualCol returns the cell offset of the rune at line, col.
func (t *TextView) visualCol(line, col int) int {
	var cells int
	for i, r := range []rune(string(lineText(t.Buffer.Line(line)))) {
		if i >= col {
			break
		}
		cells += t.cellWidth(r)
	}
	return cells
}

// ScrollToCursor scrolls the view if the cursor is out of it.
func (t *TextView) ScrollToCursor() {
	line, col := t.cursor.GetLineCol()

	if line >= t.scrolly+t.height {
		t.scrolly = line - t.height + 1
	} else if line < t.scrolly {
		t.scrolly = line
	}

	textWidth := t.width - t.getColumnWidth()
	vcol := t.visualCol(line, col)
	if vcol >= t.scrollx+textWidth {
		t.scrollx = vcol - textWidth + 1
	} else if vcol < t.scrollx {
		t.scrollx = vcol
	}
}

// updateCursorVisibility sets the position of the terminal's cursor with the
// cursor of the TextView, if the TextView is focused.
func (t *TextView) updateCursorVisibility() {
	if t.focused && t.screen != nil {
		line, col := t.cursor.GetLineCol()
		x := t.x + t.getColumnWidth() + t.visualCol(line, col) - t.scrollx
		t.screen.ShowCursor(x, t.y+line-t.scrolly)
	}
}

// Draw renders the TextView component.
func (t *TextView) Draw(s tcell.Screen) {
	columnWidth := t.getColumnWidth()
	bufferLines := t.Buffer.Lines()

	columnStyle := t.Highlighter.Colorscheme.GetStyle(buffer.Column)
	defaultStyle := t.Highlighter.Colorscheme.GetStyle(buffer.Default)

	t.Highlighter.UpdateInvalidatedLines(t.scrolly, t.scrolly+t.height-1)

	textX := t.x + columnWidth
	textWidth := t.width - columnWidth

	for row := 0; row < t.height; row++ {
		lineY := t.y + row
		line := t.scrolly + row

		DrawRect(s, textX, lineY, textWidth, 1, ' ', defaultStyle)

		lineNumStr := ""
		if line < bufferLines {
			lineNumStr = strconv.Itoa(line + 1)
			t.drawLine(s, line, textX, lineY, textWidth, defaultStyle)
		}

		if t.LineNumbers {
			columnStr := fmt.Sprintf("%*s│", columnWidth-1, lineNumStr) // Right align line number
			DrawStr(s, t.x, lineY, columnStr, columnStyle)
		}
	}

	t.updateCursorVisibility()
}

// drawLine draws the visible part of one buffer line, styled by the
// highlighter's matches for it.
func (t *TextView) drawLine(s tcell.Screen, line, x, y, width int, defaultStyle tcell.Style) {
	matches := t.Highlighter.GetLineMatches(line)
	var matchIdx int
	var vcol int // Cell offset of the rune being drawn, before scrolling

	for runeIdx, r := range []rune(string(lineText(t.Buffer.Line(line)))) {
		if vcol-t.scrollx >= width {
			break
		}

		for matchIdx < len(matches) && matches[matchIdx].EndCol < runeIdx {
			matchIdx++
		}
		style := defaultStyle
		if matchIdx < len(matches) && matches[matchIdx].Col <= runeIdx {
			style = t.Highlighter.GetStyle(matches[matchIdx])
		}

		w := t.cellWidth(r)
		if vcol >= t.scrollx && vcol-t.scrollx+w <= width {
			col := x + vcol - t.scrollx
			if r == '\t' {
				DrawRect(s, col, y, w, 1, ' ', style)
			} else {
				s.SetContent(col, y, r, nil, style)
			}
		}
		vcol += w
	}
}

// SetFocused sets whether the TextView is focused. When focused, the cursor is set visible
// and its position is updated on every event.
func (t *TextView) SetFocused(v bool) {
	t.focused = v
	if v {
		t.updateCursorVisibility()
	} else if t.screen != nil {
		t.screen.HideCursor()
	}
}

// HandleEvent moves the cursor on navigation keys and returns whether the
// event was handled. Ctrl+Left and Ctrl+Right move by words.
func (t *TextView) HandleEvent(event tcell.Event) bool {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return false
	}

	line, col := t.cursor.GetLineCol()
	byWord := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyUp:
		t.SetCursor(t.cursor.Up())
	case tcell.KeyDown:
		t.SetCursor(t.cursor.Down())
	case tcell.KeyLeft:
		if byWord {
			t.SetCursor(t.cursor.PrevWordBoundaryStart())
		} else {
			t.SetCursor(t.cursor.Left())
		}
	case tcell.KeyRight:
		if byWord {
			t.SetCursor(t.cursor.NextWordBoundaryEnd())
		} else {
			t.SetCursor(t.cursor.Right())
		}
	case tcell.KeyHome:
		t.SetCursor(t.cursor.SetLineCol(line, 0))
	case tcell.KeyEnd:
		t.SetCursor(t.cursor.SetLineCol(line, math.MaxInt32))
	case tcell.KeyPgUp:
		t.SetCursor(t.cursor.SetLineCol(line-t.height, col))
	case tcell.KeyPgDn:
		t.SetCursor(t.cursor.SetLineCol(line+t.height, col))
	default:
		return false
	}
	return true
}

// lineText strips the line delimiter from a buffer line.
func lineText(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
