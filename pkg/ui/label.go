package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Align defines the text alignment of a label.
type Align uint8

const (
	// AlignLeft is the normal text alignment where text is aligned to the left
	// of its bounding box.
	AlignLeft Align = iota
	// AlignRight causes text to be aligned to the right of its bounding box.
	AlignRight
	// AlignJustify causes text to be left-aligned, but also spaced so that it
	// fits the entire box where it is being rendered.
	AlignJustify
)

// A Label is a component for rendering a single line of text. The text is
// truncated to fit within its bounding box, and the rest of the box is filled
// with the label's style.
type Label struct {
	Text      string
	Alignment Align
	StyleKey  string // Theme key; "Normal" if empty

	baseComponent
}

func NewLabel(text string, alignment Align, theme *Theme) *Label {
	return &Label{
		Text:          text,
		Alignment:     alignment,
		baseComponent: baseComponent{theme: theme},
	}
}

// Draw renders the label on its first row. Tabs and newlines are shown as spaces.
func (l *Label) Draw(s tcell.Screen) {
	key := l.StyleKey
	if key == "" {
		key = "Normal"
	}
	style := l.theme.GetOrDefault(key)

	DrawRect(s, l.x, l.y, l.width, 1, ' ', style)

	text := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, l.Text)
	text = runewidth.Truncate(text, l.width, "…")

	switch l.Alignment {
	case AlignRight:
		DrawStr(s, l.x+l.width-runewidth.StringWidth(text), l.y, text, style)
	case AlignJustify:
		l.drawJustified(s, text, style)
	default:
		DrawStr(s, l.x, l.y, text, style)
	}
}

// drawJustified spreads the words of text across the full width.
func (l *Label) drawJustified(s tcell.Screen, text string, style tcell.Style) {
	words := strings.Fields(text)
	if len(words) < 2 {
		DrawStr(s, l.x, l.y, text, style)
		return
	}

	var used int
	for _, w := range words {
		used += runewidth.StringWidth(w)
	}
	gaps := len(words) - 1
	spare := max(l.width-used, gaps)

	col := l.x
	for i, w := range words {
		col += DrawStr(s, col, l.y, w, style)
		if i < gaps {
			gap := spare / gaps
			if i < spare%gaps {
				gap++
			}
			col += gap
		}
	}
}

// HandleEvent does nothing; labels do not take input.
func (l *Label) HandleEvent(tcell.Event) bool {
	return false
}
