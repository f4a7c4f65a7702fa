package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawRect renders a filled box at `x` and `y`, of size `width` and `height`.
// Will not call `Show()`.
func DrawRect(s tcell.Screen, x, y, width, height int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		for row := y; row < y+height; row++ {
			s.SetContent(col, row, char, nil, style)
		}
	}
}

// DrawStr renders each rune of a string at `x` and `y`, advancing by the
// display width of each rune. Returns the number of cells drawn.
func DrawStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	col := x
	for _, r := range str {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col - x
}

// DrawRectOutline draws only the outline of a rectangle, using `ul`, `ur`, `bl`, and `br`
// for the corner runes, and `hor` and `vert` for the horizontal and vertical runes, respectively.
func DrawRectOutline(s tcell.Screen, x, y, width, height int, ul, ur, bl, br, hor, vert rune, style tcell.Style) {
	right := x + width - 1
	bottom := y + height - 1

	for col := x + 1; col < right; col++ {
		s.SetContent(col, y, hor, nil, style)
		s.SetContent(col, bottom, hor, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetContent(x, row, vert, nil, style)
		s.SetContent(right, row, vert, nil, style)
	}

	s.SetContent(x, y, ul, nil, style)
	s.SetContent(right, y, ur, nil, style)
	s.SetContent(x, bottom, bl, nil, style)
	s.SetContent(right, bottom, br, nil, style)
}

// DrawRectOutlineDefault calls DrawRectOutline with the default edge runes.
func DrawRectOutlineDefault(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	DrawRectOutline(s, x, y, width, height, '┌', '┐', '└', '┘', '─', '│', style)
}
