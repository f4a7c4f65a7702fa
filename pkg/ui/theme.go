package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// A Theme is a map of string names to styles. Themes are passed by reference
// to components to set their styles. If a theme value cannot be found, then
// the `DefaultTheme` value will be used, instead. The full list of theme keys
// can be found on the default theme.
type Theme map[string]tcell.Style

func (theme *Theme) GetOrDefault(key string) tcell.Style {
	if theme != nil {
		if val, ok := (*theme)[key]; ok {
			return val
		}
	}

	if val, ok := DefaultTheme[key]; ok {
		return val
	}
	panic(fmt.Sprintf("key \"%v\" not present in default theme", key))
}

// DefaultTheme uses only the first 16 colors present in most colored terminals.
var DefaultTheme = Theme{
	"Normal":              tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"StatusBar":           tcell.Style{}.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	"StatusBarError":      tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon),
	"TabContainer":        tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	"TabContainerFocused": tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
}
