package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// A Tab is a child of a TabContainer; has a name and child Component.
type Tab struct {
	Name  string
	Child Component
}

// A TabContainer organizes children by showing only one of them at a time,
// inside an outline with the tab names along its top edge.
type TabContainer struct {
	children []Tab
	selected int

	baseComponent
}

func NewTabContainer(theme *Theme) *TabContainer {
	return &TabContainer{
		children:      make([]Tab, 0, 4),
		baseComponent: baseComponent{theme: theme},
	}
}

func (c *TabContainer) AddTab(name string, child Component) {
	c.children = append(c.children, Tab{Name: name, Child: child})
	child.SetTheme(c.theme)
	child.SetPos(c.x+1, c.y+1)
	child.SetSize(c.width-2, c.height-2)
}

// RemoveTab deletes the tab at `idx`. Returns true if the tab was found,
// false otherwise.
func (c *TabContainer) RemoveTab(idx int) bool {
	if idx < 0 || idx >= len(c.children) {
		return false
	}

	if c.selected == idx {
		c.children[idx].Child.SetFocused(false)
	}

	c.children = append(c.children[:idx], c.children[idx+1:]...)

	if c.selected >= len(c.children) || (c.selected > idx && c.selected > 0) {
		c.selected = max(c.selected-1, 0)
	}
	if len(c.children) > 0 {
		child := c.children[c.selected].Child
		child.SetPos(c.x+1, c.y+1)
		child.SetSize(c.width-2, c.height-2)
		child.SetFocused(c.focused)
	}
	return true
}

// FocusTab sets the visible tab to the one at `idx`. FocusTab clamps `idx`
// between 0 and tab_count - 1. If no tabs are present, the function does nothing.
func (c *TabContainer) FocusTab(idx int) {
	if len(c.children) < 1 {
		return
	}

	idx = Clamp(idx, 0, len(c.children)-1)

	c.children[c.selected].Child.SetFocused(false)
	c.selected = idx
	child := c.children[idx].Child
	child.SetPos(c.x+1, c.y+1)
	child.SetSize(c.width-2, c.height-2)
	child.SetFocused(c.focused)
}

func (c *TabContainer) GetSelectedTabIdx() int {
	return c.selected
}

func (c *TabContainer) GetTabCount() int {
	return len(c.children)
}

func (c *TabContainer) GetTab(idx int) *Tab {
	return &c.children[idx]
}

// SelectedChild returns the visible child, or nil if there are no tabs.
func (c *TabContainer) SelectedChild() Component {
	if c.selected < len(c.children) {
		return c.children[c.selected].Child
	}
	return nil
}

// Draw draws the outline of the TabContainer and the tab names, then the
// selected child component.
func (c *TabContainer) Draw(s tcell.Screen) {
	var sty tcell.Style
	if c.focused {
		sty = c.theme.GetOrDefault("TabContainerFocused")
	} else {
		sty = c.theme.GetOrDefault("TabContainer")
	}

	DrawRectOutlineDefault(s, c.x, c.y, c.width, c.height, sty)

	combinedTabLength := 0
	for i := range c.children {
		combinedTabLength += runewidth.StringWidth(c.children[i].Name) + 2 // 2 for padding
	}
	combinedTabLength += len(c.children) - 1 // add for spacing between tabs

	col := c.x + c.width/2 - combinedTabLength/2
	for i, tab := range c.children {
		tabSty := sty
		if c.selected == i {
			tabSty = sty.Reverse(true)
		}
		col += DrawStr(s, col, c.y, fmt.Sprintf(" %s ", tab.Name), tabSty) + 1
	}

	if child := c.SelectedChild(); child != nil {
		child.Draw(s)
	}
}

// SetFocused calls SetFocused on the visible child Component.
func (c *TabContainer) SetFocused(v bool) {
	c.focused = v
	if child := c.SelectedChild(); child != nil {
		child.SetFocused(v)
	}
}

func (c *TabContainer) SetTheme(theme *Theme) {
	c.theme = theme
	for _, tab := range c.children {
		tab.Child.SetTheme(theme)
	}
}

// SetPos sets the position of the container and updates the child Component.
func (c *TabContainer) SetPos(x, y int) {
	c.x, c.y = x, y
	if child := c.SelectedChild(); child != nil {
		child.SetPos(x+1, y+1)
	}
}

// SetSize sets the size of the container and updates the size of the child Component.
func (c *TabContainer) SetSize(width, height int) {
	c.width, c.height = width, height
	if child := c.SelectedChild(); child != nil {
		child.SetSize(width-2, height-2)
	}
}

// HandleEvent switches tabs on Ctrl+E (next) and Ctrl+W (previous), and
// forwards every other event to the visible child.
func (c *TabContainer) HandleEvent(event tcell.Event) bool {
	if ev, ok := event.(*tcell.EventKey); ok && len(c.children) > 0 {
		switch ev.Key() {
		case tcell.KeyCtrlE:
			c.FocusTab((c.selected + 1) % len(c.children))
			return true
		case tcell.KeyCtrlW:
			c.FocusTab((c.selected + len(c.children) - 1) % len(c.children))
			return true
		}
	}

	if child := c.SelectedChild(); child != nil {
		return child.HandleEvent(event)
	}
	return false
}
