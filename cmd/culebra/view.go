package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/culebra/pkg/ui"
)

type sourceFile struct {
	path     string
	contents []byte
}

// viewer is the state of the `view` command: a tab per file and a status
// line describing the token under the cursor.
type viewer struct {
	screen tcell.Screen
	theme  ui.Theme
	tabs   *ui.TabContainer
	status *ui.Label

	message string // Shown once in place of the token status
	isError bool
}

func runView(args []string) error {
	if len(args) == 0 {
		return errors.New("no files given")
	}

	// Load every file before taking over the terminal
	files := make([]sourceFile, 0, len(args))
	for _, path := range args {
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		files = append(files, sourceFile{path, contents})
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini() // Useful for handling panics

	v := newViewer(s, files)
	if _, err := ClipInitialize(ClipExternal); err != nil {
		v.setMessage("clipboard unavailable, copying inside the viewer only", true)
	}
	v.loop()
	return nil
}

func newViewer(s tcell.Screen, files []sourceFile) *viewer {
	v := &viewer{screen: s, theme: ui.Theme{}}

	v.tabs = ui.NewTabContainer(&v.theme)
	v.status = ui.NewLabel("", ui.AlignLeft, &v.theme)
	v.resize()

	for _, f := range files {
		v.tabs.AddTab(filepath.Base(f.path), ui.NewTextView(s, f.path, f.contents, &v.theme))
	}
	v.tabs.SetFocused(true)
	return v
}

func (v *viewer) resize() {
	width, height := v.screen.Size()
	v.tabs.SetPos(0, 0)
	v.tabs.SetSize(width, height-1)
	v.status.SetPos(0, height-1)
	v.status.SetSize(width, 1)
}

func (v *viewer) current() *ui.TextView {
	tv, _ := v.tabs.SelectedChild().(*ui.TextView)
	return tv
}

func (v *viewer) setMessage(msg string, isError bool) {
	v.message, v.isError = msg, isError
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.tabs.Draw(v.screen)

	switch {
	case v.message != "":
		v.status.Text = v.message
	case v.current() != nil:
		v.status.Text = v.current().Status()
	default:
		v.status.Text = ""
	}
	if v.isError {
		v.status.StyleKey = "StatusBarError"
	} else {
		v.status.StyleKey = "StatusBar"
	}
	v.status.Draw(v.screen)

	v.screen.Show()
}

// handle applies one event and reports whether the viewer should quit.
func (v *viewer) handle(event tcell.Event) (quit bool) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventKey:
		v.setMessage("", false)
		switch ev.Key() {
		case tcell.KeyCtrlQ:
			return true
		case tcell.KeyCtrlC:
			v.copyToken()
		case tcell.KeyCtrlX:
			return v.closeTab()
		default:
			v.tabs.HandleEvent(ev)
		}
	case nil: // The screen was finalized
		return true
	}
	return false
}

// copyToken puts the text of the token under the cursor on the clipboard.
func (v *viewer) copyToken() {
	tv := v.current()
	if tv == nil {
		return
	}
	tok := tv.CurrentToken()
	if err := ClipWrite(tok.Text); err != nil {
		v.setMessage(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	v.setMessage(fmt.Sprintf("copied %v %q", tok.Kind, tok.Text), false)
}

// closeTab removes the visible tab and reports whether none are left.
func (v *viewer) closeTab() (quit bool) {
	if v.tabs.GetTabCount() == 0 {
		return true
	}
	idx := v.tabs.GetSelectedTabIdx()
	name := v.tabs.GetTab(idx).Name
	v.tabs.RemoveTab(idx)
	if v.tabs.GetTabCount() == 0 {
		return true
	}
	v.setMessage(fmt.Sprintf("closed %s", name), false)
	return false
}

func (v *viewer) loop() {
	for {
		v.draw()
		if v.handle(v.screen.PollEvent()) {
			return
		}
	}
}
