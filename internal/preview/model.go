// Package preview is an interactive terminal view of a manifest's resolved
// classes across breakpoints.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/internal/manifest"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// Model is the preview state.
type Model struct {
	title      string
	entries    []manifest.Entry
	cursor     int
	breakpoint style.Breakpoint

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a preview starting at the breakpoint active for the
// given viewport width.
func NewModel(title string, entries []manifest.Entry, viewport int) Model {
	return Model{
		title:      title,
		entries:    entries,
		breakpoint: style.ActiveBreakpoint(viewport),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted entry.
func (m Model) Selected() (manifest.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return manifest.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Breakpoint returns the simulated breakpoint.
func (m Model) Breakpoint() style.Breakpoint {
	return m.breakpoint
}
