// Package databases provides the database list view for the TUI.
package databases

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/keymap"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/messages"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/styles"
)

// View lists the loaded databases.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	names    []string
	selected int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new database list view.
func NewView(s *styles.Styles, k *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if k == nil {
		k = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keys:    k,
		loading: true,
		width:   80,
		height:  24,
	}
}

// SetDatabases replaces the list, keeping the cursor in range.
func (v *View) SetDatabases(names []string, err error) {
	v.loading = false
	v.err = err
	if err != nil {
		return
	}
	v.names = names
	if v.selected >= len(names) {
		v.selected = max(len(names)-1, 0)
	}
}

// Update handles messages for the database list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keys.Quit):
		return v, tea.Quit
	case keymap.Matches(k, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keys.Down):
		if v.selected < len(v.names)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keys.Select):
		if len(v.names) == 0 {
			return v, nil
		}
		name := v.names[v.selected]
		return v, func() tea.Msg {
			return messages.DatabaseSelected{Name: name}
		}
	}
	return v, nil
}

// View renders the list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("leetgen"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Pick a question database"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading databases..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
	case len(v.names) == 0:
		b.WriteString(v.styles.Warning.Render("No databases loaded."))
	default:
		for i, name := range v.names {
			if i == v.selected {
				b.WriteString("> " + v.styles.Selected.Render(name))
			} else {
				b.WriteString("  " + v.styles.Normal.Render(name))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.DatabasesHelp()...)))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the highlighted database name, or "" when the list is empty.
func (v *View) Selected() string {
	if len(v.names) == 0 {
		return ""
	}
	return v.names[v.selected]
}

// Names returns the listed databases.
func (v *View) Names() []string {
	return v.names
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
