// Package question provides the long-form question view for the TUI.
package question

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/keymap"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/messages"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/styles"
)

// reserved is the number of lines taken by the header and footer.
const reserved = 5

// View shows one rendered question in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	viewport viewport.Model

	rendered []string
	index    int
	width    int
	height   int
}

// NewView creates a new long-form view.
func NewView(s *styles.Styles, k *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if k == nil {
		k = keymap.DefaultKeyMap()
	}
	v := &View{styles: s, keys: k}
	v.viewport = viewport.New(80, 24-reserved)
	v.SetDimensions(80, 24)
	return v
}

// SetQuestions loads the rendered batch and opens the question at index.
func (v *View) SetQuestions(rendered []string, index int) {
	v.rendered = rendered
	v.show(index)
}

func (v *View) show(index int) {
	if index < 0 || index >= len(v.rendered) {
		return
	}
	v.index = index
	v.viewport.SetContent(v.rendered[index])
	v.viewport.GotoTop()
}

// Update handles messages for the long-form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch k := keyMsg.String(); {
		case keymap.Matches(k, v.keys.Quit):
			return v, tea.Quit
		case keymap.Matches(k, v.keys.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewQuestions}
			}
		case keymap.Matches(k, v.keys.Next):
			v.show(v.index + 1)
			return v, nil
		case keymap.Matches(k, v.keys.Prev):
			v.show(v.index - 1)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the question.
func (v *View) View() string {
	var b strings.Builder

	header := "Question"
	if len(v.rendered) > 0 {
		header = fmt.Sprintf("Question %d of %d", v.index+1, len(v.rendered))
	}
	b.WriteString(v.styles.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n")

	if len(v.rendered) == 0 {
		b.WriteString(v.styles.Muted.Render("(No question selected)"))
	} else {
		b.WriteString(v.viewport.View())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[%3.f%%]", v.viewport.ScrollPercent()*100)))
	b.WriteString("  ")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.QuestionHelp()...)))
	return b.String()
}

// SetDimensions sizes the viewport to the window.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-reserved, 1)
}

// Index returns the open question index.
func (v *View) Index() int {
	return v.index
}

// Content returns the rendered text of the open question.
func (v *View) Content() string {
	if len(v.rendered) == 0 {
		return ""
	}
	return v.rendered[v.index]
}
