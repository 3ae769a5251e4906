// Package questions provides the batch view for the TUI: the drawn questions
// with the active filter and mode.
package questions

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/keymap"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/messages"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/styles"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// View lists the questions of the current batch.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap

	database    string
	difficulty  domain.Difficulty
	progression bool

	result   *driving.SessionResult
	selected int
	loading  bool
	err      error
	width    int
	height   int
}

// NewView creates a new batch view.
func NewView(s *styles.Styles, k *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if k == nil {
		k = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keys: k, width: 80, height: 24}
}

// SetDatabase switches to a database and clears the filter.
func (v *View) SetDatabase(name string) {
	v.database = name
	v.difficulty = ""
	v.progression = false
	v.result = nil
	v.selected = 0
	v.err = nil
}

// SetLoading marks a draw as in flight.
func (v *View) SetLoading() {
	v.loading = true
	v.err = nil
}

// SetResult shows a drawn batch or the error that replaced it.
func (v *View) SetResult(result *driving.SessionResult, err error) {
	v.loading = false
	v.err = err
	v.selected = 0
	if err != nil {
		v.result = nil
		return
	}
	v.result = result
}

// Update handles messages for the batch view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keys.Quit):
		return v, tea.Quit
	case keymap.Matches(k, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDatabases}
		}
	case keymap.Matches(k, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keys.Down):
		if v.selected < v.count()-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keys.Select):
		if v.count() == 0 {
			return v, nil
		}
		index := v.selected
		return v, func() tea.Msg {
			return messages.QuestionSelected{Index: index}
		}
	case keymap.Matches(k, v.keys.Redraw):
		return v, requestGenerate
	case keymap.Matches(k, v.keys.Difficulty):
		v.difficulty = nextDifficulty(v.difficulty)
		return v, requestGenerate
	case keymap.Matches(k, v.keys.Progression):
		v.progression = !v.progression
		return v, requestGenerate
	}
	return v, nil
}

func requestGenerate() tea.Msg {
	return messages.GenerateRequested{}
}

// nextDifficulty cycles any → beginner → … → hard → any.
func nextDifficulty(d domain.Difficulty) domain.Difficulty {
	order := domain.DifficultyOrder()
	if d == "" {
		return order[0]
	}
	for i, o := range order {
		if o == d && i+1 < len(order) {
			return order[i+1]
		}
	}
	return ""
}

// View renders the batch.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.database))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.modeLine()))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Drawing questions..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
	case v.count() == 0:
		b.WriteString(v.styles.Warning.Render("No questions drawn."))
	default:
		for i, q := range v.result.Questions {
			line := fmt.Sprintf("%d. %s", i+1, titleOf(q))
			if d, ok := q.String(domain.FieldDifficulty); ok && d != "" {
				line += " " + v.styles.RenderDifficulty(d)
			}
			if i == v.selected {
				b.WriteString("> " + v.styles.Selected.Render(line))
			} else {
				b.WriteString("  " + v.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.QuestionsHelp()...)))
	return b.String()
}

func (v *View) modeLine() string {
	filter := "any"
	if v.difficulty != "" {
		filter = string(v.difficulty)
	}
	if v.progression {
		return "Mode: progression · Start: " + filter
	}
	return "Mode: random · Difficulty: " + filter
}

func titleOf(q domain.Question) string {
	if t := q.Title(); t != "" {
		return t
	}
	return "(untitled)"
}

func (v *View) count() int {
	if v.result == nil {
		return 0
	}
	return len(v.result.Questions)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Database returns the current database.
func (v *View) Database() string {
	return v.database
}

// Difficulty returns the difficulty filter; empty means any.
func (v *View) Difficulty() domain.Difficulty {
	return v.difficulty
}

// Progression reports whether progression mode is on.
func (v *View) Progression() bool {
	return v.progression
}

// Result returns the current batch.
func (v *View) Result() *driving.SessionResult {
	return v.result
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}
