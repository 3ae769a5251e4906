package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/keymap"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/messages"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/styles"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/views/databases"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/views/question"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/views/questions"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	// count is the batch size in random mode.
	count int

	// perLevel is the batch size per level in progression mode.
	perLevel int

	databasesView *databases.View
	questionsView *questions.View
	questionView  *question.View

	currentView messages.ViewType

	// status is a one-line notice shown under every view.
	status string

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// Option configures an App.
type Option func(*App)

// WithCount sets the random-mode batch size.
func WithCount(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.count = n
		}
	}
}

// WithCountPerLevel sets the progression batch size per level.
func WithCountPerLevel(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.perLevel = n
		}
	}
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	k := keymap.DefaultKeyMap()

	a := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keys:          k,
		count:         5,
		perLevel:      domain.DefaultProgressionOptions().CountPerLevel,
		databasesView: databases.NewView(s, k),
		questionsView: questions.NewView(s, k),
		questionView:  question.NewView(s, k),
		currentView:   messages.ViewDatabases,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("leetgen"),
		a.loadDatabases(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewDatabases:
			a.databasesView, cmd = a.databasesView.Update(msg)
		case messages.ViewQuestions:
			a.questionsView, cmd = a.questionsView.Update(msg)
		case messages.ViewQuestion:
			a.questionView, cmd = a.questionView.Update(msg)
		}
		return a, cmd

	case messages.DatabasesLoaded:
		a.databasesView.SetDatabases(msg.Names, msg.Err)
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, nil

	case messages.DatabaseSelected:
		a.questionsView.SetDatabase(msg.Name)
		a.currentView = messages.ViewQuestions
		return a, a.generate()

	case messages.GenerateRequested:
		return a, a.generate()

	case messages.QuestionsGenerated:
		if msg.Database != a.questionsView.Database() {
			return a, nil
		}
		a.questionsView.SetResult(msg.Result, msg.Err)
		return a, nil

	case messages.QuestionSelected:
		result := a.questionsView.Result()
		if result == nil {
			return a, nil
		}
		a.questionView.SetQuestions(result.Rendered, msg.Index)
		a.currentView = messages.ViewQuestion
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.DatabaseReloaded:
		if msg.Err != nil {
			a.status = fmt.Sprintf("✗ Reload of %s failed: %v", msg.Name, msg.Err)
		} else {
			a.status = fmt.Sprintf("✓ Reloaded %s", msg.Name)
		}
		return a, a.loadDatabases()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewQuestion {
		a.questionView, cmd = a.questionView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDatabases:
		body = a.databasesView.View()
	case messages.ViewQuestions:
		body = a.questionsView.View()
	case messages.ViewQuestion:
		body = a.questionView.View()
	}

	if a.status == "" {
		return body
	}
	return body + "\n" + a.styles.StatusBar.Render(a.status)
}

// loadDatabases returns a command that lists the loaded databases.
func (a *App) loadDatabases() tea.Cmd {
	generator := a.ports.Generator
	ctx := a.ctx
	return func() tea.Msg {
		names, err := generator.ListDatabases(ctx)
		return messages.DatabasesLoaded{Names: names, Err: err}
	}
}

// generate returns a command that draws a batch with the current filters.
func (a *App) generate() tea.Cmd {
	req := a.sessionRequest()
	a.questionsView.SetLoading()

	session := a.ports.Session
	ctx := a.ctx
	return func() tea.Msg {
		result, err := session.Run(ctx, req)
		return messages.QuestionsGenerated{Database: req.Database, Result: result, Err: err}
	}
}

func (a *App) sessionRequest() driving.SessionRequest {
	req := driving.SessionRequest{
		Database: a.questionsView.Database(),
		Format:   domain.FormatMarkdown,
	}
	difficulty := a.questionsView.Difficulty()

	if a.questionsView.Progression() {
		req.Progression = true
		req.ProgressionOptions = domain.DefaultProgressionOptions()
		req.ProgressionOptions.CountPerLevel = a.perLevel
		if difficulty != "" {
			req.ProgressionOptions.StartDifficulty = difficulty
		}
		return req
	}

	req.Criteria = domain.Criteria{
		Difficulty: string(difficulty),
		Count:      a.count,
	}
	return req
}

// SetDimensions sets the terminal dimensions for all views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.databasesView.SetDimensions(width, height)
	a.questionsView.SetDimensions(width, height)
	a.questionView.SetDimensions(width, height-1)
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Status returns the status line.
func (a *App) Status() string {
	return a.status
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Context returns the app's context.
func (a *App) Context() context.Context {
	return a.ctx
}
