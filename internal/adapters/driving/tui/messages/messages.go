// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDatabases lists the loaded databases.
	ViewDatabases ViewType = iota
	// ViewQuestions lists the questions of the current batch.
	ViewQuestions
	// ViewQuestion shows one question in long form.
	ViewQuestion
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDatabases:
		return "databases"
	case ViewQuestions:
		return "questions"
	case ViewQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DatabasesLoaded carries the database names from the generator.
type DatabasesLoaded struct {
	Names []string
	Err   error
}

// DatabaseSelected is sent when a database is chosen from the list.
type DatabaseSelected struct {
	Name string
}

// GenerateRequested asks the app to draw a new batch from the current database.
type GenerateRequested struct{}

// QuestionsGenerated carries a drawn and rendered batch.
type QuestionsGenerated struct {
	Database string
	Result   *driving.SessionResult
	Err      error
}

// QuestionSelected is sent when a question is opened from the batch.
type QuestionSelected struct {
	Index int
}

// DatabaseReloaded is sent when a watched database file was reloaded.
type DatabaseReloaded struct {
	Name string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
