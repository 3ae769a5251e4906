package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatabaseNotFound indicates the requested database is not loaded.
	ErrDatabaseNotFound = errors.New("database not found")

	// ErrNoMatchingQuestions indicates the filters eliminated the entire pool.
	ErrNoMatchingQuestions = errors.New("no questions found matching the criteria")

	// ErrUnsupportedFormat indicates an unknown output format selector.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownDifficulty indicates a difficulty outside the fixed order.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// DatabaseLoadError reports that a single database document could not be
// loaded. Loading continues with the remaining databases.
type DatabaseLoadError struct {
	// Database is the logical database name (usually the file name).
	Database string

	// Location is where the loader looked (a path or a repository URL).
	Location string

	// Err is the underlying cause.
	Err error
}

func (e *DatabaseLoadError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("loading database %s: %v", e.Database, e.Err)
	}
	return fmt.Sprintf("loading database %s from %s: %v", e.Database, e.Location, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DatabaseLoadError) Unwrap() error {
	return e.Err
}
