package domain

import "time"

// GenerationMode distinguishes single batches from progressions.
type GenerationMode string

// Generation modes.
const (
	ModeSingle      GenerationMode = "single"
	ModeProgression GenerationMode = "progression"
)

// GenerationRecord is an informational log entry for one generation session.
// It is never consulted during selection.
type GenerationRecord struct {
	// ID uniquely identifies the session.
	ID string

	// Database is the database the questions came from.
	Database string

	// Mode is single or progression.
	Mode GenerationMode

	// Criteria are the filters used (Difficulty holds the start level for progressions).
	Criteria Criteria

	// Format is the output format rendered.
	Format OutputFormat

	// Output is the file target, empty for stdout.
	Output string

	// Titles are the titles of the questions produced, in output order.
	Titles []string

	// CreatedAt is when the session ran.
	CreatedAt time.Time
}
