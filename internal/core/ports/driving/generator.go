package driving

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// GeneratorService selects questions from the loaded databases.
type GeneratorService interface {
	// ListDatabases returns the loaded database names in load order.
	ListDatabases(ctx context.Context) ([]string, error)

	// Describe summarises one database.
	// Returns domain.ErrDatabaseNotFound if the database is not loaded.
	Describe(ctx context.Context, database string) (*domain.DatabaseInfo, error)

	// Generate returns a random batch of questions matching criteria.
	// Returns domain.ErrDatabaseNotFound if the database is not loaded and
	// domain.ErrNoMatchingQuestions if the filters eliminate the whole pool.
	Generate(ctx context.Context, database string, criteria domain.Criteria) ([]domain.Question, error)

	// GenerateProgression returns one batch per difficulty at or above the start.
	// Levels with no questions are present and empty.
	GenerateProgression(
		ctx context.Context, database string, opts domain.ProgressionOptions,
	) (*domain.Progression, error)
}
