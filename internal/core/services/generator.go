package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// GeneratorService selects questions from the loaded databases.
type GeneratorService struct {
	store       driven.DatabaseStore
	normalisers driven.NormaliserRegistry
	selector    *Selector
}

// NewGeneratorService creates a new generator service.
func NewGeneratorService(
	store driven.DatabaseStore,
	normalisers driven.NormaliserRegistry,
	selector *Selector,
) *GeneratorService {
	return &GeneratorService{
		store:       store,
		normalisers: normalisers,
		selector:    selector,
	}
}

// ListDatabases returns the loaded database names in load order.
func (s *GeneratorService) ListDatabases(ctx context.Context) ([]string, error) {
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}
	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
	}
	return names, nil
}

// Describe summarises one database.
func (s *GeneratorService) Describe(ctx context.Context, database string) (*domain.DatabaseInfo, error) {
	doc, err := s.lookup(ctx, database)
	if err != nil {
		return nil, err
	}

	name := doc.Metadata.Name
	if name == "" {
		name = database
	}
	return &domain.DatabaseInfo{
		Name:           name,
		Description:    doc.Metadata.Description,
		TotalQuestions: doc.Metadata.TotalQuestions,
		Difficulties:   s.normalisers.Difficulties(doc),
		DataStructures: s.normalisers.DataStructures(doc),
	}, nil
}

// Generate returns a random batch of questions matching criteria.
func (s *GeneratorService) Generate(
	ctx context.Context, database string, criteria domain.Criteria,
) ([]domain.Question, error) {
	logger.Section("Generate")
	logger.Debug("Database: %s, difficulty=%q data_structure=%q pattern=%q count=%d",
		database, criteria.Difficulty, criteria.DataStructure, criteria.Pattern, criteria.Count)

	doc, err := s.lookup(ctx, database)
	if err != nil {
		return nil, err
	}
	return s.generate(doc, criteria)
}

// GenerateProgression returns one batch per difficulty at or above the start,
// for every difficulty the database declares. Levels below the start and
// levels the database lacks are omitted; levels with no questions are empty.
func (s *GeneratorService) GenerateProgression(
	ctx context.Context, database string, opts domain.ProgressionOptions,
) (*domain.Progression, error) {
	logger.Section("Generate Progression")

	start, ok := opts.StartDifficulty.Rank()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDifficulty, opts.StartDifficulty)
	}
	if opts.CountPerLevel <= 0 {
		return nil, fmt.Errorf("%w: count per level must be positive, got %d",
			domain.ErrInvalidInput, opts.CountPerLevel)
	}

	doc, err := s.lookup(ctx, database)
	if err != nil {
		return nil, err
	}

	available := make(map[string]bool)
	for _, d := range s.normalisers.Difficulties(doc) {
		available[d] = true
	}

	progression := &domain.Progression{Levels: []domain.ProgressionLevel{}}
	for _, d := range domain.DifficultyOrder() {
		rank, _ := d.Rank()
		if rank < start || !available[string(d)] {
			continue
		}

		questions, err := s.generate(doc, domain.Criteria{
			Difficulty: string(d),
			Count:      opts.CountPerLevel,
		})
		switch {
		case errors.Is(err, domain.ErrNoMatchingQuestions):
			logger.Debug("Level %s has no questions", d)
			questions = []domain.Question{}
		case err != nil:
			return nil, fmt.Errorf("failed to generate %s level: %w", d, err)
		}

		progression.Levels = append(progression.Levels, domain.ProgressionLevel{
			Difficulty: d,
			Questions:  questions,
		})
	}

	logger.Info("Progression levels: %v", progression.Difficulties())
	return progression, nil
}

func (s *GeneratorService) generate(doc *domain.Document, criteria domain.Criteria) ([]domain.Question, error) {
	pool := s.normalisers.Normalise(doc, criteria.Difficulty)
	return s.selector.Select(doc.Name, pool, criteria)
}

func (s *GeneratorService) lookup(ctx context.Context, database string) (*domain.Document, error) {
	doc, err := s.store.Get(ctx, database)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatabaseNotFound, database)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get database %s: %w", database, err)
	}
	return doc, nil
}
