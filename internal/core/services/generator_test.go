package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

func TestGeneratorService_ListDatabases(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc(), categoryDoc())

	names, err := svc.ListDatabases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"main-question-database.json", "hashmap-operations-database.json"}, names)
}

func TestGeneratorService_DatabaseNotFound(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())
	ctx := context.Background()

	_, err := svc.Generate(ctx, "nonexistent", domain.Criteria{Count: 1})
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
	assert.Contains(t, err.Error(), "nonexistent")

	_, err = svc.Describe(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)

	_, err = svc.GenerateProgression(ctx, "nonexistent", domain.DefaultProgressionOptions())
	assert.ErrorIs(t, err, domain.ErrDatabaseNotFound)
}

func TestGeneratorService_Generate_TemplateDifficulty(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	got, err := svc.Generate(context.Background(), "main-question-database.json",
		domain.Criteria{Difficulty: "easy", Count: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"Two Sum", "Contains Duplicate", "Valid Palindrome"}, poolTitles(got))
	for _, q := range got {
		assert.Equal(t, "main-question-database.json", q[domain.FieldSourceDatabase])
	}
}

func TestGeneratorService_Generate_FiltersAcrossLevels(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	got, err := svc.Generate(context.Background(), "main-question-database.json",
		domain.Criteria{DataStructure: "array", Count: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sum of Array", "Two Sum"}, poolTitles(got))
}

func TestGeneratorService_Generate_NoMatches(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	_, err := svc.Generate(context.Background(), "main-question-database.json",
		domain.Criteria{Difficulty: "medium", Count: 1})
	assert.ErrorIs(t, err, domain.ErrNoMatchingQuestions)
}

func TestGeneratorService_Generate_UnknownShapeIsEmpty(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, domain.Document{Name: "other.json"})

	_, err := svc.Generate(context.Background(), "other.json", domain.Criteria{Count: 1})
	assert.ErrorIs(t, err, domain.ErrNoMatchingQuestions)
}

func TestGeneratorService_Generate_DoesNotMutateStore(t *testing.T) {
	svc, store := newTestGenerator(firstRandom{}, templateDoc())
	ctx := context.Background()

	_, err := svc.Generate(ctx, "main-question-database.json", domain.Criteria{Count: 10})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "main-question-database.json")
	require.NoError(t, err)
	for _, level := range doc.Levels {
		for _, category := range level.Categories {
			for _, q := range category.Questions {
				assert.False(t, q.Has(domain.FieldGeneratedAt), "stored record was mutated")
			}
		}
	}
}

func TestGeneratorService_Describe(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc(), categoryDoc())
	ctx := context.Background()

	info, err := svc.Describe(ctx, "main-question-database.json")
	require.NoError(t, err)
	assert.Equal(t, &domain.DatabaseInfo{
		Name:           "Main Question Database",
		Description:    "Core practice questions",
		TotalQuestions: 5,
		Difficulties:   []string{"beginner", "easy", "medium"},
		DataStructures: []string{"array", "hashmap"},
	}, info)

	info, err = svc.Describe(ctx, "hashmap-operations-database.json")
	require.NoError(t, err)
	assert.Equal(t, "hashmap-operations-database.json", info.Name)
	assert.Empty(t, info.Description)
	assert.Zero(t, info.TotalQuestions)
	assert.Equal(t, []string{"easy", "hard"}, info.Difficulties)
	assert.NotNil(t, info.DataStructures)
	assert.Empty(t, info.DataStructures)
}

func TestGeneratorService_Progression_StartExcludesLowerAndAbsentLevels(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	p, err := svc.GenerateProgression(context.Background(), "main-question-database.json",
		domain.ProgressionOptions{StartDifficulty: domain.DifficultyMedium, CountPerLevel: 2})
	require.NoError(t, err)

	assert.Equal(t, []domain.Difficulty{domain.DifficultyMedium}, p.Difficulties())
	medium, ok := p.Get(domain.DifficultyMedium)
	require.True(t, ok)
	assert.NotNil(t, medium)
	assert.Empty(t, medium)

	_, ok = p.Get(domain.DifficultyHard)
	assert.False(t, ok)
}

func TestGeneratorService_Progression_FromBeginner(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	p, err := svc.GenerateProgression(context.Background(), "main-question-database.json",
		domain.DefaultProgressionOptions())
	require.NoError(t, err)

	assert.Equal(t, []domain.Difficulty{"beginner", "easy", "medium"}, p.Difficulties())

	beginner, _ := p.Get(domain.DifficultyBeginner)
	assert.Equal(t, []string{"Swap Two Variables", "Sum of Array"}, poolTitles(beginner))
	easy, _ := p.Get(domain.DifficultyEasy)
	assert.Equal(t, []string{"Two Sum", "Contains Duplicate"}, poolTitles(easy))
}

func TestGeneratorService_Progression_CategoryShape(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, categoryDoc())

	p, err := svc.GenerateProgression(context.Background(), "hashmap-operations-database.json",
		domain.ProgressionOptions{StartDifficulty: domain.DifficultyEasy, CountPerLevel: 5})
	require.NoError(t, err)

	assert.Equal(t, []domain.Difficulty{"easy", "hard"}, p.Difficulties())
	hard, _ := p.Get(domain.DifficultyHard)
	assert.Equal(t, []string{"Group Anagrams"}, poolTitles(hard))
}

func TestGeneratorService_Progression_UnknownStart(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	_, err := svc.GenerateProgression(context.Background(), "main-question-database.json",
		domain.ProgressionOptions{StartDifficulty: "expert", CountPerLevel: 2})
	assert.ErrorIs(t, err, domain.ErrUnknownDifficulty)
}

func TestGeneratorService_Progression_InvalidCount(t *testing.T) {
	svc, _ := newTestGenerator(firstRandom{}, templateDoc())

	_, err := svc.GenerateProgression(context.Background(), "main-question-database.json",
		domain.ProgressionOptions{StartDifficulty: domain.DifficultyBeginner})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
