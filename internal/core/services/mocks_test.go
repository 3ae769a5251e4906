package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/exponent-labs/leetgen/internal/adapters/driven/storage/memory"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/normalisers"
)

// firstRandom always picks the lowest remaining index, so selection keeps pool order.
type firstRandom struct{}

func (firstRandom) IntN(int) int { return 0 }

// lastRandom always picks the highest remaining index.
type lastRandom struct{}

func (lastRandom) IntN(n int) int { return n - 1 }

// seededRandom is deterministic for property tests.
type seededRandom struct {
	r *rand.Rand
}

func newSeededRandom(seed uint64) *seededRandom {
	return &seededRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRandom) IntN(n int) int { return s.r.IntN(n) }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testTime = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// templateDoc has beginner and easy levels, and a medium level with no questions.
func templateDoc() domain.Document {
	return domain.Document{
		Name: "main-question-database.json",
		Kind: domain.KindTemplate,
		Metadata: domain.Metadata{
			Name:           "Main Question Database",
			Description:    "Core practice questions",
			TotalQuestions: 5,
			DataStructures: []string{"array", "hashmap"},
		},
		Levels: []domain.Level{
			{Difficulty: "beginner", Categories: []domain.Category{
				{Name: "variables", Questions: []domain.Question{
					{"title": "Swap Two Variables", "data_structure": "variable", "pattern": "temp"},
					{"title": "Sum of Array", "data_structure": "array", "pattern": "iteration"},
				}},
			}},
			{Difficulty: "easy", Categories: []domain.Category{
				{Name: "arrays", Questions: []domain.Question{
					{"title": "Two Sum", "data_structure": "array", "pattern": "hashmap-lookup"},
					{"title": "Contains Duplicate", "data_structure": "hashmap", "pattern": "hashmap-lookup"},
				}},
				{Name: "strings", Questions: []domain.Question{
					{"title": "Valid Palindrome", "data_structure": "string", "pattern": "two-pointers"},
				}},
			}},
			{Difficulty: "medium", Categories: []domain.Category{{Name: "empty"}}},
		},
	}
}

func categoryDoc() domain.Document {
	return domain.Document{
		Name: "hashmap-operations-database.json",
		Kind: domain.KindCategory,
		Categories: []domain.Category{
			{Name: "counting", Difficulty: "easy", Questions: []domain.Question{{"title": "Count Chars"}}},
			{Name: "grouping", Difficulty: "hard", Questions: []domain.Question{{"title": "Group Anagrams"}}},
		},
	}
}

func newTestGenerator(random driven.RandomSource, docs ...domain.Document) (*GeneratorService, *memory.DatabaseStore) {
	store := memory.NewDatabaseStore()
	_ = store.Replace(context.Background(), docs)
	return NewGeneratorService(store, normalisers.NewDefaultRegistry(), NewSelector(random, fixedClock{testTime})), store
}

// mockLoader returns fixed documents and failures, counting calls.
type mockLoader struct {
	mu       sync.Mutex
	files    []string
	docs     []domain.Document
	failures []error
	calls    int
}

func (m *mockLoader) Location() string { return "mock://databases" }

func (m *mockLoader) Files() []string { return m.files }

func (m *mockLoader) Load(_ context.Context) ([]domain.Document, []error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.docs, m.failures
}

func (m *mockLoader) set(docs []domain.Document, failures []error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = docs
	m.failures = failures
}

// mockWatcher emits whatever is sent on events.
type mockWatcher struct {
	events chan string
	err    error
}

func (m *mockWatcher) Watch(_ context.Context) (<-chan string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

// mockSink captures writes.
type mockSink struct {
	target  string
	content string
	err     error
}

func (m *mockSink) Write(_ context.Context, target, content string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.target = target
	m.content = content
	return "/abs/" + target, nil
}

// failingHistory rejects every record.
type failingHistory struct {
	memory.HistoryStore
}

func (f *failingHistory) Record(context.Context, domain.GenerationRecord) error {
	return errors.New("disk full")
}
