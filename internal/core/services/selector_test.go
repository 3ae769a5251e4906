package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

func testPool() []domain.Question {
	return []domain.Question{
		{"title": "A", "data_structure": "array", "pattern": "two-pointers"},
		{"title": "B", "data_structure": "array", "pattern": "sliding-window"},
		{"title": "C", "data_structure": "hashmap", "pattern": "two-pointers"},
		{"title": "D"},
	}
}

func poolTitles(qs []domain.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Title()
	}
	return out
}

func TestSelector_CountAtLeastPoolReturnsPermutation(t *testing.T) {
	s := NewSelector(newSeededRandom(1), fixedClock{testTime})

	for _, count := range []int{4, 5, 100} {
		got, err := s.Select("db.json", testPool(), domain.Criteria{Count: count})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, poolTitles(got))
	}
}

func TestSelector_CountBelowPoolReturnsDistinct(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s := NewSelector(newSeededRandom(seed), fixedClock{testTime})

		got, err := s.Select("db.json", testPool(), domain.Criteria{Count: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)

		titles := poolTitles(got)
		assert.NotEqual(t, titles[0], titles[1])
		for _, title := range titles {
			assert.Contains(t, []string{"A", "B", "C", "D"}, title)
		}
	}
}

func TestSelector_UsesInjectedRandomness(t *testing.T) {
	first := NewSelector(firstRandom{}, fixedClock{testTime})
	got, err := first.Select("db.json", testPool(), domain.Criteria{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, poolTitles(got))

	last := NewSelector(lastRandom{}, fixedClock{testTime})
	got, err = last.Select("db.json", testPool(), domain.Criteria{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A"}, poolTitles(got))
}

func TestSelector_AttachesProvenanceWithoutAlteringFields(t *testing.T) {
	s := NewSelector(firstRandom{}, fixedClock{testTime})
	pool := []domain.Question{{"title": "X"}}

	got, err := s.Select("main-question-database.json", pool, domain.Criteria{Count: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, domain.Question{
		"title":             "X",
		"generated_at":      "2025-06-01T09:30:00Z",
		"source_database":   "main-question-database.json",
		"generator_version": "1.0.0",
	}, got[0])
}

func TestSelector_NeverMutatesPool(t *testing.T) {
	s := NewSelector(firstRandom{}, fixedClock{testTime})
	pool := []domain.Question{{"title": "X", "tags": []any{"a"}}}

	first, err := s.Select("db.json", pool, domain.Criteria{Count: 1})
	require.NoError(t, err)
	first[0]["tags"].([]any)[0] = "changed"

	second, err := s.Select("db.json", pool, domain.Criteria{Count: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.Question{"title": "X", "tags": []any{"a"}}, pool[0])
	assert.Equal(t, "a", second[0]["tags"].([]any)[0])
}

func TestSelector_Filters(t *testing.T) {
	s := NewSelector(firstRandom{}, fixedClock{testTime})

	tests := []struct {
		name     string
		criteria domain.Criteria
		want     []string
	}{
		{"data structure", domain.Criteria{DataStructure: "array", Count: 10}, []string{"A", "B"}},
		{"pattern", domain.Criteria{Pattern: "two-pointers", Count: 10}, []string{"A", "C"}},
		{"both", domain.Criteria{DataStructure: "hashmap", Pattern: "two-pointers", Count: 10}, []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Select("db.json", testPool(), tt.criteria)
			require.NoError(t, err)
			assert.Equal(t, tt.want, poolTitles(got))
		})
	}
}

func TestSelector_NoMatches(t *testing.T) {
	s := NewSelector(firstRandom{}, fixedClock{testTime})

	_, err := s.Select("db.json", testPool(), domain.Criteria{Pattern: "dp", Count: 1})
	assert.ErrorIs(t, err, domain.ErrNoMatchingQuestions)

	_, err = s.Select("db.json", nil, domain.Criteria{Count: 1})
	assert.ErrorIs(t, err, domain.ErrNoMatchingQuestions)
}

func TestSelector_InvalidCount(t *testing.T) {
	s := NewSelector(firstRandom{}, fixedClock{testTime})

	_, err := s.Select("db.json", testPool(), domain.Criteria{Count: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilter_NoCriteriaReturnsPool(t *testing.T) {
	pool := testPool()
	assert.Len(t, Filter(pool, domain.Criteria{}), len(pool))
}
