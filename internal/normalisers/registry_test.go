package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

type stubNormaliser struct {
	pool []domain.Question
}

func (s *stubNormaliser) Kind() domain.DocumentKind { return domain.KindTemplate }

func (s *stubNormaliser) Normalise(_ *domain.Document, _ string) []domain.Question {
	return s.pool
}

func (s *stubNormaliser) Difficulties(_ *domain.Document) []string { return []string{"stub"} }

func TestNewDefaultRegistry_DispatchesByKind(t *testing.T) {
	r := NewDefaultRegistry()

	templateDoc := &domain.Document{
		Kind: domain.KindTemplate,
		Levels: []domain.Level{
			{Difficulty: "easy", Categories: []domain.Category{{Questions: []domain.Question{{"title": "T"}}}}},
		},
	}
	categoryDoc := &domain.Document{
		Kind:       domain.KindCategory,
		Categories: []domain.Category{{Difficulty: "hard", Questions: []domain.Question{{"title": "C"}}}},
	}

	require.Len(t, r.Normalise(templateDoc, ""), 1)
	assert.Equal(t, "T", r.Normalise(templateDoc, "")[0].Title())
	assert.Equal(t, []string{"easy"}, r.Difficulties(templateDoc))

	require.Len(t, r.Normalise(categoryDoc, ""), 1)
	assert.Equal(t, "C", r.Normalise(categoryDoc, "")[0].Title())
	assert.Equal(t, []string{"hard"}, r.Difficulties(categoryDoc))
}

func TestRegistry_UnknownKindIsEmpty(t *testing.T) {
	r := NewDefaultRegistry()
	doc := &domain.Document{Name: "other.json", Kind: domain.KindUnknown}

	assert.Empty(t, r.Normalise(doc, ""))
	assert.Empty(t, r.Difficulties(doc))
	assert.Empty(t, r.DataStructures(doc))
	assert.Empty(t, r.Normalise(nil, ""))
}

func TestRegistry_RegisterReplacesKind(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(&stubNormaliser{pool: []domain.Question{{"title": "stub"}}})

	doc := &domain.Document{Kind: domain.KindTemplate}
	pool := r.Normalise(doc, "")

	require.Len(t, pool, 1)
	assert.Equal(t, "stub", pool[0].Title())
	assert.Equal(t, []string{"stub"}, r.Difficulties(doc))
}

func TestRegistry_DataStructuresFromMetadata(t *testing.T) {
	r := NewDefaultRegistry()
	doc := &domain.Document{
		Kind:     domain.KindCategory,
		Metadata: domain.Metadata{DataStructures: []string{"array", "hashmap"}},
	}

	got := r.DataStructures(doc)
	assert.Equal(t, []string{"array", "hashmap"}, got)

	got[0] = "changed"
	assert.Equal(t, "array", doc.Metadata.DataStructures[0])
}
