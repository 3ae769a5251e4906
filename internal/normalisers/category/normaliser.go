// Package category normalises category-shape databases, where each
// category carries its own difficulty tag ("question_categories").
package category

import (
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.SchemaNormaliser = (*Normaliser)(nil)

// Normaliser handles category-shape documents.
type Normaliser struct{}

// New creates a new category normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Kind returns the document kind this normaliser handles.
func (n *Normaliser) Kind() domain.DocumentKind {
	return domain.KindCategory
}

// Normalise concatenates every category's questions in document order.
// A difficulty skips categories tagged with a different one; untagged
// categories are always kept.
func (n *Normaliser) Normalise(doc *domain.Document, difficulty string) []domain.Question {
	var pool []domain.Question
	for _, category := range doc.Categories {
		if difficulty != "" && category.Difficulty != "" && category.Difficulty != difficulty {
			continue
		}
		pool = append(pool, category.Questions...)
	}
	return pool
}

// Difficulties returns the distinct category tags in first-seen order.
func (n *Normaliser) Difficulties(doc *domain.Document) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, category := range doc.Categories {
		if category.Difficulty == "" || seen[category.Difficulty] {
			continue
		}
		seen[category.Difficulty] = true
		out = append(out, category.Difficulty)
	}
	return out
}
