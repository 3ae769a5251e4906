// Package template normalises template-shape databases, where categories
// are grouped under difficulty levels ("question_templates").
package template

import (
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.SchemaNormaliser = (*Normaliser)(nil)

// Normaliser handles template-shape documents.
type Normaliser struct{}

// New creates a new template normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Kind returns the document kind this normaliser handles.
func (n *Normaliser) Kind() domain.DocumentKind {
	return domain.KindTemplate
}

// Normalise concatenates every category's examples across every level,
// in document order. A difficulty restricts traversal to that level.
func (n *Normaliser) Normalise(doc *domain.Document, difficulty string) []domain.Question {
	var pool []domain.Question
	for _, level := range doc.Levels {
		if difficulty != "" && level.Difficulty != difficulty {
			continue
		}
		for _, category := range level.Categories {
			pool = append(pool, category.Questions...)
		}
	}
	return pool
}

// Difficulties returns the level names in document order.
func (n *Normaliser) Difficulties(doc *domain.Document) []string {
	out := make([]string, 0, len(doc.Levels))
	for _, level := range doc.Levels {
		out = append(out, level.Difficulty)
	}
	return out
}
