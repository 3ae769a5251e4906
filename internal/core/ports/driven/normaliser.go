package driven

import "github.com/exponent-labs/leetgen/internal/core/domain"

// SchemaNormaliser flattens one database shape into a question pool.
// Each document kind (template, category) has its own normaliser.
type SchemaNormaliser interface {
	// Kind returns the document kind this normaliser handles.
	Kind() domain.DocumentKind

	// Normalise returns the pool of questions in document order.
	// An empty difficulty means no difficulty filter.
	// Returned records are the document's own; callers must clone before mutating.
	Normalise(doc *domain.Document, difficulty string) []domain.Question

	// Difficulties lists the difficulty names the document declares,
	// in first-seen order.
	Difficulties(doc *domain.Document) []string
}

// NormaliserRegistry selects the normaliser for a document.
type NormaliserRegistry interface {
	// Register adds a normaliser, replacing any for the same kind.
	Register(normaliser SchemaNormaliser)

	// Normalise flattens doc with the normaliser for its kind.
	// Documents of unknown kind produce an empty pool.
	Normalise(doc *domain.Document, difficulty string) []domain.Question

	// Difficulties lists doc's difficulty names.
	Difficulties(doc *domain.Document) []string

	// DataStructures lists the data-structure tags from doc's metadata.
	DataStructures(doc *domain.Document) []string
}
