package normalisers

import (
	"sync"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/normalisers/category"
	"github.com/exponent-labs/leetgen/internal/normalisers/template"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches documents to the normaliser for their kind.
type Registry struct {
	mu          sync.RWMutex
	normalisers map[domain.DocumentKind]driven.SchemaNormaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make(map[domain.DocumentKind]driven.SchemaNormaliser),
	}
}

// NewDefaultRegistry creates a registry with the template and category normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(template.New())
	r.Register(category.New())
	return r
}

// Register adds a normaliser, replacing any for the same kind.
func (r *Registry) Register(normaliser driven.SchemaNormaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers[normaliser.Kind()] = normaliser
}

// Normalise flattens doc with the normaliser for its kind.
func (r *Registry) Normalise(doc *domain.Document, difficulty string) []domain.Question {
	n, ok := r.lookup(doc)
	if !ok {
		return nil
	}
	return n.Normalise(doc, difficulty)
}

// Difficulties lists doc's difficulty names.
func (r *Registry) Difficulties(doc *domain.Document) []string {
	n, ok := r.lookup(doc)
	if !ok {
		return []string{}
	}
	return n.Difficulties(doc)
}

// DataStructures lists the data-structure tags from doc's metadata.
// The result is a copy; absent metadata yields an empty slice.
func (r *Registry) DataStructures(doc *domain.Document) []string {
	if doc == nil {
		return []string{}
	}
	out := make([]string, len(doc.Metadata.DataStructures))
	copy(out, doc.Metadata.DataStructures)
	return out
}

func (r *Registry) lookup(doc *domain.Document) (driven.SchemaNormaliser, bool) {
	if doc == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.normalisers[doc.Kind]
	return n, ok
}
