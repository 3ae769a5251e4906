package renderers

import (
	"fmt"
	"sync"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/renderers/compact"
	"github.com/exponent-labs/leetgen/internal/renderers/markdown"
)

// Ensure Registry implements the interface.
var _ driven.RendererRegistry = (*Registry)(nil)

// Registry maps output formats to renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[domain.OutputFormat]driven.Renderer
	order     []domain.OutputFormat
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[domain.OutputFormat]driven.Renderer),
	}
}

// NewDefaultRegistry creates a registry with the markdown and JSON renderers.
// Options are passed to the markdown renderer.
func NewDefaultRegistry(opts ...markdown.Option) *Registry {
	r := NewRegistry()
	r.Register(markdown.New(opts...))
	r.Register(compact.New())
	return r
}

// Register adds a renderer, replacing any for the same format.
func (r *Registry) Register(renderer driven.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	format := renderer.Format()
	if _, exists := r.renderers[format]; !exists {
		r.order = append(r.order, format)
	}
	r.renderers[format] = renderer
}

// Get returns the renderer for format.
func (r *Registry) Get(format domain.OutputFormat) (driven.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return renderer, nil
}

// Formats lists the registered formats in registration order.
func (r *Registry) Formats() []domain.OutputFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.OutputFormat, len(r.order))
	copy(out, r.order)
	return out
}
