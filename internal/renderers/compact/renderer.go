// Package compact renders questions as indented JSON.
// Output parses back into a record equal to the input, provenance included.
package compact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

const indent = "  "

// Renderer produces the JSON format.
type Renderer struct{}

// New creates a new JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns the format this renderer produces.
func (r *Renderer) Format() domain.OutputFormat {
	return domain.FormatJSON
}

// Render serialises one question as an indented JSON object.
func (r *Renderer) Render(q domain.Question) (string, error) {
	if q == nil {
		q = domain.Question{}
	}
	return encode(q)
}

// RenderBatch serialises questions as one indented JSON array.
func (r *Renderer) RenderBatch(questions []domain.Question) (string, error) {
	if questions == nil {
		questions = []domain.Question{}
	}
	return encode(questions)
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
