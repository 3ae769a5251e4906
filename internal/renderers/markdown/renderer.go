// Package markdown renders questions in the section-labelled long form.
package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// StyleFunc decorates a heading or label before it is written.
type StyleFunc func(s string) string

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeadingStyle decorates the title line and every section label.
// Used to colour terminal output; files are written undecorated.
func WithHeadingStyle(style StyleFunc) Option {
	return func(r *Renderer) {
		if style != nil {
			r.style = style
		}
	}
}

// Renderer produces the markdown format.
type Renderer struct {
	style StyleFunc
}

// New creates a new markdown renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		style: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format returns the format this renderer produces.
func (r *Renderer) Format() domain.OutputFormat {
	return domain.FormatMarkdown
}

// Render writes each present field under its fixed label, in a fixed order.
// Absent fields produce nothing.
func (r *Renderer) Render(q domain.Question) (string, error) {
	var b strings.Builder

	if v, ok := present(q, domain.FieldTitle); ok {
		b.WriteString(r.style("# "+text(v)) + "\n\n")
	}
	r.line(&b, q, domain.FieldDescription, "Description", plain)
	r.line(&b, q, domain.FieldDifficulty, "Difficulty", func(v any) string {
		// Casers are not safe for concurrent use.
		return cases.Title(language.Und).String(text(v))
	})
	r.line(&b, q, domain.FieldDataStructure, "Data Structure", plain)
	r.line(&b, q, domain.FieldPattern, "Pattern", plain)
	r.line(&b, q, domain.FieldInputFormat, "Input Format", code)
	r.line(&b, q, domain.FieldOutputFormat, "Output Format", code)
	r.line(&b, q, domain.FieldConstraints, "Constraints", plain)

	if _, ok := present(q, domain.FieldTestCases); ok {
		b.WriteString(r.label("Test Cases") + "\n\n")
		for i, tc := range q.TestCases() {
			fmt.Fprintf(&b, "%s\n", r.style(fmt.Sprintf("**Example %d:**", i+1)))
			b.WriteString("```\n")
			input := tc.Input
			if input == nil {
				input = map[string]any{}
			}
			fmt.Fprintf(&b, "Input: %s\n", text(input))
			fmt.Fprintf(&b, "Output: %s\n", text(tc.Output))
			if tc.HasExplanation {
				fmt.Fprintf(&b, "Explanation: %s\n", tc.Explanation)
			}
			b.WriteString("```\n\n")
		}
	}

	if v, ok := present(q, domain.FieldSolutionTemplate); ok {
		b.WriteString(r.label("Solution Template") + "\n\n")
		fmt.Fprintf(&b, "```python\n%s\n```\n\n", text(v))
	}

	r.line(&b, q, domain.FieldTimeComplexity, "Time Complexity", plain)
	r.line(&b, q, domain.FieldSpaceComplexity, "Space Complexity", plain)
	r.line(&b, q, domain.FieldTags, "Tags", func(v any) string {
		return strings.Join(items(v), ", ")
	})

	if v, ok := present(q, domain.FieldLearningPoints); ok {
		b.WriteString(r.label("Learning Points") + "\n")
		for _, point := range items(v) {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// RenderBatch numbers each question and separates them with a rule.
func (r *Renderer) RenderBatch(questions []domain.Question) (string, error) {
	var b strings.Builder
	for i, q := range questions {
		body, err := r.Render(q)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "## Question %d\n\n", i+1)
		b.WriteString(body)
		b.WriteString("\n---\n\n")
	}
	return b.String(), nil
}

func (r *Renderer) label(name string) string {
	return r.style("**" + name + ":**")
}

func (r *Renderer) line(b *strings.Builder, q domain.Question, field, name string, format func(any) string) {
	v, ok := present(q, field)
	if !ok {
		return
	}
	fmt.Fprintf(b, "%s %s\n\n", r.label(name), format(v))
}

// present treats a null field as absent.
func present(q domain.Question, field string) (any, bool) {
	v, ok := q[field]
	return v, ok && v != nil
}

func plain(v any) string {
	return text(v)
}

func code(v any) string {
	return "`" + text(v) + "`"
}

// text renders strings verbatim and everything else as compact JSON.
func text(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// items spreads a list into its rendered elements; scalars become one item.
func items(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = text(item)
		}
		return out
	case []string:
		return val
	case nil:
		return nil
	default:
		return []string{text(val)}
	}
}
