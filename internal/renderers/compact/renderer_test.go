package compact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, domain.FormatJSON, New().Format())
}

func TestRender_RoundTrip(t *testing.T) {
	q := domain.Question{
		"title":      "Group Anagrams <hard>",
		"difficulty": "medium",
		"test_cases": []any{
			map[string]any{"input": map[string]any{"strs": []any{"eat", "tea"}}, "output": []any{[]any{"eat", "tea"}}},
		},
		"count":             3.0,
		"optional":          nil,
		"premium":           false,
		"generated_at":      "2025-03-01T10:30:00.123456Z",
		"source_database":   "main-question-database.json",
		"generator_version": domain.GeneratorVersion,
	}

	out, err := New().Render(q)
	require.NoError(t, err)

	var back domain.Question
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, q, back)
}

func TestRender_Indented(t *testing.T) {
	out, err := New().Render(domain.Question{"a": "x", "b": []any{1.0}})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"a\": \"x\",\n  \"b\": [\n    1\n  ]\n}", out)
}

func TestRender_NoHTMLEscaping(t *testing.T) {
	out, err := New().Render(domain.Question{"constraints": "1 <= n && n < 10"})
	require.NoError(t, err)
	assert.Contains(t, out, "1 <= n && n < 10")
}

func TestRender_Nil(t *testing.T) {
	out, err := New().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestRenderBatch(t *testing.T) {
	questions := []domain.Question{{"title": "A"}, {"title": "B"}}

	out, err := New().RenderBatch(questions)
	require.NoError(t, err)

	var back []domain.Question
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, questions, back)

	empty, err := New().RenderBatch(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}

func TestRender_UnsupportedValue(t *testing.T) {
	_, err := New().Render(domain.Question{"ch": make(chan int)})
	assert.Error(t, err)
}
