package domain

import "time"

// GeneratorVersion is stamped on every generated question.
const GeneratorVersion = "1.0.0"

// Well-known question fields.
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldDifficulty       = "difficulty"
	FieldDataStructure    = "data_structure"
	FieldPattern          = "pattern"
	FieldInputFormat      = "input_format"
	FieldOutputFormat     = "output_format"
	FieldConstraints      = "constraints"
	FieldTestCases        = "test_cases"
	FieldSolutionTemplate = "solution_template"
	FieldTimeComplexity   = "time_complexity"
	FieldSpaceComplexity  = "space_complexity"
	FieldTags             = "tags"
	FieldLearningPoints   = "learning_points"
)

// Provenance fields attached to every selected question.
const (
	FieldGeneratedAt      = "generated_at"
	FieldSourceDatabase   = "source_database"
	FieldGeneratorVersion = "generator_version"
)

// Question is one practice question record.
// Values are JSON-compatible: string, json.Number (or float64), bool, nil,
// []any and map[string]any. Decoded databases keep numbers as json.Number.
// No field is required; each database shape supplies what it has.
type Question map[string]any

// Clone returns a deep copy that shares no maps or slices with q.
func (q Question) Clone() Question {
	if q == nil {
		return nil
	}
	out := make(Question, len(q))
	for k, v := range q {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case Question:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}

// Has reports whether the field is present, even if its value is null.
func (q Question) Has(field string) bool {
	_, ok := q[field]
	return ok
}

// String returns the field as a string when it holds one.
func (q Question) String(field string) (string, bool) {
	s, ok := q[field].(string)
	return s, ok
}

// Title returns the question title or "".
func (q Question) Title() string {
	s, _ := q.String(FieldTitle)
	return s
}

// Matches reports whether field is present and equal to want.
func (q Question) Matches(field, want string) bool {
	s, ok := q.String(field)
	return ok && s == want
}

// AttachProvenance stamps the three provenance fields onto q.
// Every other field is left untouched.
func (q Question) AttachProvenance(database string, at time.Time) {
	q[FieldGeneratedAt] = at.Format(time.RFC3339Nano)
	q[FieldSourceDatabase] = database
	q[FieldGeneratorVersion] = GeneratorVersion
}

// HasProvenance reports whether all three provenance fields are present.
func (q Question) HasProvenance() bool {
	return q.Has(FieldGeneratedAt) && q.Has(FieldSourceDatabase) && q.Has(FieldGeneratorVersion)
}

// TestCase is one worked example attached to a question.
type TestCase struct {
	// Input is the example input; absent inputs are nil.
	Input any

	// Output is the expected output; absent outputs are nil.
	Output any

	// Explanation is optional prose.
	Explanation string

	// HasExplanation distinguishes an empty explanation from a missing one.
	HasExplanation bool
}

// TestCases decodes the test_cases field.
// Entries that are not objects are skipped.
func (q Question) TestCases() []TestCase {
	raw, ok := q[FieldTestCases].([]any)
	if !ok {
		return nil
	}
	cases := make([]TestCase, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tc := TestCase{Input: m["input"], Output: m["output"]}
		if expl, ok := m["explanation"]; ok {
			tc.HasExplanation = true
			if s, ok := expl.(string); ok {
				tc.Explanation = s
			}
		}
		cases = append(cases, tc)
	}
	return cases
}
