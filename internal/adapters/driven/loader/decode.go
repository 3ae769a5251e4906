package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// Top-level and category keys recognised in database documents.
const (
	keyMetadata       = "metadata"
	keyTemplates      = "question_templates"
	keyCategories     = "question_categories"
	keyExamples       = "examples"
	keyQuestions      = "questions"
	keyDifficulty     = "difficulty"
	keyName           = "name"
	keyDescription    = "description"
	keyTotalQuestions = "total_questions"
	keyDataStructures = "data_structures"
)

// ErrMalformed indicates a recognised key holds the wrong kind of value.
var ErrMalformed = errors.New("malformed database")

// IsSupported reports whether name has a decodable extension.
func IsSupported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Decode parses a database document named name.
// Files ending in .yaml or .yml are read as YAML; everything else as JSON.
// Key order is preserved so pools follow document order.
func Decode(name string, data []byte) (domain.Document, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		converted, err := yamlToJSON(data)
		if err != nil {
			return domain.Document{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
		data = converted
	}

	top, err := parseObject(data)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if top == nil {
		return domain.Document{}, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	doc := domain.Document{Name: name}

	if raw, ok := top.get(keyMetadata); ok {
		meta, err := decodeMetadata(raw)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Metadata = meta
	}

	if raw, ok := top.get(keyTemplates); ok {
		levels, err := decodeLevels(raw)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Kind = domain.KindTemplate
		doc.Levels = levels
		return doc, nil
	}

	if raw, ok := top.get(keyCategories); ok {
		categories, err := decodeCategories(raw)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Kind = domain.KindCategory
		doc.Categories = categories
	}

	return doc, nil
}

func decodeMetadata(raw json.RawMessage) (domain.Metadata, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %s must be an object", ErrMalformed, keyMetadata)
	}

	var meta domain.Metadata
	meta.Name, _ = m[keyName].(string)
	meta.Description, _ = m[keyDescription].(string)
	if n, ok := m[keyTotalQuestions].(float64); ok {
		meta.TotalQuestions = int(n)
	}
	if list, ok := m[keyDataStructures].([]any); ok {
		meta.DataStructures = make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				meta.DataStructures = append(meta.DataStructures, s)
			}
		}
	}
	return meta, nil
}

func decodeLevels(raw json.RawMessage) ([]domain.Level, error) {
	obj, err := requireObject(raw, keyTemplates)
	if err != nil {
		return nil, err
	}

	levels := make([]domain.Level, 0, len(obj))
	for _, level := range obj {
		categories, err := requireObject(level.value, keyTemplates+"."+level.key)
		if err != nil {
			return nil, err
		}

		l := domain.Level{Difficulty: level.key}
		for _, cat := range categories {
			path := keyTemplates + "." + level.key + "." + cat.key
			fields, err := requireObject(cat.value, path)
			if err != nil {
				return nil, err
			}
			questions, err := decodeQuestions(fields, keyExamples, path)
			if err != nil {
				return nil, err
			}
			l.Categories = append(l.Categories, domain.Category{Name: cat.key, Questions: questions})
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func decodeCategories(raw json.RawMessage) ([]domain.Category, error) {
	obj, err := requireObject(raw, keyCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(obj))
	for _, cat := range obj {
		path := keyCategories + "." + cat.key
		fields, err := requireObject(cat.value, path)
		if err != nil {
			return nil, err
		}

		c := domain.Category{Name: cat.key}
		if rawDiff, ok := fields.get(keyDifficulty); ok {
			if err := json.Unmarshal(rawDiff, &c.Difficulty); err != nil {
				return nil, fmt.Errorf("%w: %s.%s must be a string", ErrMalformed, path, keyDifficulty)
			}
		}
		c.Questions, err = decodeQuestions(fields, keyQuestions, path)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func decodeQuestions(fields object, key, path string) ([]domain.Question, error) {
	raw, ok := fields.get(key)
	if !ok {
		return nil, nil
	}
	// Numbers stay json.Number so large integers survive unchanged.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var questions []domain.Question
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("%w: %s.%s must be a list of objects", ErrMalformed, path, key)
	}
	for i, q := range questions {
		if q == nil {
			return nil, fmt.Errorf("%w: %s.%s[%d] is null", ErrMalformed, path, key, i)
		}
	}
	return questions, nil
}

func requireObject(raw json.RawMessage, path string) (object, error) {
	obj, err := parseObject(raw)
	if err != nil || obj == nil {
		return nil, fmt.Errorf("%w: %s must be an object", ErrMalformed, path)
	}
	return obj, nil
}

// member is one key of a JSON object with its undecoded value.
type member struct {
	key   string
	value json.RawMessage
}

// object is a JSON object in source order.
type object []member

// get returns the value for key. Null values count as absent.
func (o object) get(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.key == key {
			if bytes.Equal(bytes.TrimSpace(m.value), []byte("null")) {
				return nil, false
			}
			return m.value, true
		}
	}
	return nil, false
}

// parseObject reads a JSON object keeping member order.
// A repeated key replaces the earlier value in place.
// It returns nil, nil when data holds a valid non-object value.
func parseObject(data []byte) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		if !json.Valid(data) {
			return nil, errors.New("invalid JSON")
		}
		return nil, nil
	}

	obj := object{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			obj[i].value = value
			continue
		}
		index[key] = len(obj)
		obj = append(obj, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after object")
	}
	return obj, nil
}
