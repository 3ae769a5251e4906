package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Alias expansion limits. The converted output may grow to
// maxExpansion times the input, but never less than minExpansionBudget.
const (
	maxAliasDepth      = 64
	maxExpansion       = 10
	minExpansionBudget = 1 << 20
)

// ErrYAMLTooLarge indicates alias expansion exceeded the output budget.
var ErrYAMLTooLarge = errors.New("yaml alias expansion too large")

type converter struct {
	buf   bytes.Buffer
	limit int
}

// yamlToJSON converts a YAML document to JSON, keeping mapping order.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, errors.New("empty document")
	}

	c := &converter{limit: max(len(data)*maxExpansion, minExpansionBudget)}
	if err := c.writeNode(&root, 0); err != nil {
		return nil, err
	}
	return c.buf.Bytes(), nil
}

func (c *converter) writeNode(node *yaml.Node, depth int) error {
	if c.buf.Len() > c.limit {
		return fmt.Errorf("%w: output exceeds %d bytes", ErrYAMLTooLarge, c.limit)
	}
	buf := &c.buf

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return c.writeNode(node.Content[0], depth)

	case yaml.AliasNode:
		if depth >= maxAliasDepth {
			return errors.New("alias nesting too deep")
		}
		return c.writeNode(node.Alias, depth+1)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := c.writeNode(node.Content[i+1], depth); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := c.writeNode(item, depth); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		buf.Write(encoded)
		if buf.Len() > c.limit {
			return fmt.Errorf("%w: output exceeds %d bytes", ErrYAMLTooLarge, c.limit)
		}
		return nil

	default:
		return fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
}
