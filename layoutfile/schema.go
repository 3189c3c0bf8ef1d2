package layoutfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the top-level document of a layout file.
type File struct {
	Version string     `yaml:"version"`
	Fields  []FieldDef `yaml:"fields"`
	Crown   NodeDef    `yaml:"crown"`
}

// FieldDef declares one model field.
type FieldDef struct {
	ID          string `yaml:"id"`
	Optional    bool   `yaml:"optional"`
	ExtraTarget bool   `yaml:"extra_target"`
}

// NodeDef is one crown node. Exactly one of Dict, List, Field or None
// is set after unmarshaling.
type NodeDef struct {
	Dict  *DictDef
	List  *ListDef
	Field string
	None  bool
}

// DictDef describes a dict node. Keys preserves the declared key order.
type DictDef struct {
	Extra string
	Keys  []KeyedNode
}

// KeyedNode is one key→child entry of a dict node.
type KeyedNode struct {
	Key  string
	Node NodeDef
}

// ListDef describes a list node.
type ListDef struct {
	Extra string    `yaml:"extra"`
	Items []NodeDef `yaml:"items"`
}

// UnmarshalYAML implements custom YAML unmarshaling for NodeDef.
// Accepts:
//   - Scalar "none": a placeholder position
//   - {field: id}: a field leaf
//   - {dict: ...}: a dict node
//   - {list: ...}: a list node
func (n *NodeDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "none" {
			return fmt.Errorf("unknown crown node %q (expected 'none')", str)
		}

		*n = NodeDef{None: true}

		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("expected single-key map like {field: id}, got %d keys", len(node.Content)/2)
		}

		var kind string

		err := node.Content[0].Decode(&kind)
		if err != nil {
			return err
		}

		val := node.Content[1]

		switch kind {
		case "field":
			var id string

			err := val.Decode(&id)
			if err != nil {
				return fmt.Errorf("invalid field reference: %w", err)
			}

			*n = NodeDef{Field: id}

			return nil

		case "dict":
			var d DictDef

			err := val.Decode(&d)
			if err != nil {
				return err
			}

			*n = NodeDef{Dict: &d}

			return nil

		case "list":
			var l ListDef

			err := val.Decode(&l)
			if err != nil {
				return err
			}

			*n = NodeDef{List: &l}

			return nil

		default:
			return fmt.Errorf("unknown crown node kind %q (expected 'dict', 'list' or 'field')", kind)
		}

	default:
		return fmt.Errorf("expected string or map for crown node, got %v", node.Kind)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for DictDef. The
// keys mapping is walked through the raw node content so the declared
// key order survives decoding.
func (d *DictDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected map for dict node, got %v", node.Kind)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string

		err := node.Content[i].Decode(&key)
		if err != nil {
			return err
		}

		val := node.Content[i+1]

		switch key {
		case "extra":
			err := val.Decode(&d.Extra)
			if err != nil {
				return fmt.Errorf("invalid extra policy: %w", err)
			}

		case "keys":
			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("expected map for dict keys, got %v", val.Kind)
			}

			for j := 0; j+1 < len(val.Content); j += 2 {
				var entry KeyedNode

				err := val.Content[j].Decode(&entry.Key)
				if err != nil {
					return err
				}

				err = val.Content[j+1].Decode(&entry.Node)
				if err != nil {
					return fmt.Errorf("key %q: %w", entry.Key, err)
				}

				d.Keys = append(d.Keys, entry)
			}

		default:
			return fmt.Errorf("unknown dict node key %q (expected 'extra' or 'keys')", key)
		}
	}

	return nil
}
