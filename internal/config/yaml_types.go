package config

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Keys allowed in a struct entry and in a field entry. Decoding through
// yaml.Node does not inherit the decoder's KnownFields setting, so entries
// are checked here.
var (
	structKeys = []string{"name", "fields"}
	fieldKeys  = []string{"name", "type", "bits"}
)

// UnmarshalYAML implements custom YAML unmarshaling for Structs.
// Accepts:
//   - A sequence of {name, fields} entries
//   - A mapping from struct name to its field list, in file order
func (s *Structs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, entry := range node.Content {
			if err := checkKeys(entry, structKeys, "struct"); err != nil {
				return err
			}

			if fields := mappingValue(entry, "fields"); fields != nil {
				if err := checkFieldKeys(fields); err != nil {
					return err
				}
			}
		}

		var defs []StructDef

		err := node.Decode(&defs)
		if err != nil {
			return err
		}

		*s = defs

		return nil

	case yaml.MappingNode:
		// Content alternates key, value.
		defs := make([]StructDef, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]

			var name string

			err := key.Decode(&name)
			if err != nil {
				return err
			}

			if err := checkFieldKeys(val); err != nil {
				return fmt.Errorf("struct %q: %w", name, err)
			}

			var fields []FieldDef

			err = val.Decode(&fields)
			if err != nil {
				return fmt.Errorf("struct %q: %w", name, err)
			}

			defs = append(defs, StructDef{Name: name, Fields: fields})
		}

		*s = defs

		return nil

	default:
		return fmt.Errorf("line %d: expected a list or a mapping of structs, got %v", node.Line, node.Kind)
	}
}

// checkKeys rejects mapping keys outside allowed. Other node kinds are left
// to Decode to report.
func checkKeys(node *yaml.Node, allowed []string, what string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: unknown %s key %q", key.Line, what, key.Value)
		}
	}

	return nil
}

func checkFieldKeys(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return nil
	}

	for _, entry := range node.Content {
		if err := checkKeys(entry, fieldKeys, "field"); err != nil {
			return err
		}
	}

	return nil
}

// mappingValue returns the value stored under key in a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
