// Package loader parses model documents and splits them into the core
// section this system understands and host-owned extension sections.
// Parsing preserves field declaration order, which drives the field
// order of every generated fragment.
package loader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"scaffgen/schema"
)

// Document is one parsed model document: the schema definition built from
// the core section plus the untouched extension sections.
type Document struct {
	Definition schema.Definition
	Core       map[string]any
	Extensions map[string]any
}

// Load reads and parses a model document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loader: parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a YAML (or JSON, YAML being a superset) model document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshalling document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be a mapping")
	}

	raw, err := nodeToAny(mapping)
	if err != nil {
		return nil, err
	}
	rawMap, _ := raw.(map[string]any)

	core, ext, err := Split(rawMap)
	if err != nil {
		return nil, err
	}

	coreNode := mapping
	if node := childNode(mapping, "core"); node != nil {
		coreNode = node
	}

	def, err := definitionFromNode(coreNode)
	if err != nil {
		return nil, err
	}

	return &Document{Definition: def, Core: core, Extensions: ext}, nil
}

// definitionFromNode builds a schema.Definition from the core mapping
// node, walking the yaml node pairs directly so the declaration order of
// fields and relationships survives.
func definitionFromNode(node *yaml.Node) (schema.Definition, error) {
	var def schema.Definition

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch key {
		case "model", "name":
			if def.Name == "" {
				def.Name = value.Value
			}
		case "table":
			def.Table = value.Value
		case "fields":
			fields, err := fieldsFromNode(value)
			if err != nil {
				return def, err
			}
			def.Fields = fields
		case "relationships", "relations":
			rels, err := relationshipsFromNode(value)
			if err != nil {
				return def, err
			}
			def.Relationships = append(def.Relationships, rels...)
		case "options":
			var cfg struct {
				Timestamps  bool `yaml:"timestamps"`
				SoftDeletes bool `yaml:"soft_deletes"`
			}
			if err := value.Decode(&cfg); err != nil {
				return def, fmt.Errorf("decoding options: %w", err)
			}
			def.Options = schema.Options{Timestamps: cfg.Timestamps, SoftDeletes: cfg.SoftDeletes}
		case "metadata":
			meta, err := nodeToAny(value)
			if err != nil {
				return def, err
			}
			if m, ok := meta.(map[string]any); ok {
				def.Metadata = m
			}
		}
	}
	return def, nil
}

// fieldsFromNode decodes the fields mapping in declaration order. A field
// config is either a bare type string or a mapping; unrecognized mapping
// keys land in the field's attribute bag.
func fieldsFromNode(node *yaml.Node) ([]schema.Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fields must be a mapping of name to config")
	}

	var fields []schema.Field
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := node.Content[i+1]

		field, err := fieldFromNode(name, value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func fieldFromNode(name string, node *yaml.Node) (schema.Field, error) {
	field := schema.Field{Name: name, Attributes: map[string]any{}}

	if node.Kind == yaml.ScalarNode {
		field.Type = node.Value
		return field, nil
	}
	if node.Kind != yaml.MappingNode {
		return field, fmt.Errorf("field %q config must be a type string or a mapping", name)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch key {
		case "type":
			field.Type = value.Value
		case "nullable":
			if err := value.Decode(&field.Nullable); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "unique":
			if err := value.Decode(&field.Unique); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "default":
			v, err := nodeToAny(value)
			if err != nil {
				return field, err
			}
			field.Default = v
		case "length":
			field.Length = new(int)
			if err := value.Decode(field.Length); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "precision":
			field.Precision = new(int)
			if err := value.Decode(field.Precision); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "scale":
			field.Scale = new(int)
			if err := value.Decode(field.Scale); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "rules":
			if err := value.Decode(&field.ExplicitRules); err != nil {
				return field, fmt.Errorf("field %q: %w", name, err)
			}
		case "attributes":
			attrs, err := nodeToAny(value)
			if err != nil {
				return field, err
			}
			m, ok := attrs.(map[string]any)
			if !ok {
				return field, fmt.Errorf("field %q: attributes must be a mapping", name)
			}
			for k, v := range m {
				field.Attributes[k] = v
			}
		default:
			// Anything else is an attribute: standard ones like
			// references, or plugin custom attributes.
			v, err := nodeToAny(value)
			if err != nil {
				return field, err
			}
			field.Attributes[key] = v
		}
	}
	return field, nil
}

// relationshipsFromNode decodes the relationships mapping. A config is
// either a "kind: Target" shorthand string or a mapping.
func relationshipsFromNode(node *yaml.Node) ([]schema.Relationship, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("relationships must be a mapping of name to config")
	}

	var rels []schema.Relationship
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value := node.Content[i+1]

		rel := schema.Relationship{Name: name}
		switch value.Kind {
		case yaml.ScalarNode:
			kind, target, ok := strings.Cut(value.Value, ":")
			if !ok {
				return nil, fmt.Errorf("relationship %q shorthand must be \"kind:Target\"", name)
			}
			rel.Kind = schema.RelationshipKind(strings.TrimSpace(kind))
			rel.Target = strings.TrimSpace(target)
		case yaml.MappingNode:
			var cfg struct {
				Kind       string `yaml:"kind"`
				Type       string `yaml:"type"`
				Target     string `yaml:"target"`
				Model      string `yaml:"model"`
				ForeignKey string `yaml:"foreign_key"`
				LocalKey   string `yaml:"local_key"`
				PivotTable string `yaml:"pivot_table"`
				Through    string `yaml:"through"`
			}
			if err := value.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("relationship %q: %w", name, err)
			}
			if cfg.Kind == "" {
				cfg.Kind = cfg.Type
			}
			if cfg.Target == "" {
				cfg.Target = cfg.Model
			}
			rel.Kind = schema.RelationshipKind(cfg.Kind)
			rel.Target = cfg.Target
			rel.ForeignKey = cfg.ForeignKey
			rel.LocalKey = cfg.LocalKey
			rel.PivotTable = cfg.PivotTable
			rel.Through = cfg.Through
		default:
			return nil, fmt.Errorf("relationship %q config must be a string or a mapping", name)
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

// childNode returns the value node for a top-level key, or nil.
func childNode(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// nodeToAny converts a yaml node into plain Go values (map[string]any,
// []any, scalars).
func nodeToAny(node *yaml.Node) (any, error) {
	var out any
	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding document node: %w", err)
	}
	return out, nil
}
