package schema

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// TypeResolver answers whether a field type identifier is registered,
// either as a builtin type or as a plugin (including aliases).
type TypeResolver interface {
	Known(typeID string) bool
}

// BuildOptions controls schema construction behavior.
type BuildOptions struct {
	// StrictTypes turns an unknown field type into a construction error.
	// The default (lenient) behavior lets unknown types fall back to a
	// generic string assumption during rule derivation.
	StrictTypes bool
}

// Definition is the programmatic input to New. The loader package builds
// one from a parsed document; callers may also assemble one directly.
type Definition struct {
	Name          string
	Table         string
	Fields        []Field
	Relationships []Relationship
	Options       Options
	Metadata      map[string]any
}

// New validates a Definition and constructs an immutable Schema from it.
// Construction fails on an empty name, zero fields, duplicate field or
// relationship names, an unknown relationship kind, a many-to-many
// relationship without a pivot table, and (in strict mode) an unknown
// field type.
func New(def Definition, resolver TypeResolver, opts BuildOptions) (*Schema, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("schema: model name is required")
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("schema: model %q must define at least one field", def.Name)
	}

	table := def.Table
	if table == "" {
		table = TableFor(def.Name)
	}

	s := &Schema{
		Name:     def.Name,
		Table:    table,
		Options:  def.Options,
		Metadata: def.Metadata,
	}

	seenFields := make(map[string]bool, len(def.Fields))
	for _, f := range def.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema: model %q has a field without a name", def.Name)
		}
		if seenFields[f.Name] {
			return nil, fmt.Errorf("schema: duplicate field %q in model %q", f.Name, def.Name)
		}
		seenFields[f.Name] = true

		if f.Type == "" {
			f.Type = "string"
		}
		if opts.StrictTypes && resolver != nil && !resolver.Known(f.Type) {
			return nil, fmt.Errorf("schema: unknown field type %q on %s.%s", f.Type, def.Name, f.Name)
		}
		if f.Attributes == nil {
			f.Attributes = map[string]any{}
		}
		s.Fields = append(s.Fields, f)
	}

	seenRels := make(map[string]bool, len(def.Relationships))
	for _, r := range def.Relationships {
		if r.Name == "" {
			return nil, fmt.Errorf("schema: model %q has a relationship without a name", def.Name)
		}
		if seenRels[r.Name] {
			return nil, fmt.Errorf("schema: duplicate relationship %q in model %q", r.Name, def.Name)
		}
		seenRels[r.Name] = true

		if !ValidKind(r.Kind) {
			return nil, fmt.Errorf("schema: relationship %q in model %q has unknown kind %q", r.Name, def.Name, r.Kind)
		}
		if r.Target == "" && r.Kind != MorphTo {
			return nil, fmt.Errorf("schema: relationship %q in model %q has no target", r.Name, def.Name)
		}
		if r.Kind == ManyToMany && r.PivotTable == "" {
			return nil, fmt.Errorf("schema: many-to-many relationship %q in model %q requires a pivot_table", r.Name, def.Name)
		}

		applyKeyConventions(&r)
		s.Relationships = append(s.Relationships, r)
	}

	return s, nil
}

// applyKeyConventions fills ForeignKey/LocalKey defaults the way the
// generated artifacts expect them: <snake(target)>_id referencing id.
func applyKeyConventions(r *Relationship) {
	if r.ForeignKey == "" && r.Target != "" {
		switch r.Kind {
		case BelongsTo:
			r.ForeignKey = strcase.ToSnake(r.Target) + "_id"
		case HasOne, HasMany, MorphOne, MorphMany:
			// Key lives on the target side; named after the owner is the
			// target generator's concern, so leave it to ForeignKeyFor.
		}
	}
	if r.LocalKey == "" {
		r.LocalKey = "id"
	}
}

// TableFor derives the conventional table name for a model name.
func TableFor(model string) string {
	return inflection.Plural(strcase.ToSnake(model))
}

// ForeignKeyFor derives the conventional foreign key column for a model.
func ForeignKeyFor(model string) string {
	return strcase.ToSnake(model) + "_id"
}
