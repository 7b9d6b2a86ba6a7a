package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/registry"
	"scaffgen/schema"
)

// Resource describes the API transformation layer: per-field wire types
// with conditional presence for nullable fields, and per-relationship
// loading strategy (always loaded, paginated, pivot-aware).
type Resource struct {
	manager *registry.Manager
}

// NewResource returns the API-transform generator.
func NewResource(m *registry.Manager) *Resource {
	return &Resource{manager: m}
}

func (g *Resource) Name() string { return "resource" }

func (g *Resource) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	perPage := opts.Resource.PerPage
	if perPage <= 0 {
		perPage = 15
	}

	fields := make([]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, g.field(f))
	}

	relations := make([]any, 0, len(s.Relationships))
	for _, r := range s.Relationships {
		relations = append(relations, g.relation(r, perPage))
	}

	body := map[string]any{
		"class":  strcase.ToCamel(s.Name) + "Resource",
		"fields": fields,
	}
	if len(relations) > 0 {
		body["relationships"] = relations
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}

// field narrows the storage-side type to its wire type. Nullable fields
// are additionally exposed as conditionally present.
func (g *Resource) field(f schema.Field) map[string]any {
	behavior := g.manager.Behavior(f.Type)

	entry := map[string]any{
		"name": f.Name,
		"type": behavior.WireType,
	}
	if format := wireFormat(behavior.TypeID); format != "" {
		entry["format"] = format
	}
	if f.Nullable {
		entry["when_present"] = true
	}
	return entry
}

func (g *Resource) relation(r schema.Relationship, perPage int) map[string]any {
	entry := map[string]any{
		"name":   r.Name,
		"kind":   string(r.Kind),
		"target": strcase.ToCamel(r.Target) + "Resource",
	}
	switch r.Kind {
	case schema.BelongsTo:
		entry["always_loaded"] = true
	case schema.HasMany, schema.HasManyThrough, schema.MorphMany:
		entry["paginated"] = true
		entry["per_page"] = perPage
	case schema.ManyToMany:
		entry["paginated"] = true
		entry["per_page"] = perPage
		entry["with_pivot"] = true
	}
	return entry
}

// wireFormat returns the serialization format hint for temporal builtin
// types; every temporal type narrows to a formatted string on the wire.
func wireFormat(typeID string) string {
	switch typeID {
	case "date":
		return "Y-m-d"
	case "datetime", "timestamp":
		return "Y-m-d H:i:s"
	case "time":
		return "H:i:s"
	}
	return ""
}
