package generator

import (
	"fmt"

	"scaffgen/registry"
	"scaffgen/schema"
)

// Migration describes the persistence layer for a schema: one column
// entry per field with its resolved storage primitive, plus foreign key
// and pivot table entries for relationships.
type Migration struct {
	manager *registry.Manager
}

// NewMigration returns the persistence-description generator.
func NewMigration(m *registry.Manager) *Migration {
	return &Migration{manager: m}
}

func (g *Migration) Name() string { return "migration" }

func (g *Migration) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	columns := make([]any, 0, len(s.Fields)+3)
	for _, f := range s.Fields {
		columns = append(columns, g.column(f))
	}

	if s.Options.Timestamps && opts.Migration.TimestampColumns {
		columns = append(columns,
			map[string]any{"name": "created_at", "type": "datetime", "nullable": true},
			map[string]any{"name": "updated_at", "type": "datetime", "nullable": true},
		)
	}
	if s.Options.SoftDeletes && opts.Migration.SoftDeleteColumns {
		columns = append(columns,
			map[string]any{"name": "deleted_at", "type": "datetime", "nullable": true},
		)
	}

	body := map[string]any{
		"table":   s.Table,
		"columns": columns,
	}

	if fks := g.foreignKeys(s); len(fks) > 0 {
		body["foreign_keys"] = fks
	}
	if pivots := g.pivotTables(s); len(pivots) > 0 {
		body["pivot_tables"] = pivots
	}

	return NewFragment(g.Name(), body)
}

// column maps one field to its storage entry, resolving the storage
// primitive through the plugin-first behavior lookup. Field-level
// length/precision/scale override the type defaults.
func (g *Migration) column(f schema.Field) map[string]any {
	behavior := g.manager.Behavior(f.Type)
	storage := behavior.Storage

	entry := map[string]any{
		"name": f.Name,
		"type": storage.ColumnType,
	}
	if storage.Unsigned {
		entry["unsigned"] = true
	}

	length := storage.Length
	if f.Length != nil {
		length = *f.Length
	}
	if length > 0 {
		entry["length"] = length
	}

	if registry.DecimalType(behavior.TypeID) || storage.ColumnType == "decimal" {
		precision, scale := storage.Precision, storage.Scale
		if f.Precision != nil {
			precision = *f.Precision
		}
		if f.Scale != nil {
			scale = *f.Scale
		}
		if precision > 0 {
			entry["precision"] = precision
			entry["scale"] = scale
		}
	}

	entry["nullable"] = f.Nullable
	if f.Unique {
		entry["unique"] = true
	}
	if f.Default != nil {
		entry["default"] = f.Default
	}
	if behavior.TypeID == "enum" {
		if values, ok := f.Attribute("values"); ok {
			entry["values"] = values
		}
	}
	return entry
}

// foreignKeys emits one constraint entry per belongs-to relationship,
// referencing the pluralized snake-cased target table.
func (g *Migration) foreignKeys(s *schema.Schema) []any {
	var out []any
	for _, r := range s.Relationships {
		if r.Kind != schema.BelongsTo {
			continue
		}
		column := r.ForeignKey
		if column == "" {
			column = schema.ForeignKeyFor(r.Target)
		}
		out = append(out, map[string]any{
			"column":     column,
			"references": r.LocalKey,
			"on":         schema.TableFor(r.Target),
			"name":       fmt.Sprintf("fk_%s_%s", s.Table, column),
		})
	}
	return out
}

// pivotTables emits one entry per many-to-many relationship.
func (g *Migration) pivotTables(s *schema.Schema) []any {
	var out []any
	for _, r := range s.Relationships {
		if r.Kind != schema.ManyToMany {
			continue
		}
		out = append(out, map[string]any{
			"table": r.PivotTable,
			"columns": []any{
				schema.ForeignKeyFor(s.Name),
				schema.ForeignKeyFor(r.Target),
			},
		})
	}
	return out
}
