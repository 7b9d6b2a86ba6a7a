package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Seeder describes database seeding for a schema: how many records the
// factory produces and which many-to-many relationships get pivot rows
// attached.
type Seeder struct{}

// NewSeeder returns the seed-template generator.
func NewSeeder() *Seeder {
	return &Seeder{}
}

func (g *Seeder) Name() string { return "seeder" }

func (g *Seeder) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	count := opts.Seeder.Count
	if count <= 0 {
		count = 10
	}

	model := strcase.ToCamel(s.Name)
	body := map[string]any{
		"class":   model + "Seeder",
		"factory": model + "Factory",
		"count":   count,
	}

	var attach []any
	for _, r := range s.Relationships {
		if r.Kind != schema.ManyToMany {
			continue
		}
		attach = append(attach, map[string]any{
			"relationship": r.Name,
			"target":       strcase.ToCamel(r.Target),
			"pivot_table":  r.PivotTable,
		})
	}
	if len(attach) > 0 {
		body["attach"] = attach
	}
	return NewFragment(g.Name(), body)
}
