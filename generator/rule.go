package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/rules"
	"scaffgen/schema"
)

// Rule describes one custom validation rule class per field, carrying the
// field's derived rule list so the host can scaffold rule objects that
// encapsulate it.
type Rule struct {
	engine *rules.Engine
}

// NewRule returns the custom-rule generator.
func NewRule(e *rules.Engine) *Rule {
	return &Rule{engine: e}
}

func (g *Rule) Name() string { return "rule" }

func (g *Rule) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	model := strcase.ToCamel(s.Name)

	entries := make([]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		fieldRules, _ := g.engine.Derive(s, f, rules.Create)
		entries = append(entries, map[string]any{
			"class":  "Valid" + model + strcase.ToCamel(f.Name),
			"field":  f.Name,
			"rules":  toAnySlice(fieldRules),
			"method": "passes",
			"logic":  "validate " + f.Name + " against the derived constraints",
		})
	}

	body := map[string]any{
		"model": model,
		"rules": entries,
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}
