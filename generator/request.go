package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/rules"
	"scaffgen/schema"
)

// Request describes the validation request classes for a schema: a
// create variant with the full derived rule list and an update variant
// with presence requirements relaxed.
type Request struct {
	engine *rules.Engine
}

// NewRequest returns the validation-request generator.
func NewRequest(e *rules.Engine) *Request {
	return &Request{engine: e}
}

func (g *Request) Name() string { return "request" }

func (g *Request) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	create, err := g.ruleSet(s, rules.Create)
	if err != nil {
		return Fragment{}, err
	}
	update, err := g.ruleSet(s, rules.Update)
	if err != nil {
		return Fragment{}, err
	}

	model := strcase.ToCamel(s.Name)
	body := map[string]any{
		"create": map[string]any{
			"class":     "Store" + model + "Request",
			"authorize": opts.Request.Authorize,
			"rules":     create,
		},
		"update": map[string]any{
			"class":     "Update" + model + "Request",
			"authorize": opts.Request.Authorize,
			"rules":     update,
		},
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}

// ruleSet derives the per-field rules in declaration order. Attribute
// validation problems surface through the validator, not here: the
// request fragment reports the rules that did derive.
func (g *Request) ruleSet(s *schema.Schema, ctx rules.Context) ([]any, error) {
	out := make([]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		fieldRules, _ := g.engine.Derive(s, f, ctx)
		out = append(out, map[string]any{
			"field": f.Name,
			"rules": toAnySlice(fieldRules),
		})
	}
	return out, nil
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
