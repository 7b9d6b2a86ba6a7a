package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Action describes single-purpose invokable actions for a schema: one
// handle-method description per CRUD verb.
type Action struct{}

// NewAction returns the action generator.
func NewAction() *Action {
	return &Action{}
}

func (g *Action) Name() string { return "action" }

func (g *Action) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	verbs := opts.Action.Verbs
	if len(verbs) == 0 {
		verbs = crudVerbs
	}

	model := strcase.ToCamel(s.Name)
	binding := strcase.ToLowerCamel(s.Name)

	actions := make([]any, 0, len(verbs))
	for _, verb := range verbs {
		entry := map[string]any{
			"class":  strcase.ToCamel(verb) + model + "Action",
			"method": "handle",
			"logic":  verb + " a " + model,
		}
		switch verb {
		case "create":
			entry["parameters"] = []any{"attributes"}
		case "list":
			entry["parameters"] = []any{"filters"}
		case "update":
			entry["parameters"] = []any{binding, "attributes"}
		default:
			entry["parameters"] = []any{binding}
		}
		actions = append(actions, entry)
	}

	body := map[string]any{
		"model":   model,
		"actions": actions,
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}
