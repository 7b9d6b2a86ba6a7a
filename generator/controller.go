package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Controller describes the HTTP controller scaffolding for a schema:
// one entry per RESTful action with its request/resource references and
// a logic placeholder.
type Controller struct{}

// NewController returns the controller scaffolding generator.
func NewController() *Controller {
	return &Controller{}
}

func (g *Controller) Name() string { return "controller" }

func (g *Controller) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	actions := opts.Controller.Actions
	if len(actions) == 0 {
		actions = restActions
	}

	model := strcase.ToCamel(s.Name)
	binding := strcase.ToLowerCamel(s.Name)

	entries := make([]any, 0, len(actions))
	for _, action := range actions {
		entries = append(entries, g.action(action, model, binding, opts))
	}

	body := map[string]any{
		"class":   model + "Controller",
		"model":   model,
		"binding": binding,
		"api":     opts.Controller.Api,
		"actions": entries,
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}

func (g *Controller) action(name, model, binding string, opts Options) map[string]any {
	entry := map[string]any{
		"name": name,
	}

	switch name {
	case "index":
		entry["parameters"] = []any{}
		entry["returns"] = model + "Resource collection"
		entry["paginated"] = true
		entry["logic"] = "list " + model + " records"
	case "store":
		entry["parameters"] = []any{"Store" + model + "Request"}
		entry["returns"] = model + "Resource"
		entry["logic"] = "create a " + model + " from validated input"
	case "show":
		entry["parameters"] = []any{binding}
		entry["returns"] = model + "Resource"
		entry["logic"] = "show one " + model
	case "update":
		entry["parameters"] = []any{"Update" + model + "Request", binding}
		entry["returns"] = model + "Resource"
		entry["logic"] = "update the " + model + " from validated input"
	case "destroy":
		entry["parameters"] = []any{binding}
		entry["returns"] = "no content"
		entry["logic"] = "delete the " + model
	default:
		entry["parameters"] = []any{binding}
		entry["returns"] = model + "Resource"
		entry["logic"] = "custom action " + name
	}

	if override, ok := opts.Controller.LogicOverrides[name]; ok {
		entry["logic"] = override
	}
	return entry
}
