package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Service describes a CRUD service layer for a schema: one structurally
// complete method description per verb.
type Service struct{}

// NewService returns the service-layer generator.
func NewService() *Service {
	return &Service{}
}

func (g *Service) Name() string { return "service" }

func (g *Service) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	verbs := opts.Service.Methods
	if len(verbs) == 0 {
		verbs = crudVerbs
	}

	model := strcase.ToCamel(s.Name)
	binding := strcase.ToLowerCamel(s.Name)

	methods := make([]any, 0, len(verbs))
	for _, verb := range verbs {
		methods = append(methods, g.method(verb, model, binding))
	}

	body := map[string]any{
		"class":   model + "Service",
		"model":   model,
		"methods": methods,
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}

func (g *Service) method(verb, model, binding string) map[string]any {
	entry := map[string]any{}
	switch verb {
	case "create":
		entry["name"] = "create" + model
		entry["parameters"] = []any{"attributes"}
		entry["returns"] = model
		entry["logic"] = "persist a new " + model + " from attributes"
	case "read":
		entry["name"] = "get" + model
		entry["parameters"] = []any{"id"}
		entry["returns"] = model
		entry["logic"] = "fetch one " + model + " by id"
	case "update":
		entry["name"] = "update" + model
		entry["parameters"] = []any{binding, "attributes"}
		entry["returns"] = model
		entry["logic"] = "apply attributes to the " + model + " and persist"
	case "delete":
		entry["name"] = "delete" + model
		entry["parameters"] = []any{binding}
		entry["returns"] = "bool"
		entry["logic"] = "remove the " + model
	case "list":
		entry["name"] = "list" + model
		entry["parameters"] = []any{"filters", "page"}
		entry["returns"] = model + " page"
		entry["logic"] = "query " + model + " records with filters"
	default:
		entry["name"] = verb + model
		entry["parameters"] = []any{binding}
		entry["returns"] = model
		entry["logic"] = "custom operation " + verb
	}
	return entry
}
