package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Policy describes the authorization policy for a schema: one ability
// per controller action plus an optional before hook.
type Policy struct{}

// NewPolicy returns the policy generator.
func NewPolicy() *Policy {
	return &Policy{}
}

func (g *Policy) Name() string { return "policy" }

// abilityFor maps controller actions to policy abilities.
var abilityFor = map[string]string{
	"index":   "viewAny",
	"show":    "view",
	"store":   "create",
	"update":  "update",
	"destroy": "delete",
}

func (g *Policy) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	model := strcase.ToCamel(s.Name)
	binding := strcase.ToLowerCamel(s.Name)

	actions := opts.Controller.Actions
	if len(actions) == 0 {
		actions = restActions
	}

	abilities := make([]any, 0, len(actions))
	for _, action := range actions {
		ability, ok := abilityFor[action]
		if !ok {
			ability = action
		}
		entry := map[string]any{
			"name":  ability,
			"logic": "decide whether the user may " + ability + " " + model,
		}
		switch ability {
		case "viewAny", "create":
			entry["parameters"] = []any{"user"}
		default:
			entry["parameters"] = []any{"user", binding}
		}
		abilities = append(abilities, entry)
	}

	body := map[string]any{
		"class":     model + "Policy",
		"model":     model,
		"abilities": abilities,
	}
	if opts.Policy.BeforeHook {
		body["before"] = map[string]any{
			"parameters": []any{"user", "ability"},
			"logic":      "grant administrators every ability",
		}
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}
