package generator

import (
	"github.com/iancoleman/strcase"

	"scaffgen/schema"
)

// Observer describes the model lifecycle observer for a schema: one hook
// description per lifecycle event, extended with the restore pair when
// soft deletes are enabled.
type Observer struct{}

// NewObserver returns the observer generator.
func NewObserver() *Observer {
	return &Observer{}
}

func (g *Observer) Name() string { return "observer" }

var lifecycleHooks = []string{
	"creating", "created",
	"updating", "updated",
	"deleting", "deleted",
}

func (g *Observer) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	hooks := opts.Observer.Hooks
	if len(hooks) == 0 {
		hooks = append([]string(nil), lifecycleHooks...)
		if s.Options.SoftDeletes {
			hooks = append(hooks, "restoring", "restored")
		}
	}

	model := strcase.ToCamel(s.Name)
	binding := strcase.ToLowerCamel(s.Name)

	entries := make([]any, 0, len(hooks))
	for _, hook := range hooks {
		entries = append(entries, map[string]any{
			"name":       hook,
			"parameters": []any{binding},
			"logic":      "react to the " + hook + " event of " + model,
		})
	}

	body := map[string]any{
		"class": model + "Observer",
		"model": model,
		"hooks": entries,
	}
	if opts.Namespace != "" {
		body["namespace"] = opts.Namespace
	}
	return NewFragment(g.Name(), body)
}
