package generator

import (
	"strings"

	"github.com/iancoleman/strcase"

	"scaffgen/registry"
	"scaffgen/schema"
)

// Factory describes synthetic sample-data generation for a schema: one
// faker-generator mapping per field. A name-substring override table
// picks a more specific generator than the bare type would (a string
// field called "email" fakes an email address, not a random word).
type Factory struct {
	manager *registry.Manager
}

// NewFactory returns the sample-data generator.
func NewFactory(m *registry.Manager) *Factory {
	return &Factory{manager: m}
}

func (g *Factory) Name() string { return "factory" }

// nameOverrides maps field name substrings to faker generators, checked
// in order so the more specific entries win.
var nameOverrides = []struct {
	substring string
	faker     string
}{
	{"email", "safeEmail"},
	{"first_name", "firstName"},
	{"last_name", "lastName"},
	{"username", "userName"},
	{"name", "name"},
	{"url", "url"},
	{"slug", "slug"},
	{"phone", "phoneNumber"},
	{"uuid", "uuid"},
	{"guid", "uuid"},
	{"address", "address"},
	{"city", "city"},
	{"country", "country"},
	{"zip", "postcode"},
	{"postcode", "postcode"},
	{"title", "sentence"},
	{"description", "paragraph"},
	{"summary", "paragraph"},
	{"body", "paragraphs"},
	{"password", "password"},
	{"token", "sha256"},
	{"ip", "ipv4"},
}

func (g *Factory) Generate(s *schema.Schema, opts Options) (Fragment, error) {
	definitions := make([]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		definitions = append(definitions, map[string]any{
			"field": f.Name,
			"faker": g.fakerFor(f),
		})
	}

	body := map[string]any{
		"class":      strcase.ToCamel(s.Name) + "Factory",
		"model":      strcase.ToCamel(s.Name),
		"definition": definitions,
	}
	if len(opts.Factory.States) > 0 {
		states := make([]any, 0, len(opts.Factory.States))
		for _, state := range opts.Factory.States {
			states = append(states, map[string]any{
				"name":  state,
				"logic": "override attributes for the " + state + " state",
			})
		}
		body["states"] = states
	}
	return NewFragment(g.Name(), body)
}

// fakerFor picks the generator for one field: name-substring overrides
// first, then the resolved type's hint.
func (g *Factory) fakerFor(f schema.Field) string {
	lower := strings.ToLower(f.Name)
	for _, o := range nameOverrides {
		if strings.Contains(lower, o.substring) {
			return o.faker
		}
	}
	return g.manager.Behavior(f.Type).FakerHint
}
