package generator

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// fingerprintNamespace scopes fragment fingerprints; uuid.NewSHA1 over it
// plus the canonical JSON body gives a stable content id.
var fingerprintNamespace = uuid.MustParse("8a9e6f2c-3d41-4f7b-9c58-1e0a72d4b6f3")

// Meta carries fragment metadata. GeneratedAt is the only non-
// deterministic part of a fragment; Fingerprint is a pure function of the
// fragment body, so two generations of the same schema and options carry
// the same fingerprint.
type Meta struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
}

// Fragment is one generator's structured output: a nested key/value tree
// under a single top-level key equal to the generator's name. A Fragment
// is never mutated after it is returned.
type Fragment struct {
	Name string
	Tree map[string]any
	Meta Meta
}

// NewFragment wraps a generator body into a Fragment keyed by name.
func NewFragment(name string, body map[string]any) (Fragment, error) {
	tree := map[string]any{name: body}
	canonical, err := json.Marshal(tree)
	if err != nil {
		return Fragment{}, fmt.Errorf("fragment %q: encoding body: %w", name, err)
	}
	return Fragment{
		Name: name,
		Tree: tree,
		Meta: Meta{
			GeneratedAt: time.Now().UTC(),
			Fingerprint: uuid.NewSHA1(fingerprintNamespace, canonical).String(),
		},
	}, nil
}

// Body returns the tree under the fragment's own key.
func (f Fragment) Body() map[string]any {
	body, _ := f.Tree[f.Name].(map[string]any)
	return body
}

// document is the full serialized shape: the tree plus a _meta entry.
func (f Fragment) document() map[string]any {
	doc := make(map[string]any, len(f.Tree)+1)
	for k, v := range f.Tree {
		doc[k] = v
	}
	doc["_meta"] = map[string]any{
		"generated_at": f.Meta.GeneratedAt.Format(time.RFC3339),
		"fingerprint":  f.Meta.Fingerprint,
	}
	return doc
}

// ToYAML renders the structured-document form.
func (f Fragment) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(f.document())
	if err != nil {
		return nil, fmt.Errorf("fragment %q: encoding yaml: %w", f.Name, err)
	}
	return out, nil
}

// ToJSON renders the textual form. Both forms decode back to the same
// tree.
func (f Fragment) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(f.document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fragment %q: encoding json: %w", f.Name, err)
	}
	return append(out, '\n'), nil
}

// Equal compares two fragments structurally, ignoring GeneratedAt.
func (f Fragment) Equal(other Fragment) bool {
	return f.Name == other.Name &&
		f.Meta.Fingerprint == other.Meta.Fingerprint &&
		reflect.DeepEqual(f.Tree, other.Tree)
}
