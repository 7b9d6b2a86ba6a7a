// Package generator turns a validated schema into structured fragments:
// one independently produced document per generation target (migration,
// request, resource, factory, seeder, controller, policy, observer,
// service, action, rule).
package generator

import "scaffgen/schema"

// Generator produces one fragment for a schema. Implementations read
// only from the schema and the derivation engine; they never mutate the
// schema, and calling Generate twice with the same inputs yields
// structurally identical output apart from the generated-at timestamp.
type Generator interface {
	// Name is the fragment key and the identifier used to request the
	// generator in a batch.
	Name() string
	Generate(s *schema.Schema, opts Options) (Fragment, error)
}
