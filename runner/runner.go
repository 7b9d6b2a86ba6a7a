// Package runner orchestrates generation batches: it holds the
// registered generators, runs them sequentially, and isolates every
// per-generator failure so a single broken target never blocks the
// sibling fragments.
package runner

import (
	"fmt"

	"scaffgen/generator"
	"scaffgen/registry"
	"scaffgen/rules"
	"scaffgen/schema"
)

// Result is the outcome for one requested generator. Exactly one of
// Fragment/Err is meaningful; Err is also set for names that resolve to
// no registered generator.
type Result struct {
	Name     string
	Fragment generator.Fragment
	Err      error
}

// Ok reports whether the generator produced a fragment.
func (r Result) Ok() bool { return r.Err == nil }

// Service runs registered generators against schemas.
type Service struct {
	order      []string
	generators map[string]generator.Generator
}

// New returns an empty generation service.
func New() *Service {
	return &Service{generators: make(map[string]generator.Generator)}
}

// Default returns a service with every shipped generator registered, in
// the canonical order fragments are emitted in.
func Default(m *registry.Manager, e *rules.Engine) *Service {
	s := New()
	for _, g := range []generator.Generator{
		generator.NewMigration(m),
		generator.NewRequest(e),
		generator.NewResource(m),
		generator.NewFactory(m),
		generator.NewSeeder(),
		generator.NewController(),
		generator.NewPolicy(),
		generator.NewObserver(),
		generator.NewService(),
		generator.NewAction(),
		generator.NewRule(e),
	} {
		// Shipped generators carry unique names; Register only fails on
		// a duplicate.
		if err := s.Register(g); err != nil {
			panic(err)
		}
	}
	return s
}

// Register adds a generator. Duplicate names are rejected.
func (s *Service) Register(g generator.Generator) error {
	name := g.Name()
	if name == "" {
		return fmt.Errorf("runner: generator has an empty name")
	}
	if _, taken := s.generators[name]; taken {
		return fmt.Errorf("runner: generator %q is already registered", name)
	}
	s.generators[name] = g
	s.order = append(s.order, name)
	return nil
}

// Names returns the registered generator names in registration order.
func (s *Service) Names() []string {
	return append([]string(nil), s.order...)
}

// Generate runs one generator by name. Panics inside the generator are
// recovered and reported as the result error.
func (s *Service) Generate(name string, sch *schema.Schema, opts generator.Options) (result Result) {
	result = Result{Name: name}

	g, ok := s.generators[name]
	if !ok {
		result.Err = fmt.Errorf("runner: unknown generator %q", name)
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("runner: generator %q panicked: %v", name, r)
		}
	}()

	frag, err := g.Generate(sch, opts)
	if err != nil {
		result.Err = fmt.Errorf("runner: generator %q: %w", name, err)
		return result
	}
	result.Fragment = frag
	return result
}

// GenerateAll runs the named generators sequentially and returns one
// Result per name in request order. An empty name list means every
// registered generator in registration order. Failures never abort the
// batch.
func (s *Service) GenerateAll(names []string, sch *schema.Schema, opts generator.Options) []Result {
	if len(names) == 0 {
		names = s.order
	}
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, s.Generate(name, sch, opts))
	}
	return results
}

// ResultMap flattens results into the external map shape: generator name
// to fragment tree, or an {"error": ...} entry for failed generators.
func ResultMap(results []Result) map[string]any {
	out := make(map[string]any, len(results))
	for _, r := range results {
		if r.Err != nil {
			out[r.Name] = map[string]any{"error": r.Err.Error()}
			continue
		}
		out[r.Name] = r.Fragment.Body()
	}
	return out
}
