package plugins

import (
	"fmt"
	"path"

	"scaffgen/registry"
)

// Available returns the shipped plugins in their canonical order.
func Available() []registry.FieldTypePlugin {
	return []registry.FieldTypePlugin{
		EnumPlugin{},
		MoneyPlugin{},
		PhonePlugin{},
	}
}

// RegisterAll registers every shipped plugin on the manager.
func RegisterAll(m *registry.Manager) error {
	return Discover(m, "*")
}

// Discover registers the shipped plugins whose type id matches any of the
// given glob patterns. A pattern matching nothing is not an error; a
// malformed pattern is.
func Discover(m *registry.Manager, patterns ...string) error {
	for _, p := range Available() {
		matched, err := matchAny(p.TypeID(), patterns)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}
		if err := m.Register(p); err != nil {
			return fmt.Errorf("plugins: registering %q: %w", p.TypeID(), err)
		}
	}
	return nil
}

func matchAny(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("plugins: invalid pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
