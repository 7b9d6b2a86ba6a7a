package registry

import (
	"fmt"
	"sort"
	"sync"
)

// DuplicateTypeError is returned when a plugin registration collides with
// an existing registration or a builtin type identifier.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("registry: type %q is already registered", e.Name)
}

// Behavior is the resolved behavior bundle for a field type. Exactly one
// of Plugin/Builtin/Fallback describes where it came from; resolution
// order is plugin registry, then builtin registry, then the lenient
// string fallback.
type Behavior struct {
	TypeID    string
	BaseRules []string
	Storage   StorageMapping
	WireType  string
	FakerHint string
	Plugin    FieldTypePlugin
	Builtin   bool
	Fallback  bool
}

// Manager holds registered field type plugins and resolves type
// identifiers against plugins first, builtins second.
type Manager struct {
	mu      sync.RWMutex
	byID    map[string]FieldTypePlugin // canonical id and every alias
	order   []string                   // canonical ids in registration order
}

// NewManager returns an empty plugin manager.
func NewManager() *Manager {
	return &Manager{byID: make(map[string]FieldTypePlugin)}
}

// Register adds a plugin. It fails with *DuplicateTypeError when the
// plugin's type id or any alias collides with a previous registration or
// a builtin type; on failure nothing is recorded.
func (m *Manager) Register(p FieldTypePlugin) error {
	if p == nil {
		return fmt.Errorf("registry: cannot register a nil plugin")
	}
	id := p.TypeID()
	if id == "" {
		return fmt.Errorf("registry: plugin has an empty type id")
	}

	names := append([]string{id}, p.Aliases()...)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		if _, taken := m.byID[name]; taken {
			return &DuplicateTypeError{Name: name}
		}
		if Builtin(name) {
			return &DuplicateTypeError{Name: name}
		}
	}
	for _, name := range names {
		m.byID[name] = p
	}
	m.order = append(m.order, id)
	return nil
}

// Resolve looks up a plugin by type id or alias.
func (m *Manager) Resolve(idOrAlias string) (FieldTypePlugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byID[idOrAlias]
	return p, ok
}

// Known reports whether the identifier resolves to a plugin or a builtin
// type. It satisfies schema.TypeResolver.
func (m *Manager) Known(typeID string) bool {
	if _, ok := m.Resolve(typeID); ok {
		return true
	}
	return Builtin(typeID)
}

// Plugins returns the registered plugins in registration order.
func (m *Manager) Plugins() []FieldTypePlugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]FieldTypePlugin, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// Behavior resolves the behavior bundle for a type identifier. The
// resolution order is fixed: plugin registry first, builtin registry
// second, and finally the lenient fallback that treats an unregistered
// type as a bare string type. Downstream generators depend on this order.
func (m *Manager) Behavior(typeID string) Behavior {
	if p, ok := m.Resolve(typeID); ok {
		return Behavior{
			TypeID:    p.TypeID(),
			BaseRules: append([]string(nil), p.BaseRules()...),
			Storage:   p.StorageMapping(),
			WireType:  "string",
			FakerHint: "word",
			Plugin:    p,
		}
	}
	if d, err := Resolve(typeID); err == nil {
		return Behavior{
			TypeID:    typeID,
			BaseRules: d.BaseRules,
			Storage:   d.Storage,
			WireType:  d.WireType,
			FakerHint: d.FakerHint,
			Builtin:   true,
		}
	}
	fallback, _ := Resolve("string")
	return Behavior{
		TypeID:    typeID,
		BaseRules: fallback.BaseRules,
		Storage:   fallback.Storage,
		WireType:  fallback.WireType,
		FakerHint: fallback.FakerHint,
		Fallback:  true,
	}
}

// AliasIndex returns alias -> canonical id for every registered alias,
// sorted for stable listing output.
func (m *Manager) AliasIndex() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string)
	for _, id := range m.order {
		p := m.byID[id]
		aliases := append([]string(nil), p.Aliases()...)
		sort.Strings(aliases)
		for _, a := range aliases {
			out[a] = id
		}
	}
	return out
}
