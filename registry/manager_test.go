package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/registry"
)

type fakePlugin struct {
	id      string
	aliases []string
	specs   map[string]registry.CustomAttributeSpec
}

func (p fakePlugin) TypeID() string      { return p.id }
func (p fakePlugin) Aliases() []string   { return p.aliases }
func (p fakePlugin) BaseRules() []string { return []string{"string"} }
func (p fakePlugin) StorageMapping() registry.StorageMapping {
	return registry.StorageMapping{ColumnType: "varchar", Length: 255}
}
func (p fakePlugin) CustomAttributeSpecs() map[string]registry.CustomAttributeSpec {
	return p.specs
}

func TestResolveBuiltin(t *testing.T) {
	d, err := registry.Resolve("email")
	require.NoError(t, err)
	assert.Equal(t, []string{"string", "email"}, d.BaseRules)
	assert.Equal(t, "varchar", d.Storage.ColumnType)

	_, err = registry.Resolve("nope")
	require.ErrorIs(t, err, registry.ErrUnknownType)
}

func TestRegisterAndResolve(t *testing.T) {
	m := registry.NewManager()
	require.NoError(t, m.Register(fakePlugin{id: "money", aliases: []string{"price"}}))

	p, ok := m.Resolve("money")
	require.True(t, ok)
	assert.Equal(t, "money", p.TypeID())

	p, ok = m.Resolve("price")
	require.True(t, ok)
	assert.Equal(t, "money", p.TypeID())

	_, ok = m.Resolve("unregistered")
	assert.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	m := registry.NewManager()
	require.NoError(t, m.Register(fakePlugin{id: "money", aliases: []string{"price"}}))

	var dup *registry.DuplicateTypeError

	err := m.Register(fakePlugin{id: "money"})
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "money", dup.Name)

	err = m.Register(fakePlugin{id: "amount", aliases: []string{"price"}})
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "price", dup.Name)

	// A failed registration records nothing, aliases included.
	_, ok := m.Resolve("amount")
	assert.False(t, ok)
	assert.Len(t, m.Plugins(), 1)
}

func TestRegisterCollidesWithBuiltin(t *testing.T) {
	m := registry.NewManager()
	var dup *registry.DuplicateTypeError

	err := m.Register(fakePlugin{id: "string"})
	require.ErrorAs(t, err, &dup)

	err = m.Register(fakePlugin{id: "flexible", aliases: []string{"uuid"}})
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "uuid", dup.Name)
	assert.Empty(t, m.Plugins())
}

func TestBehaviorResolutionOrder(t *testing.T) {
	m := registry.NewManager()
	require.NoError(t, m.Register(fakePlugin{id: "money"}))

	b := m.Behavior("money")
	assert.NotNil(t, b.Plugin)
	assert.False(t, b.Builtin)
	assert.False(t, b.Fallback)

	b = m.Behavior("integer")
	assert.Nil(t, b.Plugin)
	assert.True(t, b.Builtin)
	assert.Equal(t, []string{"integer"}, b.BaseRules)

	// Unregistered types take the lenient string fallback.
	b = m.Behavior("whatever")
	assert.True(t, b.Fallback)
	assert.Equal(t, []string{"string"}, b.BaseRules)
	assert.Equal(t, "varchar", b.Storage.ColumnType)
}

func TestKnown(t *testing.T) {
	m := registry.NewManager()
	require.NoError(t, m.Register(fakePlugin{id: "money", aliases: []string{"price"}}))

	assert.True(t, m.Known("money"))
	assert.True(t, m.Known("price"))
	assert.True(t, m.Known("string"))
	assert.False(t, m.Known("whatever"))
}

func TestCustomAttributeSpecCheck(t *testing.T) {
	min, max := 1.0, 10.0

	spec := registry.CustomAttributeSpec{ValueType: registry.AttrInteger, Min: &min, Max: &max}

	_, errs := spec.Check(5)
	assert.Empty(t, errs)

	_, errs = spec.Check(0)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "below minimum")

	_, errs = spec.Check(11)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "above maximum")

	_, errs = spec.Check("five")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "expected an integer")

	_, errs = spec.Check(2.5)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "expected an integer")
}

func TestCustomAttributeSpecAllowedValues(t *testing.T) {
	spec := registry.CustomAttributeSpec{
		ValueType:     registry.AttrString,
		AllowedValues: []any{"asc", "desc"},
	}

	_, errs := spec.Check("asc")
	assert.Empty(t, errs)

	_, errs = spec.Check("sideways")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "not one of the allowed values")
}

func TestCustomAttributeSpecTransformBeforeValidate(t *testing.T) {
	spec := registry.CustomAttributeSpec{
		ValueType: registry.AttrString,
		Transform: func(v any) any {
			if s, ok := v.(string); ok {
				return "normalized-" + s
			}
			return v
		},
		Validator: func(v any) []string {
			if v != "normalized-ok" {
				return []string{"validator saw the raw value"}
			}
			return nil
		},
	}

	value, errs := spec.Check("ok")
	assert.Empty(t, errs)
	assert.Equal(t, "normalized-ok", value)
}

func TestCustomAttributeSpecBooleanAndArray(t *testing.T) {
	boolSpec := registry.CustomAttributeSpec{ValueType: registry.AttrBoolean}
	_, errs := boolSpec.Check(true)
	assert.Empty(t, errs)
	_, errs = boolSpec.Check("true")
	require.Len(t, errs, 1)

	arraySpec := registry.CustomAttributeSpec{ValueType: registry.AttrArray}
	_, errs = arraySpec.Check([]any{"a", "b"})
	assert.Empty(t, errs)
	_, errs = arraySpec.Check("a,b")
	require.Len(t, errs, 1)
}
