package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/plugins"
	"scaffgen/registry"
	"scaffgen/rules"
	"scaffgen/schema"
	"scaffgen/validator"
)

func newValidator(t *testing.T) (*validator.SchemaValidator, *registry.Manager) {
	t.Helper()
	m := registry.NewManager()
	require.NoError(t, plugins.RegisterAll(m))
	return validator.NewSchemaValidator(m, rules.NewEngine(m)), m
}

func build(t *testing.T, m *registry.Manager, def schema.Definition) *schema.Schema {
	t.Helper()
	s, err := schema.New(def, m, schema.BuildOptions{})
	require.NoError(t, err)
	return s
}

func findingTypes(findings []validator.ValidationError) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Type
	}
	return out
}

func TestValidateCleanSchema(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name: "Post",
		Fields: []schema.Field{
			{Name: "title", Type: "string"},
			{Name: "user_id", Type: "unsigned_big_integer"},
		},
		Relationships: []schema.Relationship{
			{Name: "author", Kind: schema.BelongsTo, Target: "User"},
		},
	})

	result := v.ValidateSchema(s)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Info)
}

func TestValidateReservedTableName(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name:   "Order",
		Table:  "order",
		Fields: []schema.Field{{Name: "total", Type: "decimal"}},
	})

	result := v.ValidateSchema(s)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "reserved_keyword", result.Warnings[0].Type)
}

func TestValidateInvalidIdentifiers(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name:   "Post",
		Table:  "blog posts",
		Fields: []schema.Field{{Name: "post-title", Type: "string"}},
	})

	result := v.ValidateSchema(s)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"table_name", "field_name"}, findingTypes(result.Errors))
}

func TestValidateUnknownTypeWarns(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "payload", Type: "jsonb"}},
	})

	result := v.ValidateSchema(s)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "unknown_type", result.Warnings[0].Type)
	assert.Contains(t, result.Warnings[0].Message, "string fallback")
}

func TestValidatePrecisionOnNonDecimal(t *testing.T) {
	v, m := newValidator(t)
	precision := 10
	s := build(t, m, schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title", Type: "string", Precision: &precision}},
	})

	result := v.ValidateSchema(s)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "precision_ignored", result.Warnings[0].Type)
}

func TestValidateMissingForeignKeyField(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title", Type: "string"}},
		Relationships: []schema.Relationship{
			{Name: "author", Kind: schema.BelongsTo, Target: "User"},
		},
	})

	result := v.ValidateSchema(s)
	assert.True(t, result.Valid)
	require.Len(t, result.Info, 1)
	assert.Equal(t, "missing_foreign_key_field", result.Info[0].Type)
	assert.Equal(t, "author", result.Info[0].Relation)
	assert.Contains(t, result.Info[0].Message, "user_id")
}

func TestValidateAttributeErrors(t *testing.T) {
	v, m := newValidator(t)
	s := build(t, m, schema.Definition{
		Name: "Article",
		Fields: []schema.Field{
			// Required "values" attribute missing.
			{Name: "status", Type: "enumeration"},
		},
	})

	result := v.ValidateSchema(s)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "attribute", result.Errors[0].Type)
	assert.Equal(t, "status", result.Errors[0].Field)
}
