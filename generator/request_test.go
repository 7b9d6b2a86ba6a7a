package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/generator"
	"scaffgen/rules"
)

func TestRequestRuleSets(t *testing.T) {
	m := testManager(t)
	s := postSchema(t, m)
	engine := rules.NewEngine(m)

	frag, err := generator.NewRequest(engine).Generate(s, generator.DefaultOptions())
	require.NoError(t, err)
	b := body(t, frag)

	create, ok := b["create"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "StorePostRequest", create["class"])
	assert.Equal(t, false, create["authorize"])

	createRules := create["rules"].([]any)
	require.Len(t, createRules, 4)

	title := createRules[0].(map[string]any)
	assert.Equal(t, "title", title["field"])
	assert.Equal(t, []any{"required", "string", "max:120"}, title["rules"])

	email := createRules[1].(map[string]any)
	assert.Equal(t, []any{"required", "string", "email", "unique:posts,email"}, email["rules"])

	views := createRules[2].(map[string]any)
	assert.Equal(t, []any{"required", "integer", "min:0"}, views["rules"])

	published := createRules[3].(map[string]any)
	assert.Equal(t, []any{"nullable", "date"}, published["rules"])
}

func TestRequestUpdateRelaxesPresence(t *testing.T) {
	m := testManager(t)
	s := postSchema(t, m)
	engine := rules.NewEngine(m)

	frag, err := generator.NewRequest(engine).Generate(s, generator.DefaultOptions())
	require.NoError(t, err)
	b := body(t, frag)

	update := b["update"].(map[string]any)
	assert.Equal(t, "UpdatePostRequest", update["class"])

	updateRules := update["rules"].([]any)
	email := updateRules[1].(map[string]any)
	assert.Equal(t,
		[]any{"sometimes", "string", "email", "unique:posts,email,{id}"},
		email["rules"])

	published := updateRules[3].(map[string]any)
	assert.Equal(t, []any{"nullable", "date"}, published["rules"])
}

func TestRequestAuthorizeFlag(t *testing.T) {
	m := testManager(t)
	s := postSchema(t, m)
	engine := rules.NewEngine(m)

	opts := generator.DefaultOptions()
	opts.Request.Authorize = true

	frag, err := generator.NewRequest(engine).Generate(s, opts)
	require.NoError(t, err)
	b := body(t, frag)

	assert.Equal(t, true, b["create"].(map[string]any)["authorize"])
	assert.Equal(t, true, b["update"].(map[string]any)["authorize"])
}
