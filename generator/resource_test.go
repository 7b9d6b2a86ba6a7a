package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/generator"
)

func TestResourceFields(t *testing.T) {
	m := testManager(t)
	s := postSchema(t, m)

	frag, err := generator.NewResource(m).Generate(s, generator.DefaultOptions())
	require.NoError(t, err)
	b := body(t, frag)

	assert.Equal(t, "PostResource", b["class"])

	fields, ok := b["fields"].([]any)
	require.True(t, ok)
	require.Len(t, fields, 4)

	title := fields[0].(map[string]any)
	assert.Equal(t, "string", title["type"])
	assert.NotContains(t, title, "when_present")

	views := fields[2].(map[string]any)
	assert.Equal(t, "integer", views["type"])

	published := fields[3].(map[string]any)
	assert.Equal(t, "string", published["type"])
	assert.Equal(t, "Y-m-d H:i:s", published["format"])
	assert.Equal(t, true, published["when_present"])
}

func TestResourceRelationships(t *testing.T) {
	m := testManager(t)
	s := postSchema(t, m)

	opts := generator.DefaultOptions()
	opts.Resource.PerPage = 25

	frag, err := generator.NewResource(m).Generate(s, opts)
	require.NoError(t, err)
	relations := body(t, frag)["relationships"].([]any)
	require.Len(t, relations, 3)

	author := relations[0].(map[string]any)
	assert.Equal(t, "UserResource", author["target"])
	assert.Equal(t, true, author["always_loaded"])
	assert.NotContains(t, author, "paginated")

	comments := relations[1].(map[string]any)
	assert.Equal(t, true, comments["paginated"])
	assert.Equal(t, 25, comments["per_page"])
	assert.NotContains(t, comments, "with_pivot")

	tags := relations[2].(map[string]any)
	assert.Equal(t, true, tags["paginated"])
	assert.Equal(t, 25, tags["per_page"])
	assert.Equal(t, true, tags["with_pivot"])
}

func TestResourceOmitsEmptyRelationships(t *testing.T) {
	m := testManager(t)
	s := tagSchema(t, m)

	frag, err := generator.NewResource(m).Generate(s, generator.DefaultOptions())
	require.NoError(t, err)
	assert.NotContains(t, body(t, frag), "relationships")
}
