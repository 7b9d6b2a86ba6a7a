package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/loader"
	"scaffgen/schema"
)

const postDocument = `
model: Post
table: posts

fields:
  title:
    type: string
    length: 120
  slug:
    type: slug
    unique: true
  summary:
    type: text
    nullable: true
  status:
    type: enumeration
    values: [draft, published]
    default: draft
  views: unsigned_integer

relationships:
  author:
    kind: belongs_to
    target: User
  comments: has_many:Comment
  tags:
    kind: many_to_many
    target: Tag
    pivot_table: post_tags

options:
  timestamps: true
  soft_deletes: true

metadata:
  owner: content-team

deploy:
  queue: default
webhooks:
  - on_publish
`

func TestParsePreservesFieldOrder(t *testing.T) {
	doc, err := loader.Parse([]byte(postDocument))
	require.NoError(t, err)

	names := make([]string, 0, len(doc.Definition.Fields))
	for _, f := range doc.Definition.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"title", "slug", "summary", "status", "views"}, names)
}

func TestParseFieldConfigs(t *testing.T) {
	doc, err := loader.Parse([]byte(postDocument))
	require.NoError(t, err)

	fields := doc.Definition.Fields

	title := fields[0]
	assert.Equal(t, "string", title.Type)
	require.NotNil(t, title.Length)
	assert.Equal(t, 120, *title.Length)

	slug := fields[1]
	assert.True(t, slug.Unique)

	summary := fields[2]
	assert.True(t, summary.Nullable)

	status := fields[3]
	assert.Equal(t, "enumeration", status.Type)
	assert.Equal(t, "draft", status.Default)
	values, ok := status.Attribute("values")
	require.True(t, ok)
	assert.Equal(t, []any{"draft", "published"}, values)

	// Scalar shorthand is a bare type.
	views := fields[4]
	assert.Equal(t, "unsigned_integer", views.Type)
}

func TestParseRelationships(t *testing.T) {
	doc, err := loader.Parse([]byte(postDocument))
	require.NoError(t, err)

	rels := doc.Definition.Relationships
	require.Len(t, rels, 3)

	assert.Equal(t, schema.BelongsTo, rels[0].Kind)
	assert.Equal(t, "User", rels[0].Target)

	// Shorthand "kind:Target".
	assert.Equal(t, "comments", rels[1].Name)
	assert.Equal(t, schema.HasMany, rels[1].Kind)
	assert.Equal(t, "Comment", rels[1].Target)

	assert.Equal(t, schema.ManyToMany, rels[2].Kind)
	assert.Equal(t, "post_tags", rels[2].PivotTable)
}

func TestParseOptionsAndMetadata(t *testing.T) {
	doc, err := loader.Parse([]byte(postDocument))
	require.NoError(t, err)

	assert.True(t, doc.Definition.Options.Timestamps)
	assert.True(t, doc.Definition.Options.SoftDeletes)
	assert.Equal(t, map[string]any{"owner": "content-team"}, doc.Definition.Metadata)
}

func TestParseExtensionsPassThrough(t *testing.T) {
	doc, err := loader.Parse([]byte(postDocument))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"queue": "default"}, doc.Extensions["deploy"])
	assert.Equal(t, []any{"on_publish"}, doc.Extensions["webhooks"])
	assert.NotContains(t, doc.Extensions, "fields")
	assert.NotContains(t, doc.Core, "deploy")
}

func TestParseNestedCoreConvention(t *testing.T) {
	doc, err := loader.Parse([]byte(`
core:
  model: Tag
  fields:
    name: string
deploy:
  queue: default
`))
	require.NoError(t, err)
	assert.Equal(t, "Tag", doc.Definition.Name)
	require.Len(t, doc.Definition.Fields, 1)
	assert.Equal(t, "name", doc.Definition.Fields[0].Name)
	assert.Equal(t, map[string]any{"queue": "default"}, doc.Extensions["deploy"])
}

func TestParseMixedConventionsFails(t *testing.T) {
	_, err := loader.Parse([]byte(`
core:
  model: Tag
  fields:
    name: string
fields:
  other: string
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixes the nested core convention")
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := loader.Parse([]byte("model: [unclosed"))
	require.Error(t, err)

	_, err = loader.Parse([]byte("- a\n- b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")

	_, err = loader.Parse([]byte(""))
	require.Error(t, err)
}

func TestSplitMergeBijection(t *testing.T) {
	doc := map[string]any{
		"model":  "Post",
		"table":  "posts",
		"fields": map[string]any{"title": "string"},
		"deploy": map[string]any{"queue": "default"},
		"alerts": []any{"pager"},
	}

	core, ext, err := loader.Split(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"model":  "Post",
		"table":  "posts",
		"fields": map[string]any{"title": "string"},
	}, core)
	assert.Equal(t, map[string]any{
		"deploy": map[string]any{"queue": "default"},
		"alerts": []any{"pager"},
	}, ext)

	assert.Equal(t, doc, loader.Merge(core, ext))
}

func TestCoreKey(t *testing.T) {
	assert.True(t, loader.CoreKey("fields"))
	assert.True(t, loader.CoreKey("relations"))
	assert.False(t, loader.CoreKey("deploy"))
}
