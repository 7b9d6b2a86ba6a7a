package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffgen/schema"
)

type stubResolver map[string]bool

func (r stubResolver) Known(typeID string) bool { return r[typeID] }

func TestNew(t *testing.T) {
	def := schema.Definition{
		Name: "Post",
		Fields: []schema.Field{
			{Name: "title", Type: "string"},
			{Name: "views", Type: "unsigned_integer"},
		},
		Relationships: []schema.Relationship{
			{Name: "author", Kind: schema.BelongsTo, Target: "User"},
		},
		Options: schema.Options{Timestamps: true},
	}

	s, err := schema.New(def, nil, schema.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Post", s.Name)
	assert.Equal(t, "posts", s.Table)
	assert.Equal(t, []string{"title", "views"}, s.FieldNames())

	author, ok := s.Relationship("author")
	require.True(t, ok)
	assert.Equal(t, "user_id", author.ForeignKey)
	assert.Equal(t, "id", author.LocalKey)
}

func TestNewTableOverride(t *testing.T) {
	def := schema.Definition{
		Name:   "Person",
		Table:  "people_records",
		Fields: []schema.Field{{Name: "name", Type: "string"}},
	}
	s, err := schema.New(def, nil, schema.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "people_records", s.Table)
}

func TestNewZeroFields(t *testing.T) {
	_, err := schema.New(schema.Definition{Name: "Post"}, nil, schema.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}

func TestNewDuplicateField(t *testing.T) {
	def := schema.Definition{
		Name: "Post",
		Fields: []schema.Field{
			{Name: "title", Type: "string"},
			{Name: "title", Type: "text"},
		},
	}
	_, err := schema.New(def, nil, schema.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate field "title"`)
}

func TestNewDuplicateRelationship(t *testing.T) {
	def := schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title", Type: "string"}},
		Relationships: []schema.Relationship{
			{Name: "author", Kind: schema.BelongsTo, Target: "User"},
			{Name: "author", Kind: schema.HasOne, Target: "Profile"},
		},
	}
	_, err := schema.New(def, nil, schema.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate relationship "author"`)
}

func TestNewUnknownKind(t *testing.T) {
	def := schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title", Type: "string"}},
		Relationships: []schema.Relationship{
			{Name: "author", Kind: "owns", Target: "User"},
		},
	}
	_, err := schema.New(def, nil, schema.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "owns"`)
}

func TestNewManyToManyRequiresPivot(t *testing.T) {
	def := schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title", Type: "string"}},
		Relationships: []schema.Relationship{
			{Name: "tags", Kind: schema.ManyToMany, Target: "Tag"},
		},
	}
	_, err := schema.New(def, nil, schema.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pivot_table")
}

func TestNewStrictTypes(t *testing.T) {
	def := schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "meta", Type: "jsonb"}},
	}
	resolver := stubResolver{"string": true}

	_, err := schema.New(def, resolver, schema.BuildOptions{StrictTypes: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field type "jsonb"`)

	// Lenient mode accepts the same definition.
	s, err := schema.New(def, resolver, schema.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "jsonb", s.Fields[0].Type)
}

func TestNewDefaultsEmptyTypeToString(t *testing.T) {
	def := schema.Definition{
		Name:   "Post",
		Fields: []schema.Field{{Name: "title"}},
	}
	s, err := schema.New(def, nil, schema.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, "string", s.Fields[0].Type)
}

func TestConventions(t *testing.T) {
	assert.Equal(t, "blog_posts", schema.TableFor("BlogPost"))
	assert.Equal(t, "people", schema.TableFor("Person"))
	assert.Equal(t, "blog_post_id", schema.ForeignKeyFor("BlogPost"))
}

func TestCollectionKinds(t *testing.T) {
	assert.True(t, schema.Relationship{Kind: schema.HasMany}.Collection())
	assert.True(t, schema.Relationship{Kind: schema.ManyToMany}.Collection())
	assert.False(t, schema.Relationship{Kind: schema.BelongsTo}.Collection())
	assert.False(t, schema.Relationship{Kind: schema.HasOne}.Collection())
}
