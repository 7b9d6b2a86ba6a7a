package schema

// Field describes one column-level attribute of an entity. A Field is
// treated as immutable once its Schema has been constructed.
type Field struct {
	Name     string
	Type     string
	Nullable bool
	Unique   bool
	Default  any

	Length    *int
	Precision *int
	Scale     *int

	// Attributes holds standard attributes (references, on_delete, ...)
	// together with plugin-specific custom attributes.
	Attributes map[string]any

	// ExplicitRules overrides rule derivation entirely when non-empty.
	ExplicitRules []string
}

// HasAttribute reports whether the attribute is present on the field.
func (f Field) HasAttribute(name string) bool {
	_, ok := f.Attributes[name]
	return ok
}

// Attribute returns the attribute value and whether it is present.
func (f Field) Attribute(name string) (any, bool) {
	v, ok := f.Attributes[name]
	return v, ok
}

// RelationshipKind enumerates the supported relationship shapes.
type RelationshipKind string

const (
	BelongsTo      RelationshipKind = "belongs_to"
	HasOne         RelationshipKind = "has_one"
	HasMany        RelationshipKind = "has_many"
	ManyToMany     RelationshipKind = "many_to_many"
	HasOneThrough  RelationshipKind = "has_one_through"
	HasManyThrough RelationshipKind = "has_many_through"
	MorphTo        RelationshipKind = "morph_to"
	MorphOne       RelationshipKind = "morph_one"
	MorphMany      RelationshipKind = "morph_many"
)

// Kinds lists every valid relationship kind.
func Kinds() []RelationshipKind {
	return []RelationshipKind{
		BelongsTo, HasOne, HasMany, ManyToMany,
		HasOneThrough, HasManyThrough,
		MorphTo, MorphOne, MorphMany,
	}
}

// ValidKind reports whether k is a member of the closed kind set.
func ValidKind(k RelationshipKind) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Relationship links this entity to another one. The target entity is not
// resolved here: it may live outside the current document entirely.
type Relationship struct {
	Name       string
	Kind       RelationshipKind
	Target     string
	ForeignKey string
	LocalKey   string
	PivotTable string
	Through    string
}

// Collection reports whether the relationship resolves to many records.
func (r Relationship) Collection() bool {
	switch r.Kind {
	case HasMany, ManyToMany, HasManyThrough, MorphMany:
		return true
	}
	return false
}

// Options carries the storage-level toggles of a Schema.
type Options struct {
	Timestamps  bool
	SoftDeletes bool
}

// Schema is the validated in-memory representation of one entity. Field
// order is the declaration order of the source document and drives the
// order of every generated fragment.
type Schema struct {
	Name          string
	Table         string
	Fields        []Field
	Relationships []Relationship
	Options       Options
	Metadata      map[string]any
}

// Field returns the named field and whether it exists.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Relationship returns the named relationship and whether it exists.
func (s *Schema) Relationship(name string) (Relationship, bool) {
	for _, r := range s.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
