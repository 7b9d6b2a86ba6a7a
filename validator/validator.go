package validator

import (
	"fmt"
	"strings"

	"scaffgen/registry"
	"scaffgen/rules"
	"scaffgen/schema"
)

// ValidationError represents a validation finding with details
type ValidationError struct {
	Type     string `json:"type"`
	Field    string `json:"field,omitempty"`
	Relation string `json:"relation,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
}

// ValidationResult contains all validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
	Info     []ValidationError `json:"info"`
}

// SchemaValidator lints constructed schemas: identifier rules, reserved
// keywords, type resolution, and custom attribute specs. Structural
// invariants (duplicates, zero fields, unknown kinds) are enforced at
// construction and never reach this validator.
type SchemaValidator struct {
	manager *registry.Manager
	engine  *rules.Engine
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator(m *registry.Manager, e *rules.Engine) *SchemaValidator {
	return &SchemaValidator{manager: m, engine: e}
}

// ValidateSchema validates a constructed schema. The result is data:
// the caller decides whether warnings or attribute errors are fatal.
func (v *SchemaValidator) ValidateSchema(s *schema.Schema) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
		Info:     []ValidationError{},
	}

	v.validateTableName(s.Table, result)
	v.validateFields(s, result)
	v.validateRelationships(s, result)
	v.validateAttributes(s, result)

	result.Valid = len(result.Errors) == 0
	return result
}

// validateTableName validates table name format
func (v *SchemaValidator) validateTableName(tableName string, result *ValidationResult) {
	if err := validIdentifier(tableName); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:     "table_name",
			Message:  fmt.Sprintf("table name %q: %v", tableName, err),
			Severity: "error",
		})
	}

	for _, keyword := range reservedKeywords {
		if strings.ToLower(tableName) == keyword {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "reserved_keyword",
				Message:  fmt.Sprintf("table name %q is a reserved keyword in common SQL dialects", tableName),
				Severity: "warning",
			})
		}
	}
}

// validateFields checks field identifiers and type resolution.
func (v *SchemaValidator) validateFields(s *schema.Schema, result *ValidationResult) {
	for _, f := range s.Fields {
		if err := validIdentifier(f.Name); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Type:     "field_name",
				Field:    f.Name,
				Message:  fmt.Sprintf("field name %q: %v", f.Name, err),
				Severity: "error",
			})
		}

		if !v.manager.Known(f.Type) {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "unknown_type",
				Field:    f.Name,
				Message:  fmt.Sprintf("type %q is not registered; the string fallback applies", f.Type),
				Severity: "warning",
			})
		}

		if (f.Precision != nil || f.Scale != nil) && !registry.DecimalType(f.Type) {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:     "precision_ignored",
				Field:    f.Name,
				Message:  fmt.Sprintf("precision/scale only apply to decimal types, not %q", f.Type),
				Severity: "warning",
			})
		}
	}
}

// validateRelationships reports advisory findings; referential existence
// of targets is deliberately not checked (the target entity may live
// outside this document).
func (v *SchemaValidator) validateRelationships(s *schema.Schema, result *ValidationResult) {
	for _, r := range s.Relationships {
		if r.Kind != schema.BelongsTo {
			continue
		}
		fk := r.ForeignKey
		if fk == "" {
			fk = schema.ForeignKeyFor(r.Target)
		}
		if _, ok := s.Field(fk); !ok {
			result.Info = append(result.Info, ValidationError{
				Type:     "missing_foreign_key_field",
				Relation: r.Name,
				Message:  fmt.Sprintf("belongs-to relationship %q has no matching %q field; the migration fragment will still emit the constraint", r.Name, fk),
				Severity: "info",
			})
		}
	}
}

// validateAttributes runs rule derivation in create context to surface
// every field-scoped custom attribute failure.
func (v *SchemaValidator) validateAttributes(s *schema.Schema, result *ValidationResult) {
	_, fieldErrs := v.engine.DeriveAll(s, rules.Create)
	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, ValidationError{
			Type:     "attribute",
			Field:    fe.Field,
			Message:  fe.Error(),
			Severity: "error",
		})
	}
}

// reservedKeywords are identifiers that commonly clash in SQL dialects.
var reservedKeywords = []string{
	"user", "order", "group", "table", "index", "view", "schema",
	"select", "where", "from", "join",
}

// validIdentifier enforces the identifier rules shared by common storage
// backends: non-empty, at most 63 characters, [a-zA-Z0-9_] only.
func validIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("cannot be empty")
	}
	if len(name) > 63 {
		return fmt.Errorf("too long (max 63 characters)")
	}
	for _, char := range name {
		if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '_') {
			return fmt.Errorf("contains invalid character %q", char)
		}
	}
	return nil
}
