package registry

import (
	"fmt"
	"math"
	"reflect"
)

// FieldTypePlugin extends the type system with a new field type. A plugin
// carries the type's default validation rules and storage mapping plus the
// declarative specs for its custom attributes. Plugins are resolved before
// builtin types; shadowing a builtin identifier is rejected at
// registration time.
type FieldTypePlugin interface {
	// TypeID is the canonical type identifier.
	TypeID() string
	// Aliases are alternative identifiers resolving to this plugin.
	Aliases() []string
	// BaseRules are the validation rules the type implies.
	BaseRules() []string
	// StorageMapping is the storage primitive the type maps to.
	StorageMapping() StorageMapping
	// CustomAttributeSpecs declares the configurable attributes of the
	// type, keyed by attribute name.
	CustomAttributeSpecs() map[string]CustomAttributeSpec
}

// AttrValueType is the declared value type of a custom attribute.
type AttrValueType string

const (
	AttrString  AttrValueType = "string"
	AttrInteger AttrValueType = "integer"
	AttrBoolean AttrValueType = "boolean"
	AttrArray   AttrValueType = "array"
)

// CustomAttributeSpec declares how one custom attribute of a plugin type
// is validated and normalized. Validator and Transform must be pure.
// When Required is true, Default is ignored.
type CustomAttributeSpec struct {
	ValueType     AttrValueType
	Required      bool
	Default       any
	Min           *float64
	Max           *float64
	AllowedValues []any
	Validator     func(value any) []string
	Transform     func(value any) any
	Description   string
}

// Check normalizes and validates a value against the spec. The returned
// value has Transform applied; the error strings describe every violated
// constraint. A nil value with Required set is the caller's concern:
// Check only judges present values.
func (s CustomAttributeSpec) Check(value any) (any, []string) {
	if s.Transform != nil {
		value = s.Transform(value)
	}

	var errs []string
	if msg := checkValueType(s.ValueType, value); msg != "" {
		// A value of the wrong type cannot meaningfully hit the
		// remaining constraints.
		return value, []string{msg}
	}

	if n, ok := numericValue(value); ok {
		if s.Min != nil && n < *s.Min {
			errs = append(errs, fmt.Sprintf("value %v is below minimum %v", value, *s.Min))
		}
		if s.Max != nil && n > *s.Max {
			errs = append(errs, fmt.Sprintf("value %v is above maximum %v", value, *s.Max))
		}
	}

	if len(s.AllowedValues) > 0 && !allowed(value, s.AllowedValues) {
		errs = append(errs, fmt.Sprintf("value %v is not one of the allowed values %v", value, s.AllowedValues))
	}

	if s.Validator != nil {
		errs = append(errs, s.Validator(value)...)
	}

	return value, errs
}

func checkValueType(vt AttrValueType, value any) string {
	switch vt {
	case AttrString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected a string, got %T", value)
		}
	case AttrInteger:
		n, ok := numericValue(value)
		if !ok {
			return fmt.Sprintf("expected an integer, got %T", value)
		}
		if n != math.Trunc(n) {
			return fmt.Sprintf("expected an integer, got %v", value)
		}
	case AttrBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected a boolean, got %T", value)
		}
	case AttrArray:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return fmt.Sprintf("expected an array, got %T", value)
		}
	}
	return ""
}

// numericValue widens any numeric scalar (including the int/float64 pair
// that YAML and JSON decoding produce) to float64.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func allowed(value any, set []any) bool {
	for _, candidate := range set {
		if reflect.DeepEqual(value, candidate) {
			return true
		}
		vn, vok := numericValue(value)
		cn, cok := numericValue(candidate)
		if vok && cok && vn == cn {
			return true
		}
	}
	return false
}
