// Package rules derives per-field validation rule lists from a schema,
// combining builtin type defaults, plugin base rules, plugin custom
// attribute specs, and the standard field attributes.
package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"scaffgen/registry"
	"scaffgen/schema"
)

// Context selects which request shape the rules target. Update contexts
// relax presence requirements and parameterize uniqueness checks to
// exclude the record under update.
type Context string

const (
	Create Context = "create"
	Update Context = "update"
)

// FieldError is a field-scoped attribute validation failure. It is data,
// not a thrown error: callers aggregate these and decide severity.
type FieldError struct {
	Field     string `json:"field"`
	Attribute string `json:"attribute,omitempty"`
	Message   string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s.%s: %s", e.Field, e.Attribute, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Engine derives validation rules. It is stateless apart from the plugin
// manager it resolves types against; Derive is a pure function of its
// inputs.
type Engine struct {
	manager *registry.Manager
}

// NewEngine returns an engine resolving types against the given manager.
func NewEngine(m *registry.Manager) *Engine {
	return &Engine{manager: m}
}

// Derive produces the ordered, de-duplicated rule list for one field.
// Attribute validation failures are collected and returned alongside the
// rules; they never abort derivation of the remaining rules.
//
// When the field carries ExplicitRules those override derivation entirely
// (they are still context-rewritten and de-duplicated, keeping update
// semantics consistent across both paths).
func (e *Engine) Derive(s *schema.Schema, f schema.Field, ctx Context) ([]string, []FieldError) {
	if len(f.ExplicitRules) > 0 {
		return dedupe(rewriteForContext(f.ExplicitRules, ctx)), nil
	}

	var out []string
	var errs []FieldError

	// 1. Presence.
	if f.Nullable {
		out = append(out, "nullable")
	} else {
		out = append(out, "required")
	}

	// 2. Type defaults, plugin first, builtin second, lenient fallback last.
	behavior := e.manager.Behavior(f.Type)
	out = append(out, behavior.BaseRules...)

	// 3. Plugin custom attributes.
	if behavior.Plugin != nil {
		derived, attrErrs := e.deriveCustomAttributes(behavior.Plugin, f)
		out = append(out, derived...)
		errs = append(errs, attrErrs...)
	}

	// 4. Standard attributes.
	if f.Length != nil {
		out = append(out, fmt.Sprintf("max:%d", *f.Length))
	}
	if f.Unique {
		out = append(out, fmt.Sprintf("unique:%s,%s", s.Table, f.Name))
	}
	if registry.DecimalType(behavior.TypeID) && f.Precision != nil && f.Scale != nil {
		out = append(out, fmt.Sprintf("decimal:%d,%d", *f.Precision, *f.Scale))
	}
	if ref, ok := f.Attribute("references"); ok {
		if table, ok := ref.(string); ok && table != "" {
			out = append(out, fmt.Sprintf("exists:%s,id", table))
		}
	}

	return dedupe(rewriteForContext(out, ctx)), errs
}

// DeriveAll derives rules for every field of the schema in declaration
// order, aggregating field-scoped errors across the whole schema.
func (e *Engine) DeriveAll(s *schema.Schema, ctx Context) (map[string][]string, []FieldError) {
	out := make(map[string][]string, len(s.Fields))
	var errs []FieldError
	for _, f := range s.Fields {
		rules, fieldErrs := e.Derive(s, f, ctx)
		out[f.Name] = rules
		errs = append(errs, fieldErrs...)
	}
	return out, errs
}

// deriveCustomAttributes validates every declared custom attribute value
// present on the field and translates the passing specs into rules.
// Declared attributes that are absent contribute nothing unless required,
// which is reported as a field error.
func (e *Engine) deriveCustomAttributes(p registry.FieldTypePlugin, f schema.Field) ([]string, []FieldError) {
	specs := p.CustomAttributeSpecs()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	var errs []FieldError
	for _, name := range names {
		spec := specs[name]
		value, present := f.Attribute(name)
		if !present {
			if spec.Required {
				errs = append(errs, FieldError{
					Field:     f.Name,
					Attribute: name,
					Message:   "required attribute is missing",
				})
			}
			continue
		}

		normalized, problems := spec.Check(value)
		if len(problems) > 0 {
			for _, msg := range problems {
				errs = append(errs, FieldError{Field: f.Name, Attribute: name, Message: msg})
			}
			continue
		}
		out = append(out, rulesFromSpec(spec, normalized)...)
	}
	return out, errs
}

// rulesFromSpec translates an attribute spec plus its validated value
// into derived validation rules.
func rulesFromSpec(spec registry.CustomAttributeSpec, value any) []string {
	var out []string
	switch spec.ValueType {
	case registry.AttrBoolean:
		out = append(out, "boolean")
	case registry.AttrInteger:
		if spec.Min != nil {
			out = append(out, "min:"+strconv.FormatFloat(*spec.Min, 'f', -1, 64))
		}
		if spec.Max != nil {
			out = append(out, "max:"+strconv.FormatFloat(*spec.Max, 'f', -1, 64))
		}
	case registry.AttrArray:
		if items, ok := value.([]any); ok && len(items) > 0 {
			members := make([]string, 0, len(items))
			for _, item := range items {
				members = append(members, fmt.Sprintf("%v", item))
			}
			out = append(out, "in:"+strings.Join(members, ","))
		}
	}
	if len(spec.AllowedValues) > 0 {
		members := make([]string, 0, len(spec.AllowedValues))
		for _, v := range spec.AllowedValues {
			members = append(members, fmt.Sprintf("%v", v))
		}
		out = append(out, "in:"+strings.Join(members, ","))
	}
	return out
}

// rewriteForContext relaxes create-context rules for partial updates:
// required becomes sometimes, and unique checks learn to exclude the
// record's own identifier.
func rewriteForContext(rules []string, ctx Context) []string {
	if ctx != Update {
		return rules
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		switch {
		case r == "required":
			out = append(out, "sometimes")
		case strings.HasPrefix(r, "unique:") && !strings.Contains(r, "{id}"):
			out = append(out, r+",{id}")
		default:
			out = append(out, r)
		}
	}
	return out
}

func dedupe(rules []string) []string {
	seen := make(map[string]bool, len(rules))
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
