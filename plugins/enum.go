// Package plugins ships the field type plugins bundled with scaffgen.
// Each plugin exercises the registry contract: a canonical type id,
// aliases, base rules, a storage mapping, and declaratively validated
// custom attributes.
package plugins

import (
	"fmt"
	"strings"

	"scaffgen/registry"
)

// EnumPlugin adds an "enumeration" field type whose allowed values are a
// custom attribute rather than part of the type identifier.
type EnumPlugin struct{}

func (EnumPlugin) TypeID() string    { return "enumeration" }
func (EnumPlugin) Aliases() []string { return []string{"choice", "select"} }

func (EnumPlugin) BaseRules() []string {
	return []string{"string"}
}

func (EnumPlugin) StorageMapping() registry.StorageMapping {
	return registry.StorageMapping{ColumnType: "varchar", Length: 64}
}

func (EnumPlugin) CustomAttributeSpecs() map[string]registry.CustomAttributeSpec {
	return map[string]registry.CustomAttributeSpec{
		"values": {
			ValueType:   registry.AttrArray,
			Required:    true,
			Description: "allowed members of the enumeration",
			Validator: func(value any) []string {
				items, ok := value.([]any)
				if !ok {
					return []string{fmt.Sprintf("values must be a list, got %T", value)}
				}
				if len(items) == 0 {
					return []string{"values must not be empty"}
				}
				var errs []string
				seen := map[string]bool{}
				for _, item := range items {
					s, ok := item.(string)
					if !ok {
						errs = append(errs, fmt.Sprintf("enumeration member %v must be a string", item))
						continue
					}
					if strings.TrimSpace(s) == "" {
						errs = append(errs, "enumeration members must not be blank")
						continue
					}
					if seen[s] {
						errs = append(errs, fmt.Sprintf("duplicate enumeration member %q", s))
					}
					seen[s] = true
				}
				return errs
			},
		},
		"case_sensitive": {
			ValueType:   registry.AttrBoolean,
			Default:     true,
			Description: "whether member comparison is case sensitive",
		},
	}
}
