package plugins

import (
	"strings"

	"scaffgen/registry"
)

// MoneyPlugin adds a "money" field type stored as a fixed-precision
// decimal with a currency code attached as a custom attribute.
type MoneyPlugin struct{}

func (MoneyPlugin) TypeID() string    { return "money" }
func (MoneyPlugin) Aliases() []string { return []string{"currency", "price"} }

func (MoneyPlugin) BaseRules() []string {
	return []string{"numeric"}
}

func (MoneyPlugin) StorageMapping() registry.StorageMapping {
	return registry.StorageMapping{ColumnType: "decimal", Precision: 19, Scale: 4}
}

func (MoneyPlugin) CustomAttributeSpecs() map[string]registry.CustomAttributeSpec {
	return map[string]registry.CustomAttributeSpec{
		"currency_code": {
			ValueType:   registry.AttrString,
			Default:     "USD",
			Description: "ISO 4217 currency code",
			Transform: func(value any) any {
				if s, ok := value.(string); ok {
					return strings.ToUpper(strings.TrimSpace(s))
				}
				return value
			},
			Validator: func(value any) []string {
				s, ok := value.(string)
				if !ok || len(s) != 3 {
					return []string{"currency_code must be a 3-letter ISO 4217 code"}
				}
				for _, r := range s {
					if r < 'A' || r > 'Z' {
						return []string{"currency_code must be a 3-letter ISO 4217 code"}
					}
				}
				return nil
			},
		},
		"min_amount": {
			ValueType:   registry.AttrInteger,
			Min:         floatPtr(0),
			Description: "inclusive lower bound in minor units",
		},
		"max_amount": {
			ValueType:   registry.AttrInteger,
			Min:         floatPtr(1),
			Description: "inclusive upper bound in minor units",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
