package plugins

import (
	"scaffgen/registry"
)

// PhonePlugin adds a "phone" field type with an opt-out for strict E.164
// format checking.
type PhonePlugin struct{}

func (PhonePlugin) TypeID() string    { return "phone" }
func (PhonePlugin) Aliases() []string { return []string{"phone_number", "tel"} }

func (PhonePlugin) BaseRules() []string {
	return []string{"string"}
}

func (PhonePlugin) StorageMapping() registry.StorageMapping {
	return registry.StorageMapping{ColumnType: "varchar", Length: 32}
}

func (PhonePlugin) CustomAttributeSpecs() map[string]registry.CustomAttributeSpec {
	return map[string]registry.CustomAttributeSpec{
		"e164": {
			ValueType:   registry.AttrBoolean,
			Default:     true,
			Description: "require E.164 formatted values",
		},
		"max_digits": {
			ValueType:   registry.AttrInteger,
			Min:         floatPtr(4),
			Max:         floatPtr(15),
			Default:     15,
			Description: "maximum number of digits, subscriber number included",
		},
	}
}
