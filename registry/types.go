package registry

import (
	"fmt"
	"sort"
)

// StorageMapping is the storage-primitive hint for a field type, consumed
// by the migration fragment generator.
type StorageMapping struct {
	ColumnType string `json:"column_type" yaml:"column_type"`
	Unsigned   bool   `json:"unsigned,omitempty" yaml:"unsigned,omitempty"`
	Length     int    `json:"length,omitempty" yaml:"length,omitempty"`
	Precision  int    `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale      int    `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// BaseTypeDescriptor bundles the default behavior of a builtin field type:
// the validation rules the type implies, its storage mapping, the wire
// type it narrows to in API transforms, and a hint for sample-data
// generation.
type BaseTypeDescriptor struct {
	BaseRules []string
	Storage   StorageMapping
	WireType  string
	FakerHint string
}

// ErrUnknownType is returned by Resolve for unregistered type identifiers.
var ErrUnknownType = fmt.Errorf("registry: unknown type")

var builtinTypes = map[string]BaseTypeDescriptor{
	"string": {
		BaseRules: []string{"string"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 255},
		WireType:  "string",
		FakerHint: "word",
	},
	"text": {
		BaseRules: []string{"string"},
		Storage:   StorageMapping{ColumnType: "text"},
		WireType:  "string",
		FakerHint: "paragraph",
	},
	"char": {
		BaseRules: []string{"string"},
		Storage:   StorageMapping{ColumnType: "char", Length: 1},
		WireType:  "string",
		FakerHint: "randomLetter",
	},
	"integer": {
		BaseRules: []string{"integer"},
		Storage:   StorageMapping{ColumnType: "integer"},
		WireType:  "integer",
		FakerHint: "randomNumber",
	},
	"tiny_integer": {
		BaseRules: []string{"integer"},
		Storage:   StorageMapping{ColumnType: "tinyint"},
		WireType:  "integer",
		FakerHint: "numberBetween",
	},
	"small_integer": {
		BaseRules: []string{"integer"},
		Storage:   StorageMapping{ColumnType: "smallint"},
		WireType:  "integer",
		FakerHint: "numberBetween",
	},
	"medium_integer": {
		BaseRules: []string{"integer"},
		Storage:   StorageMapping{ColumnType: "mediumint"},
		WireType:  "integer",
		FakerHint: "randomNumber",
	},
	"big_integer": {
		BaseRules: []string{"integer"},
		Storage:   StorageMapping{ColumnType: "bigint"},
		WireType:  "integer",
		FakerHint: "randomNumber",
	},
	"unsigned_integer": {
		BaseRules: []string{"integer", "min:0"},
		Storage:   StorageMapping{ColumnType: "integer", Unsigned: true},
		WireType:  "integer",
		FakerHint: "randomNumber",
	},
	"unsigned_big_integer": {
		BaseRules: []string{"integer", "min:0"},
		Storage:   StorageMapping{ColumnType: "bigint", Unsigned: true},
		WireType:  "integer",
		FakerHint: "randomNumber",
	},
	"decimal": {
		BaseRules: []string{"numeric"},
		Storage:   StorageMapping{ColumnType: "decimal", Precision: 8, Scale: 2},
		WireType:  "float",
		FakerHint: "randomFloat",
	},
	"float": {
		BaseRules: []string{"numeric"},
		Storage:   StorageMapping{ColumnType: "float"},
		WireType:  "float",
		FakerHint: "randomFloat",
	},
	"double": {
		BaseRules: []string{"numeric"},
		Storage:   StorageMapping{ColumnType: "double"},
		WireType:  "float",
		FakerHint: "randomFloat",
	},
	"boolean": {
		BaseRules: []string{"boolean"},
		Storage:   StorageMapping{ColumnType: "boolean"},
		WireType:  "boolean",
		FakerHint: "boolean",
	},
	"date": {
		BaseRules: []string{"date"},
		Storage:   StorageMapping{ColumnType: "date"},
		WireType:  "string",
		FakerHint: "date",
	},
	"datetime": {
		BaseRules: []string{"date"},
		Storage:   StorageMapping{ColumnType: "datetime"},
		WireType:  "string",
		FakerHint: "dateTime",
	},
	"time": {
		BaseRules: []string{"date_format:H:i:s"},
		Storage:   StorageMapping{ColumnType: "time"},
		WireType:  "string",
		FakerHint: "time",
	},
	"timestamp": {
		BaseRules: []string{"date"},
		Storage:   StorageMapping{ColumnType: "datetime"},
		WireType:  "string",
		FakerHint: "dateTime",
	},
	"json": {
		BaseRules: []string{"array"},
		Storage:   StorageMapping{ColumnType: "json"},
		WireType:  "array",
		FakerHint: "words",
	},
	"uuid": {
		BaseRules: []string{"uuid"},
		Storage:   StorageMapping{ColumnType: "uuid"},
		WireType:  "string",
		FakerHint: "uuid",
	},
	"email": {
		BaseRules: []string{"string", "email"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 255},
		WireType:  "string",
		FakerHint: "safeEmail",
	},
	"url": {
		BaseRules: []string{"string", "url"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 2048},
		WireType:  "string",
		FakerHint: "url",
	},
	"slug": {
		BaseRules: []string{"string", "alpha_dash"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 255},
		WireType:  "string",
		FakerHint: "slug",
	},
	"enum": {
		BaseRules: []string{"string"},
		Storage:   StorageMapping{ColumnType: "enum"},
		WireType:  "string",
		FakerHint: "randomElement",
	},
	"binary": {
		BaseRules: []string{"string"},
		Storage:   StorageMapping{ColumnType: "blob"},
		WireType:  "string",
		FakerHint: "sha256",
	},
	"ip_address": {
		BaseRules: []string{"string", "ip"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 45},
		WireType:  "string",
		FakerHint: "ipv4",
	},
	"mac_address": {
		BaseRules: []string{"string", "mac_address"},
		Storage:   StorageMapping{ColumnType: "varchar", Length: 17},
		WireType:  "string",
		FakerHint: "macAddress",
	},
}

// Resolve looks up a builtin type descriptor. It fails only with
// ErrUnknownType.
func Resolve(typeID string) (BaseTypeDescriptor, error) {
	d, ok := builtinTypes[typeID]
	if !ok {
		return BaseTypeDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownType, typeID)
	}
	return descriptorCopy(d), nil
}

// Builtin reports whether the type identifier is a builtin.
func Builtin(typeID string) bool {
	_, ok := builtinTypes[typeID]
	return ok
}

// BuiltinTypes returns the sorted builtin type identifiers.
func BuiltinTypes() []string {
	names := make([]string, 0, len(builtinTypes))
	for name := range builtinTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecimalType reports whether precision/scale attributes apply to the type.
func DecimalType(typeID string) bool {
	switch typeID {
	case "decimal", "float", "double":
		return true
	}
	return false
}

func descriptorCopy(d BaseTypeDescriptor) BaseTypeDescriptor {
	out := d
	out.BaseRules = append([]string(nil), d.BaseRules...)
	return out
}
