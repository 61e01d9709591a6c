package criteria

import "strings"

// Field names one settable attribute of a Record.
type Field int

const (
	FieldPrefix Field = iota
	FieldProduct
	FieldStatus
	FieldName
	FieldDescription
	FieldCreator
	FieldTag
	FieldMinRefDate
	FieldMinRefDateFormat
	FieldMaxRefDate
	FieldMaxRefDateFormat
	FieldMinRunDate
	FieldMinRunDateFormat
	FieldMaxRunDate
	FieldMaxRunDateFormat
)

var fieldNames = [...]string{
	FieldPrefix:           "prefix",
	FieldProduct:          "product",
	FieldStatus:           "status",
	FieldName:             "name",
	FieldDescription:      "description",
	FieldCreator:          "creator",
	FieldTag:              "tag",
	FieldMinRefDate:       "minRefDate",
	FieldMinRefDateFormat: "minRefDateFormat",
	FieldMaxRefDate:       "maxRefDate",
	FieldMaxRefDateFormat: "maxRefDateFormat",
	FieldMinRunDate:       "minRunDate",
	FieldMinRunDateFormat: "minRunDateFormat",
	FieldMaxRunDate:       "maxRunDate",
	FieldMaxRunDateFormat: "maxRunDateFormat",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Accumulates reports whether repeated values are collected into a set
// rather than overwriting each other.
func (f Field) Accumulates() bool {
	return f == FieldProduct || f == FieldStatus || f == FieldTag
}

// Fields returns every field in declaration order.
func Fields() []Field {
	out := make([]Field, len(fieldNames))
	for i := range fieldNames {
		out[i] = Field(i)
	}
	return out
}

// LookupField finds a field by name, ignoring case.
func LookupField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return Field(i), true
		}
	}
	return 0, false
}
