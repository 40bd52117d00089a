package form

import internalform "github.com/Rejishankar/docform/internal/form"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalform.FieldType

const (
	FieldTypeString  = internalform.FieldTypeString
	FieldTypeNumber  = internalform.FieldTypeNumber
	FieldTypeBoolean = internalform.FieldTypeBoolean
	FieldTypeArray   = internalform.FieldTypeArray
	FieldTypeObject  = internalform.FieldTypeObject
)

type Property = internalform.Property
type SchemaNode = internalform.SchemaNode

// Titleize re-exports the default key-to-title formatter so callers can
// compose it with their own labelers.
func Titleize(key string) string {
	return internalform.Titleize(key)
}
