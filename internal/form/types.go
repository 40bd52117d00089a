package form

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Property pairs an object key with the schema inferred for its value.
// Properties are kept as an ordered slice so renderers lay fields out in the
// same order the extraction produced them.
type Property struct {
	Name   string     `json:"name"`
	Schema SchemaNode `json:"schema"`
}

// SchemaNode describes a single field of the display schema: its widget
// type, human-readable title, prefill default, and nested structure for
// object and array fields. One node exists per key in the normalized tree.
type SchemaNode struct {
	Type       FieldType   `json:"type"`
	Title      string      `json:"title,omitempty"`
	Default    any         `json:"default,omitempty"`
	Properties []Property  `json:"properties,omitempty"`
	Items      *SchemaNode `json:"items,omitempty"`

	// Group marks an object node so renderers can apply sectioned styling
	// to nested field groups. It is a rendering hint, nothing structural.
	Group bool `json:"group,omitempty"`
}

// Property looks up a nested property schema by name.
func (n SchemaNode) Property(name string) (SchemaNode, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return SchemaNode{}, false
}

// Options configures the schema builder.
type Options struct {
	// Labeler converts field keys into display titles. Defaults to Titleize.
	Labeler func(string) string
}
