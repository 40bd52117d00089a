package form

import "github.com/Rejishankar/docform/pkg/jsonval"

// Shape-ambiguity policies. Extraction output is frequently missing, null, or
// oddly shaped; each ambiguity resolves to a modelling decision here rather
// than an error. Keeping them as named functions makes the behaviour
// auditable and testable on its own.

// IsBlank reports whether a value carries no usable content: JSON null or an
// empty string. Blank leaves still become editable fields.
func IsBlank(v jsonval.Value) bool {
	if v.IsNull() {
		return true
	}
	return v.Kind() == jsonval.KindString && v.Str() == ""
}

// BlankLeafSchema is the policy for null and empty leaves: a string field
// defaulting to the empty string, so the user can fill in what the
// extraction could not.
func BlankLeafSchema(title string) SchemaNode {
	return SchemaNode{Type: FieldTypeString, Title: title, Default: ""}
}

// SingleStringArray reports whether an array holds exactly one string
// element. Such arrays are treated as plain string fields, mirroring the
// normalizer's collapsing rule in case normalization was skipped upstream.
func SingleStringArray(v jsonval.Value) (string, bool) {
	if v.Kind() != jsonval.KindArray || v.Len() != 1 {
		return "", false
	}
	item := v.Items()[0]
	if item.Kind() != jsonval.KindString {
		return "", false
	}
	return item.Str(), true
}

// EmptyArrayItemSchema is the policy for arrays with no elements to sample:
// item schemas default to string.
func EmptyArrayItemSchema(title string) SchemaNode {
	return SchemaNode{Type: FieldTypeString, Title: title, Default: ""}
}
