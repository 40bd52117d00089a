// Package docform derives editable form artifacts from arbitrary,
// shape-unknown JSON produced by an AI extraction step: a normalized data
// tree, a display schema for the rendering layer, and a validation ruleset
// whose failures project back onto nested field locations.
package docform

import (
	"github.com/Rejishankar/docform/pkg/form"
	"github.com/Rejishankar/docform/pkg/jsonval"
	"github.com/Rejishankar/docform/pkg/rules"
)

// Derivation bundles the artifacts derived from one extraction result. All
// three are value types computed deterministically from the raw input; none
// holds a reference back to its source, so a Derivation can be discarded and
// recomputed freely.
type Derivation struct {
	// Data is the normalized extraction tree, the prefill source for the
	// rendered form.
	Data jsonval.Value `json:"data"`

	// Schema is the inferred display schema the rendering layer consumes.
	Schema form.SchemaNode `json:"schema"`

	// Rules is the validation ruleset mirroring the tree's shape.
	Rules rules.Ruleset `json:"rules"`
}

// Derive normalizes a raw extracted value and infers its display schema and
// validation ruleset. It is total: any JSON input derives to something
// displayable.
func Derive(raw jsonval.Value) Derivation {
	normalized := jsonval.Normalize(raw)
	return Derivation{
		Data:   normalized,
		Schema: form.NewBuilder().Build(normalized),
		Rules:  rules.Infer(normalized),
	}
}

// DeriveJSON decodes a raw JSON payload and derives its artifacts.
func DeriveJSON(payload []byte) (Derivation, error) {
	raw, err := jsonval.Decode(payload)
	if err != nil {
		return Derivation{}, err
	}
	return Derive(raw), nil
}

// Validate runs the derivation's ruleset against an edited data tree and
// returns the nested error map, empty when every field passes.
func (d Derivation) Validate(edited jsonval.Value) *rules.ErrorMap {
	return d.Rules.Validate(edited)
}

// Export serialises an edited data tree as formatted JSON, the exact bytes
// handed to the file-persistence collaborator.
func Export(edited jsonval.Value) ([]byte, error) {
	return jsonval.EncodeIndent(edited)
}
