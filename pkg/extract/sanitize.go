package extract

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

var (
	leafPolicyOnce sync.Once
	leafPolicy     *bluemonday.Policy
)

// SanitizeStrings strips markup from every string leaf of an extracted tree.
// OCR and model output occasionally smuggle HTML fragments into field
// values; those values end up rendered inside form controls, so they are
// cleaned at this boundary.
func SanitizeStrings(v jsonval.Value) jsonval.Value {
	switch v.Kind() {
	case jsonval.KindString:
		return jsonval.String(sanitizeLeaf(v.Str()))
	case jsonval.KindArray:
		items := v.Items()
		out := make([]jsonval.Value, len(items))
		for i, item := range items {
			out[i] = SanitizeStrings(item)
		}
		return jsonval.Array(out...)
	case jsonval.KindObject:
		members := v.Members()
		out := make([]jsonval.Member, len(members))
		for i, m := range members {
			out[i] = jsonval.Member{Key: m.Key, Value: SanitizeStrings(m.Value)}
		}
		return jsonval.Object(out...)
	default:
		return v
	}
}

func sanitizeLeaf(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	cleaned := leafSanitizer().Sanitize(raw)
	// bluemonday entity-escapes surviving text; undo that so plain values
	// like "Smith & Sons" round-trip unchanged.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func leafSanitizer() *bluemonday.Policy {
	leafPolicyOnce.Do(func() {
		leafPolicy = bluemonday.StrictPolicy()
	})
	return leafPolicy
}
