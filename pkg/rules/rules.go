package rules

import "strings"

// RuleKind is the type tag for a validation rule node.
type RuleKind string

const (
	RuleKindString  RuleKind = "string"
	RuleKindNumber  RuleKind = "number"
	RuleKindBoolean RuleKind = "boolean"
	RuleKindObject  RuleKind = "object"
	RuleKindArray   RuleKind = "array"
)

// Entry pairs an object key with the rule inferred for its value. Entries
// keep the traversal order of the source tree.
type Entry struct {
	Key  string `json:"key"`
	Rule Rule   `json:"rule"`
}

// Rule is one node of the validation ruleset. The ruleset mirrors the shape
// of the normalized tree: object rules nest entries, array rules carry a
// minimum length and an element rule, string rules carry the required flag
// and any format checks the key-name heuristics assigned.
type Rule struct {
	Kind     RuleKind `json:"kind"`
	Required bool     `json:"required,omitempty"`
	Formats  []Format `json:"formats,omitempty"`
	Entries  []Entry  `json:"entries,omitempty"`
	MinItems int      `json:"minItems,omitempty"`
	Elem     *Rule    `json:"elem,omitempty"`
}

// Entry looks up a nested rule by key.
func (r Rule) Entry(key string) (Rule, bool) {
	for _, e := range r.Entries {
		if e.Key == key {
			return e.Rule, true
		}
	}
	return Rule{}, false
}

// Ruleset is the root of an inferred validation ruleset. It is a value type:
// derived deterministically from its input and freely recomputed.
type Ruleset struct {
	Root Rule `json:"root"`
}

// RuleAt resolves a rule by dotted field path ("applicantDetails.email").
// The empty path resolves to the root rule.
func (rs Ruleset) RuleAt(path string) (Rule, bool) {
	rule := rs.Root
	if strings.TrimSpace(path) == "" {
		return rule, true
	}
	for _, segment := range strings.Split(path, ".") {
		if rule.Kind != RuleKindObject {
			return Rule{}, false
		}
		next, ok := rule.Entry(segment)
		if !ok {
			return Rule{}, false
		}
		rule = next
	}
	return rule, true
}
