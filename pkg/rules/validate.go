package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

const msgRequired = "this field is required"

// Validate executes the ruleset against a candidate data tree and projects
// every failure into an ErrorMap. All leaf rules run; nothing short-circuits
// on the first failure, so the rendering layer can show every problem at
// once. A key present in the ruleset but absent from the data validates as
// an empty string, which trips the required check instead of being skipped.
func (rs Ruleset) Validate(data jsonval.Value) *ErrorMap {
	errs := NewErrorMap()
	validateNode(rs.Root, "", data, errs)
	return errs
}

func validateNode(rule Rule, path string, value jsonval.Value, errs *ErrorMap) {
	switch rule.Kind {
	case RuleKindObject:
		for _, e := range rule.Entries {
			child, _ := value.Member(e.Key)
			validateNode(e.Rule, joinPath(path, e.Key), child, errs)
		}
	case RuleKindArray:
		validateArray(rule, path, value, errs)
	case RuleKindBoolean:
		// Unconstrained.
	default:
		for _, msg := range rule.CheckText(value.Text()) {
			errs.Add(path, msg)
		}
	}
}

func validateArray(rule Rule, path string, value jsonval.Value, errs *ErrorMap) {
	if value.Kind() == jsonval.KindArray {
		if value.Len() < rule.MinItems {
			errs.Add(path, minItemsMessage(rule.MinItems))
		}
		// Element-level formats are deliberately not enforced; arrays only
		// carry the length constraint.
		return
	}
	// An edited tree may hold a collapsed scalar where the extraction held
	// an array. A non-blank scalar counts as a single entry.
	if rule.MinItems > 0 && strings.TrimSpace(value.Text()) == "" {
		errs.Add(path, minItemsMessage(rule.MinItems))
	}
}

// CheckText runs a scalar leaf rule against candidate text, returning every
// failure message in order. It backs both the projector and interactive
// per-field validators.
func (r Rule) CheckText(text string) []string {
	switch r.Kind {
	case RuleKindNumber:
		if strings.TrimSpace(text) == "" {
			if r.Required {
				return []string{msgRequired}
			}
			return nil
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			return []string{"must be a number"}
		}
		return nil
	case RuleKindString:
		if text == "" {
			if r.Required {
				return []string{msgRequired}
			}
			return nil
		}
		var msgs []string
		for _, format := range r.Formats {
			if err := format.Check(text); err != nil {
				msgs = append(msgs, err.Error())
			}
		}
		return msgs
	default:
		return nil
	}
}

func minItemsMessage(min int) string {
	if min == 1 {
		return "must have at least one entry"
	}
	return fmt.Sprintf("must have at least %d entries", min)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
