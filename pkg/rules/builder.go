package rules

import "github.com/Rejishankar/docform/pkg/jsonval"

// Infer walks a normalized extraction value and derives the validation
// ruleset that mirrors its shape. The traversal matches the display schema
// builder key for key, so every rendered field has a corresponding rule.
// Infer is total: absence of information becomes a required blank rule,
// never an error.
func Infer(value jsonval.Value) Ruleset {
	return Ruleset{Root: ruleFor("", value)}
}

func ruleFor(key string, value jsonval.Value) Rule {
	if value.IsNull() || (value.Kind() == jsonval.KindString && value.Str() == "") {
		// Blank was an acceptable display default, but not an acceptable
		// final value: the field must be filled in before submission. The
		// key-name heuristics still apply, since they never inspect values.
		return stringRule(key)
	}

	switch value.Kind() {
	case jsonval.KindObject:
		members := value.Members()
		entries := make([]Entry, 0, len(members))
		for _, m := range members {
			entries = append(entries, Entry{Key: m.Key, Rule: ruleFor(m.Key, m.Value)})
		}
		return Rule{Kind: RuleKindObject, Entries: entries}
	case jsonval.KindArray:
		if items := value.Items(); len(items) == 1 && items[0].Kind() == jsonval.KindString {
			// Mirrors the schema builder: a single-string array is a plain
			// string field.
			return stringRule(key)
		}
		// Elements are assumed to be strings for the common case; their
		// formats are not validated element by element.
		elem := Rule{Kind: RuleKindString}
		return Rule{Kind: RuleKindArray, MinItems: 1, Elem: &elem}
	case jsonval.KindBool:
		return Rule{Kind: RuleKindBoolean}
	case jsonval.KindNumber:
		return Rule{Kind: RuleKindNumber, Required: true}
	default:
		return stringRule(key)
	}
}

func stringRule(key string) Rule {
	return Rule{
		Kind:     RuleKindString,
		Required: true,
		Formats:  FormatsForKey(key),
	}
}
