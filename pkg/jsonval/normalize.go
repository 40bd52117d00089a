package jsonval

// Normalize canonicalises an extracted value before schema inference. The
// single rule: an array holding exactly one string collapses to that string.
// Inner values are normalised first, so a nested single-string array deep in
// the tree collapses before its parent is inspected. Normalize is total and
// idempotent, and never mutates its input.
func Normalize(v Value) Value {
	switch v.kind {
	case KindArray:
		if len(v.items) == 1 && v.items[0].kind == KindString {
			return v.items[0]
		}
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Normalize(item)
		}
		// Collapsing an inner array can leave this one as a lone string.
		if len(items) == 1 && items[0].kind == KindString {
			return items[0]
		}
		return Array(items...)
	case KindObject:
		members := make([]Member, len(v.members))
		for i, m := range v.members {
			members[i] = Member{Key: m.Key, Value: Normalize(m.Value)}
		}
		return Object(members...)
	default:
		return v
	}
}
