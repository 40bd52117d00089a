package jsonval

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind is the type tag for a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// String reports the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Member is a single key/value pair inside an object value.
type Member struct {
	Key   string
	Value Value
}

// Value is a tagged-union representation of an arbitrary JSON value. Object
// members keep the order they appeared in the source document so traversals
// stay deterministic. The zero Value is JSON null.
type Value struct {
	kind    Kind
	str     string
	num     json.Number
	boolean bool
	items   []Value
	members []Member
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// String wraps a Go string as a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a float as a JSON number value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(f, 'f', -1, 64))}
}

// NumberLit wraps a raw JSON number literal, preserving its formatting.
func NumberLit(lit json.Number) Value {
	return Value{kind: KindNumber, num: lit}
}

// Bool wraps a Go bool as a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Array builds a JSON array from the supplied elements.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object builds a JSON object from the supplied members, keeping their order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: members}
}

// Kind reports the value's type tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string payload. It is only meaningful for string values.
func (v Value) Str() string {
	return v.str
}

// Num returns the raw number literal. It is only meaningful for number values.
func (v Value) Num() json.Number {
	return v.num
}

// Float64 parses the number payload. Non-number values report 0, false.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the boolean payload. It is only meaningful for bool values.
func (v Value) Bool() bool {
	return v.boolean
}

// Items returns the array elements. Callers must not mutate the slice.
func (v Value) Items() []Value {
	return v.items
}

// Members returns the object members in document order. Callers must not
// mutate the slice.
func (v Value) Members() []Member {
	return v.members
}

// Member looks up an object member by key.
func (v Value) Member(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Len reports the element count for arrays and the member count for objects.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Text renders a scalar value as display text: strings verbatim, numbers as
// their literal, booleans as "true"/"false", null as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.boolean)
	default:
		return ""
	}
}

// Equal reports deep equality. Object member order is significant, matching
// the deterministic-traversal guarantee.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.boolean == other.boolean
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key {
				return false
			}
			if !v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON serialises the value, emitting object members in their
// preserved order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindString:
		payload, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(payload)
	case KindNumber:
		lit := v.num.String()
		if lit == "" {
			lit = "0"
		}
		buf.WriteString(lit)
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

// EncodeIndent serialises the value as formatted JSON suitable for export
// (output boundary for the file-persistence collaborator).
func EncodeIndent(v Value) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
