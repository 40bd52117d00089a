package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Decode parses a JSON payload into a Value, preserving object member order.
func Decode(payload []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("jsonval: decode: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("jsonval: decode: trailing data after value")
	}
	return value, nil
}

// UnmarshalJSON implements json.Unmarshaler so Value can sit inside request
// and response payload structs.
func (v *Value) UnmarshalJSON(payload []byte) error {
	decoded, err := Decode(payload)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case json.Number:
		return NumberLit(t), nil
	case bool:
		return Bool(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return Object(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: value})
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return Array(items...), nil
		}
		item, err := decodeFromToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// FromAny converts a decoded interface{} tree (map[string]any, []any,
// scalars) into a Value. Map keys are sorted so the result is deterministic
// even though Go maps are unordered.
func FromAny(value any) Value {
	switch v := value.(type) {
	case nil:
		return Null()
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case json.Number:
		return NumberLit(v)
	case []any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, FromAny(item))
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, key := range keys {
			members = append(members, Member{Key: key, Value: FromAny(v[key])})
		}
		return Object(members...)
	default:
		return String(fmt.Sprintf("%v", v))
	}
}
