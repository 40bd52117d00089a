package rules

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ErrorMap is a tree with the same key structure as the validated data. Leaf
// positions that failed a rule carry an ordered sequence of messages;
// intermediate nodes exist only to reach leaves. The zero value is unusable,
// use NewErrorMap.
type ErrorMap struct {
	order    []string
	children map[string]*ErrorMap
	messages []string
}

// NewErrorMap returns an empty error map.
func NewErrorMap() *ErrorMap {
	return &ErrorMap{children: make(map[string]*ErrorMap)}
}

// Add appends a message at the dotted field path, creating intermediate
// nesting as needed.
func (m *ErrorMap) Add(path, message string) {
	node := m
	for _, segment := range splitPath(path) {
		child, ok := node.children[segment]
		if !ok {
			child = NewErrorMap()
			node.children[segment] = child
			node.order = append(node.order, segment)
		}
		node = child
	}
	node.messages = append(node.messages, message)
}

// Messages returns the messages recorded at the dotted path, or nil.
func (m *ErrorMap) Messages(path string) []string {
	node := m
	for _, segment := range splitPath(path) {
		child, ok := node.children[segment]
		if !ok {
			return nil
		}
		node = child
	}
	return node.messages
}

// Empty reports whether no failure was recorded anywhere in the tree.
func (m *ErrorMap) Empty() bool {
	if len(m.messages) > 0 {
		return false
	}
	for _, child := range m.children {
		if !child.Empty() {
			return false
		}
	}
	return true
}

// Leaves counts the positions carrying at least one message.
func (m *ErrorMap) Leaves() int {
	count := 0
	if len(m.messages) > 0 {
		count++
	}
	for _, child := range m.children {
		count += child.Leaves()
	}
	return count
}

// Flatten collapses the tree into dotted-path keyed message lists.
func (m *ErrorMap) Flatten() map[string][]string {
	out := make(map[string][]string)
	m.flattenInto("", out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func (m *ErrorMap) flattenInto(prefix string, out map[string][]string) {
	if len(m.messages) > 0 {
		out[prefix] = append([]string(nil), m.messages...)
	}
	for _, key := range m.order {
		childPrefix := key
		if prefix != "" {
			childPrefix = prefix + "." + key
		}
		m.children[key].flattenInto(childPrefix, out)
	}
}

// MarshalJSON serialises leaves as message arrays and intermediate nodes as
// objects, in insertion order, which is the nested shape the rendering layer
// consumes.
func (m *ErrorMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *ErrorMap) encode(buf *bytes.Buffer) error {
	if len(m.children) == 0 {
		payload, err := json.Marshal(m.messages)
		if err != nil {
			return err
		}
		buf.Write(payload)
		return nil
	}
	buf.WriteByte('{')
	for i, key := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if err := m.children[key].encode(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func splitPath(path string) []string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ".")
}
