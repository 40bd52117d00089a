package jsonval_test

import (
	"testing"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

func mustDecode(t *testing.T, raw string) jsonval.Value {
	t.Helper()
	value, err := jsonval.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return value
}

func TestNormalize_CollapsesSingleStringArray(t *testing.T) {
	got := jsonval.Normalize(mustDecode(t, `["Acme Corp"]`))
	if !got.Equal(jsonval.String("Acme Corp")) {
		t.Fatalf("expected collapsed string, got kind %s", got.Kind())
	}
}

func TestNormalize_LeavesMultiElementArrays(t *testing.T) {
	input := mustDecode(t, `["a","b"]`)
	got := jsonval.Normalize(input)
	if !got.Equal(input) {
		t.Fatalf("expected array unchanged")
	}
}

func TestNormalize_SingleNonStringElementStays(t *testing.T) {
	input := mustDecode(t, `[42]`)
	got := jsonval.Normalize(input)
	if got.Kind() != jsonval.KindArray || got.Len() != 1 {
		t.Fatalf("expected single-number array unchanged, got kind %s", got.Kind())
	}
}

func TestNormalize_RecursesIntoObjects(t *testing.T) {
	got := jsonval.Normalize(mustDecode(t, `{"company": ["Acme Corp"], "tags": ["a","b"]}`))

	company, ok := got.Member("company")
	if !ok || !company.Equal(jsonval.String("Acme Corp")) {
		t.Fatalf("expected company collapsed to string, got %v", company.Kind())
	}
	tags, _ := got.Member("tags")
	if tags.Kind() != jsonval.KindArray || tags.Len() != 2 {
		t.Fatalf("expected tags to stay a two-element array")
	}
}

func TestNormalize_InnerArraysBeforeOuter(t *testing.T) {
	// [["x"]] normalizes inner to "x", leaving the outer as a lone-string
	// array that collapses in turn.
	got := jsonval.Normalize(mustDecode(t, `[["x"]]`))
	if !got.Equal(jsonval.String("x")) {
		t.Fatalf("expected nested collapse to %q, got kind %s", "x", got.Kind())
	}
}

func TestNormalize_PassesThroughScalarsAndNull(t *testing.T) {
	for _, raw := range []string{`null`, `"text"`, `12.5`, `true`} {
		input := mustDecode(t, raw)
		if got := jsonval.Normalize(input); !got.Equal(input) {
			t.Fatalf("expected %s to pass through unchanged", raw)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	fixtures := []string{
		`{"name": ["Jane"], "pets": [["cat"]], "meta": {"codes": ["12345"], "empty": []}}`,
		`[["a"], ["b","c"], [], 7]`,
		`{"deep": {"deeper": {"leaf": ["only"]}}}`,
		`null`,
		`"plain"`,
	}
	for _, raw := range fixtures {
		once := jsonval.Normalize(mustDecode(t, raw))
		twice := jsonval.Normalize(once)
		if !once.Equal(twice) {
			t.Fatalf("normalize not idempotent for %s", raw)
		}
	}
}

func TestDecode_PreservesMemberOrder(t *testing.T) {
	value := mustDecode(t, `{"zeta": 1, "alpha": 2, "mid": 3}`)
	members := value.Members()
	want := []string{"zeta", "alpha", "mid"}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, key := range want {
		if members[i].Key != key {
			t.Fatalf("member %d: expected key %q, got %q", i, key, members[i].Key)
		}
	}
}

func TestDecode_RejectsTrailingData(t *testing.T) {
	if _, err := jsonval.Decode([]byte(`{"a":1} extra`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestMarshalJSON_RoundTripsOrderAndLiterals(t *testing.T) {
	raw := `{"b":1.50,"a":{"nested":[true,null,"x"]}}`
	value := mustDecode(t, raw)
	payload, err := value.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != raw {
		t.Fatalf("expected %s, got %s", raw, payload)
	}
}

func TestEncodeIndent_FormatsExport(t *testing.T) {
	value := mustDecode(t, `{"name":"Jane"}`)
	payload, err := jsonval.EncodeIndent(value)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "{\n  \"name\": \"Jane\"\n}\n"
	if string(payload) != want {
		t.Fatalf("expected %q, got %q", want, payload)
	}
}

func TestValue_Text(t *testing.T) {
	cases := map[string]string{
		`"hello"`: "hello",
		`3.140`:   "3.140",
		`true`:    "true",
		`null`:    "",
	}
	for raw, want := range cases {
		if got := mustDecode(t, raw).Text(); got != want {
			t.Fatalf("Text(%s): expected %q, got %q", raw, want, got)
		}
	}
}

func TestFromAny_SortsMapKeys(t *testing.T) {
	value := jsonval.FromAny(map[string]any{"b": 1, "a": 2, "c": 3})
	members := value.Members()
	want := []string{"a", "b", "c"}
	for i, key := range want {
		if members[i].Key != key {
			t.Fatalf("member %d: expected %q, got %q", i, key, members[i].Key)
		}
	}
}
