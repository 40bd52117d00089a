package testsupport

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

// MustDecode parses a JSON literal into a jsonval.Value. Testing helpers
// fail fatally to keep contract tests concise.
func MustDecode(t *testing.T, raw string) jsonval.Value {
	t.Helper()

	value, err := jsonval.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return value
}

// ValueComparer teaches go-cmp to compare jsonval values through their
// public equality, since their internals are unexported.
func ValueComparer() cmp.Option {
	return cmp.Comparer(func(a, b jsonval.Value) bool {
		return a.Equal(b)
	})
}

// Diff renders a readable diff between two artifacts by comparing their
// JSON serialisations.
func Diff(t *testing.T, want, got any) string {
	t.Helper()

	wantJSON, err := json.MarshalIndent(want, "", "  ")
	if err != nil {
		t.Fatalf("marshal want: %v", err)
	}
	gotJSON, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("marshal got: %v", err)
	}
	return cmp.Diff(string(wantJSON), string(gotJSON))
}
