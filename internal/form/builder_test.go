package form

import (
	"encoding/json"
	"testing"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

func decode(t *testing.T, raw string) jsonval.Value {
	t.Helper()
	value, err := jsonval.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return value
}

func TestBuild_BlankLeavesBecomeEmptyStringFields(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"name": null, "notes": ""}`))

	for _, key := range []string{"name", "notes"} {
		field, ok := node.Property(key)
		if !ok {
			t.Fatalf("missing property %q", key)
		}
		if field.Type != FieldTypeString {
			t.Fatalf("%s: expected string type, got %s", key, field.Type)
		}
		if field.Default != "" {
			t.Fatalf("%s: expected empty default, got %v", key, field.Default)
		}
	}

	name, _ := node.Property("name")
	if name.Title != "Name" {
		t.Fatalf("expected title %q, got %q", "Name", name.Title)
	}
}

func TestBuild_ScalarDefaults(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"age": 42, "active": true, "city": "Lagos"}`))

	age, _ := node.Property("age")
	if age.Type != FieldTypeNumber {
		t.Fatalf("age: expected number, got %s", age.Type)
	}
	if num, ok := age.Default.(json.Number); !ok || num.String() != "42" {
		t.Fatalf("age: expected default 42, got %v", age.Default)
	}

	active, _ := node.Property("active")
	if active.Type != FieldTypeBoolean || active.Default != true {
		t.Fatalf("active: expected boolean true, got %s %v", active.Type, active.Default)
	}

	city, _ := node.Property("city")
	if city.Type != FieldTypeString || city.Default != "Lagos" {
		t.Fatalf("city: expected string Lagos, got %s %v", city.Type, city.Default)
	}
}

func TestBuild_NestedObjectsAreGroups(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"applicantDetails": {"firstName": "Jane", "lastName": "Doe"}}`))

	details, ok := node.Property("applicantDetails")
	if !ok {
		t.Fatalf("missing applicantDetails")
	}
	if details.Type != FieldTypeObject || !details.Group {
		t.Fatalf("expected grouped object node, got type %s group %v", details.Type, details.Group)
	}
	if details.Title != "Applicant Details" {
		t.Fatalf("expected title %q, got %q", "Applicant Details", details.Title)
	}

	want := []string{"firstName", "lastName"}
	if len(details.Properties) != len(want) {
		t.Fatalf("expected %d properties, got %d", len(want), len(details.Properties))
	}
	for i, key := range want {
		if details.Properties[i].Name != key {
			t.Fatalf("property %d: expected %q, got %q", i, key, details.Properties[i].Name)
		}
	}
}

func TestBuild_SingleStringArrayBecomesStringField(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"company": ["Acme Corp"]}`))

	company, _ := node.Property("company")
	if company.Type != FieldTypeString || company.Default != "Acme Corp" {
		t.Fatalf("expected string field with default Acme Corp, got %s %v", company.Type, company.Default)
	}
}

func TestBuild_ArrayItemsFromFirstElement(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"dependents": [{"name": "Ada", "age": 7}, {"name": "Sam"}]}`))

	deps, _ := node.Property("dependents")
	if deps.Type != FieldTypeArray || deps.Items == nil {
		t.Fatalf("expected array node with items, got %s", deps.Type)
	}
	if deps.Items.Type != FieldTypeObject {
		t.Fatalf("expected object items, got %s", deps.Items.Type)
	}
	age, ok := deps.Items.Property("age")
	if !ok || age.Type != FieldTypeNumber {
		t.Fatalf("expected items derived from the first element")
	}
}

func TestBuild_EmptyArrayGetsStringItems(t *testing.T) {
	b := New(Options{})
	node := b.Build(decode(t, `{"tags": []}`))

	tags, _ := node.Property("tags")
	if tags.Type != FieldTypeArray || tags.Items == nil {
		t.Fatalf("expected array node with items")
	}
	if tags.Items.Type != FieldTypeString {
		t.Fatalf("expected string items for empty array, got %s", tags.Items.Type)
	}
}

func TestBuild_CustomLabeler(t *testing.T) {
	b := New(Options{Labeler: func(key string) string { return "[" + key + "]" }})
	node := b.Build(decode(t, `{"name": "x"}`))

	field, _ := node.Property("name")
	if field.Title != "[name]" {
		t.Fatalf("expected custom label, got %q", field.Title)
	}
}
