package rules

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatsForKey(t *testing.T) {
	cases := []struct {
		key  string
		want []Format
	}{
		{"email", []Format{FormatEmail}},
		{"applicantEmail", []Format{FormatEmail}},
		{"phoneNumber", []Format{FormatPhone}},
		{"mobile", []Format{FormatPhone}},
		{"contactPerson", []Format{FormatPhone}},
		{"postalCode", []Format{FormatPostal}},
		{"zipCode", []Format{FormatPostal}},
		{"contactEmail", []Format{FormatEmail, FormatPhone}},
		{"mobilePhone", []Format{FormatPhone}},
		{"name", nil},
		{"PHONE", []Format{FormatPhone}},
	}
	for _, tc := range cases {
		got := FormatsForKey(tc.key)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("FormatsForKey(%q) mismatch (-want +got):\n%s", tc.key, diff)
		}
	}
}

func TestFormatEmail(t *testing.T) {
	valid := []string{"a@b.com", "jane.doe@example.co.uk", "x+y@sub.domain.org"}
	for _, v := range valid {
		if err := FormatEmail.Check(v); err != nil {
			t.Fatalf("expected %q to pass email check: %v", v, err)
		}
	}
	invalid := []string{"not-an-email", "a@b", "@b.com", "a b@c.com", "a@@b.com"}
	for _, v := range invalid {
		err := FormatEmail.Check(v)
		if err == nil {
			t.Fatalf("expected %q to fail email check", v)
		}
		if !strings.Contains(err.Error(), "email") {
			t.Fatalf("expected email in message, got %q", err.Error())
		}
	}
}

func TestFormatPhone(t *testing.T) {
	valid := []string{"08012345678", "+49 170 1234567", "(020) 7946 0958", "555-0102", "+1 (800) 555.0199", "+1 (555) 123-4567"}
	for _, v := range valid {
		if err := FormatPhone.Check(v); err != nil {
			t.Fatalf("expected %q to pass phone check: %v", v, err)
		}
	}
	invalid := []string{"abc", "call me", "++123", ""}
	for _, v := range invalid {
		if err := FormatPhone.Check(v); err == nil {
			t.Fatalf("expected %q to fail phone check", v)
		}
	}
}

func TestFormatPostal(t *testing.T) {
	valid := []string{"12345", "123456"}
	for _, v := range valid {
		if err := FormatPostal.Check(v); err != nil {
			t.Fatalf("expected %q to pass postal check: %v", v, err)
		}
	}
	invalid := []string{"1234", "1234567", "abcde", "12 345"}
	for _, v := range invalid {
		if err := FormatPostal.Check(v); err == nil {
			t.Fatalf("expected %q to fail postal check", v)
		}
	}
}
