package form

import "testing"

func TestTitleize(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"applicantDetails", "Applicant Details"},
		{"name", "Name"},
		{"fullName", "Full Name"},
		{"contactPhoneNumber", "Contact Phone Number"},
		{"zipCode", "Zip Code"},
		{"", ""},
		{"a", "A"},
		{"ABC", "A B C"},
		{"already Spaced", "Already  Spaced"},
	}
	for _, tc := range cases {
		if got := Titleize(tc.key); got != tc.want {
			t.Fatalf("Titleize(%q): expected %q, got %q", tc.key, tc.want, got)
		}
	}
}
