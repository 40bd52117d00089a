package document

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Text(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Name:   Jane\n\nDoe\t ", "Name: Jane Doe"},
		{"single", "single"},
		{"\n\t  \n", ""},
		{"a b", "a b"},
	}
	for _, tc := range cases {
		if got := CleanText(tc.in); got != tc.want {
			t.Fatalf("CleanText(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestInspect_RejectsNonPDFExtension(t *testing.T) {
	in := NewIntake(Config{})
	_, err := in.Inspect("upload.txt")
	if err == nil || !strings.Contains(err.Error(), "only PDF files") {
		t.Fatalf("expected extension rejection, got %v", err)
	}
}

func TestInspect_RejectsMissingFile(t *testing.T) {
	in := NewIntake(Config{})
	if _, err := in.Inspect(t.TempDir() + "/missing.pdf"); err == nil {
		t.Fatalf("expected stat error for missing file")
	}
}

func TestText_CleansExtractorOutput(t *testing.T) {
	in := NewIntake(Config{Extractor: stubExtractor{text: "  Name:\n  Jane   Doe  "}})
	got, err := in.Text(context.Background(), "form.pdf")
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if got != "Name: Jane Doe" {
		t.Fatalf("expected cleaned text, got %q", got)
	}
}

func TestText_ShortOutputReportsErrNoText(t *testing.T) {
	in := NewIntake(Config{Extractor: stubExtractor{text: "  a b  "}})
	_, err := in.Text(context.Background(), "form.pdf")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestText_WrapsExtractorErrors(t *testing.T) {
	boom := errors.New("scanner offline")
	in := NewIntake(Config{Extractor: stubExtractor{err: boom}})
	_, err := in.Text(context.Background(), "form.pdf")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped extractor error, got %v", err)
	}
}

func TestDecodePDFLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`paren \( inside`, "paren ( inside"},
		{`back\\slash`, `back\slash`},
		{`\101BC`, "ABC"},
		{`\12`, "\n"},
		{`trailing\`, `trailing\`},
	}
	for _, tc := range cases {
		if got := decodePDFLiteral([]byte(tc.in)); got != tc.want {
			t.Fatalf("decodePDFLiteral(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
