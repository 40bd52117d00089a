package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiReply(t *testing.T, text string) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return payload
}

func TestNewGemini_RequiresAPIKey(t *testing.T) {
	if _, err := NewGemini(GeminiConfig{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestGeminiExtract(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write(geminiReply(t, "```json\n{\"name\": \"<b>Jane</b>\"}\n```"))
	}))
	defer server.Close()

	g, err := NewGemini(GeminiConfig{APIKey: "test-key", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	value, err := g.Extract(context.Background(), "Name: Jane")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected api key %q", gotKey)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Name: Jane") {
		t.Fatalf("expected document text in prompt")
	}

	name, ok := value.Member("name")
	if !ok || name.Str() != "Jane" {
		t.Fatalf("expected sanitised name Jane, got %v", value)
	}
}

func TestGeminiExtract_SurfacesModelError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
	}))
	defer server.Close()

	g, err := NewGemini(GeminiConfig{APIKey: "bad", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	_, err = g.Extract(context.Background(), "text")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected model error surfaced, got %v", err)
	}
}

func TestGeminiExtract_FreeTextFallsBackToRawResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(geminiReply(t, "I could not find any form fields."))
	}))
	defer server.Close()

	g, err := NewGemini(GeminiConfig{APIKey: "k", Endpoint: server.URL})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	value, err := g.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	raw, ok := value.Member("rawResponse")
	if !ok || raw.Str() != "I could not find any form fields." {
		t.Fatalf("expected rawResponse fallback, got %v", value)
	}
}
