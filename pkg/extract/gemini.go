package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the hosted-model extraction client.
type GeminiConfig struct {
	// APIKey authenticates against the generative language API. Required.
	APIKey string `json:"-" yaml:"-"`

	// Model selects the model identifier (default: gemini-2.5-flash).
	Model string `json:"model" yaml:"model"`

	// Endpoint overrides the API base URL, mainly for tests.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Prompt overrides the built-in extraction instructions.
	Prompt string `json:"prompt,omitempty" yaml:"prompt,omitempty"`

	// Timeout bounds a single model call (default: 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// HTTPClient lets callers inject a transport. Defaults to a client with
	// the configured timeout.
	HTTPClient *http.Client `json:"-" yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *GeminiConfig) defaults() {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.Endpoint == "" {
		c.Endpoint = defaultGeminiEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// GeminiExtractor calls the hosted model's generateContent endpoint and
// decodes the reply into an extraction tree.
type GeminiExtractor struct {
	cfg GeminiConfig
}

// NewGemini creates a GeminiExtractor with the given configuration.
func NewGemini(cfg GeminiConfig) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("extract: gemini api key is required")
	}
	cfg.defaults()
	return &GeminiExtractor{cfg: cfg}, nil
}

var _ Extractor = (*GeminiExtractor)(nil)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Extract sends the recognised text to the model and returns the extracted,
// sanitised JSON tree.
func (g *GeminiExtractor) Extract(ctx context.Context, text string) (jsonval.Value, error) {
	prompt := BuildPrompt(text, g.cfg.Prompt)
	g.cfg.Logger.Debug("calling extraction model", "model", g.cfg.Model, "prompt_chars", len(prompt))

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("extract: encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.cfg.Endpoint, url.PathEscape(g.cfg.Model), url.QueryEscape(g.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("extract: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("extract: model call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return jsonval.Value{}, fmt.Errorf("extract: read reply: %w", err)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return jsonval.Value{}, fmt.Errorf("extract: decode reply: %w", err)
	}
	if decoded.Error != nil {
		return jsonval.Value{}, fmt.Errorf("extract: model error: %s", decoded.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return jsonval.Value{}, fmt.Errorf("extract: model call returned status %d", resp.StatusCode)
	}

	reply := collectReplyText(decoded)
	value, err := DecodeModelOutput(reply)
	if err != nil {
		return jsonval.Value{}, err
	}
	return SanitizeStrings(value), nil
}

func collectReplyText(resp geminiResponse) string {
	var out bytes.Buffer
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			out.WriteString(part.Text)
		}
	}
	return out.String()
}
