package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// DecodeModelOutput recovers a JSON value from a model reply. Replies arrive
// in three shapes: a bare JSON object, an object inside a markdown code
// fence, or free text. Free text is wrapped under a "rawResponse" key so the
// caller still receives a tree it can render.
func DecodeModelOutput(raw string) (jsonval.Value, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return jsonval.Value{}, fmt.Errorf("extract: model reply is empty")
	}

	if strings.HasPrefix(trimmed, "{") {
		value, err := jsonval.Decode([]byte(trimmed))
		if err != nil {
			return jsonval.Value{}, fmt.Errorf("extract: model reply is not valid JSON: %w", err)
		}
		return value, nil
	}

	if match := fencedJSONPattern.FindStringSubmatch(trimmed); match != nil {
		value, err := jsonval.Decode([]byte(match[1]))
		if err != nil {
			return jsonval.Value{}, fmt.Errorf("extract: fenced JSON block is not valid: %w", err)
		}
		return value, nil
	}

	return jsonval.Object(jsonval.Member{
		Key:   "rawResponse",
		Value: jsonval.String(trimmed),
	}), nil
}
