package nlparse

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.0-flash"

// GeminiParser is the concrete Parser backed by Gemini.
type GeminiParser struct {
	model string
}

// NewGeminiParser creates a GeminiParser for the given model name; empty
// falls back to DefaultModelName.
func NewGeminiParser(model string) *GeminiParser {
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiParser{model: model}
}

// Parse implements Parser.
func (p *GeminiParser) Parse(ctx context.Context, text string, refs Context) (*Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("Parse: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(text, refs)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Parse: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("Parse: empty response from model")
	}

	clean := cleanModelJSON(rawText)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &obj); err != nil {
		return nil, fmt.Errorf("Parse: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}

	result, err := resultFromRaw(obj)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return result, nil
}
