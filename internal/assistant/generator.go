package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator abstracts the generative-model call so the assistant can be
// tested without network access.
type Generator interface {
	// Generate sends one prompt and returns the model's raw text reply.
	Generate(ctx context.Context, apiKey, model, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API through google.golang.org/genai,
// requesting a JSON-typed response body. One request per invocation, no
// retries.
type GeminiGenerator struct{}

// Generate implements Generator.
func (GeminiGenerator) Generate(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("Generate: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Generate: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("Generate: empty response from model")
	}

	return text, nil
}
