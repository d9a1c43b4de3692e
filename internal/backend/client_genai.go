package backend

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"hiredesk/internal/logging"
)

// GenAIClient implements Client for Google's Gemini API via the genai SDK.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a new Gemini-backed client.
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

// Complete sends a prompt and returns the completion.
func (c *GenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt)
}

// CompleteWithSystem sends a prompt with a system instruction.
func (c *GenAIClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	timer := logging.StartTimer(logging.CategoryAPI, "GenAIClient.CompleteWithSystem")
	defer timer.Stop()

	var cfg *genai.GenerateContentConfig
	if systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("genai request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("genai returned an empty response")
	}
	return text, nil
}
