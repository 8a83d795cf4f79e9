package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GroqClient talks to Groq through its OpenAI-compatible chat endpoint.
type GroqClient struct {
	client openai.Client
	model  string
}

func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// One try per turn.
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &GroqClient{client: openai.NewClient(opts...), model: model}
}

func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		// No content field to read; hand back the raw response.
		return resp.RawJSON(), nil
	}
	return resp.Choices[0].Message.Content, nil
}
