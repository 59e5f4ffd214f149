package llm

import (
	"context"
	"fmt"
	"math"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// zeroTemperature is sent instead of 0, which go-openai drops from the
// request body (omitempty) and the API then reads as its default.
const zeroTemperature = math.SmallestNonzeroFloat32

// Converter asks a chat model to convert a whole workflow in one request.
type Converter struct {
	client ChatClient
	model  string
	settings
}

// NewConverter creates a Converter sending requests for model through client.
func NewConverter(client ChatClient, model string, opts ...Option) *Converter {
	return &Converter{client: client, model: model, settings: newSettings(opts)}
}

// Convert reads the workflow JSON at path and returns the model's SQL, or ""
// when the model returns no choice.
func (c *Converter) Convert(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading workflow: %w", err)
	}

	messages, err := BuildPrompt(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	c.logger.Debug("requesting chat completion", zap.String("model", c.model), zap.String("path", path))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: zeroTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	c.logger.Debug("chat completion done",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))

	return firstContent(resp), nil
}
