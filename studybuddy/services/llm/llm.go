package llm

import (
	"context"

	"studybuddy/studybuddy/utils/logging"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Generator is the opaque text-generation collaborator. Callers own the
// fallback behavior when it fails.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	defer logging.LogDuration(ctx, "llm_generate")()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		if logging.ErrorLogger != nil {
			logging.ErrorLogger.Error("llm generation failed", zap.Error(err))
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
