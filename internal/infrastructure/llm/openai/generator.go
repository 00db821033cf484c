package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sttve/mail-classifier-ai/internal/core/domain"
)

const (
	DefaultModel       = openai.GPT3Dot5Turbo
	defaultTemperature = 0.7
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Generator produces suggested replies through the chat-completions API.
// It makes exactly one attempt per call; soft-degradation on failure is the
// caller's concern. The zero-credential form never touches the network.
type Generator struct {
	client *openai.Client
	model  string
}

func NewGenerator(cfg Config) *Generator {
	if cfg.APIKey == "" {
		return &Generator{}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (g *Generator) Generate(ctx context.Context, category domain.Category, originalText string) (string, error) {
	if g.client == nil {
		return "", domain.ErrGeneratorNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(category, originalText)},
		},
		MaxTokens:   maxTokensFor(category),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: response has no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
