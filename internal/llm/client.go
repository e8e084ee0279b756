// Package llm wraps the external text-generation service behind a single
// Generator interface so the command engine can be tested with a
// deterministic stub.
package llm

import (
	"context"
	"fmt"

	"github.com/lumen-crm/assistant-api/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Generator produces text for a prompt. It is the only contract the intent
// engine has with the language model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client is the OpenAI-backed Generator used in production.
// It is constructed explicitly and injected; there is no package-level state.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	timeout     int
	logger      *zap.Logger
}

// NewClient creates a Client from configuration.
// It fails fast when the API key is absent rather than deferring the error
// to the first request.
func NewClient(cfg *config.LLMConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required (set OPENAI_API_KEY or the OPENAI-API-KEY vault secret)")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger.Info("LLM client initialized",
		zap.String("model", cfg.Model),
		zap.Bool("custom_base_url", cfg.BaseURL != ""),
	)

	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.RequestTimeout,
		logger:      logger,
	}, nil
}

// Generate sends a single-prompt chat completion and returns the text of the
// first choice.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
