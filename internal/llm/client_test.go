package llm_test

import (
	"testing"

	"github.com/lumen-crm/assistant-api/internal/config"
	"github.com/lumen-crm/assistant-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := llm.NewClient(&config.LLMConfig{Model: "gpt-4o-mini"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewClient_WithAPIKey(t *testing.T) {
	client, err := llm.NewClient(&config.LLMConfig{
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		BaseURL: "http://localhost:11434/v1",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, client)
}
