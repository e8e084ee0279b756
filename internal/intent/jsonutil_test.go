package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	type payload struct {
		TemplateID string  `json:"templateId"`
		Confidence float64 `json:"confidence"`
	}

	t.Run("bare object", func(t *testing.T) {
		var p payload
		err := extractJSONObject(`{"templateId": "note.create", "confidence": 0.9}`, &p)
		require.NoError(t, err)
		assert.Equal(t, "note.create", p.TemplateID)
		assert.Equal(t, 0.9, p.Confidence)
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		var p payload
		raw := "```json\n{\"templateId\": \"customer.list\", \"confidence\": 1}\n```"
		err := extractJSONObject(raw, &p)
		require.NoError(t, err)
		assert.Equal(t, "customer.list", p.TemplateID)
	})

	t.Run("surrounded by prose", func(t *testing.T) {
		var p payload
		raw := "Sure, here is the routing decision:\n{\"templateId\": \"opportunity.stage\", \"confidence\": 0.8}\nLet me know if that looks right."
		err := extractJSONObject(raw, &p)
		require.NoError(t, err)
		assert.Equal(t, "opportunity.stage", p.TemplateID)
	})

	t.Run("braces inside string values", func(t *testing.T) {
		var out map[string]interface{}
		err := extractJSONObject(`{"intent": "create {weird} customer", "confidence": 0.5}`, &out)
		require.NoError(t, err)
		assert.Equal(t, "create {weird} customer", out["intent"])
	})

	t.Run("escaped quotes inside strings", func(t *testing.T) {
		var out map[string]interface{}
		err := extractJSONObject(`{"intent": "note saying \"green\" for Acme"}`, &out)
		require.NoError(t, err)
		assert.Equal(t, `note saying "green" for Acme`, out["intent"])
	})

	t.Run("nested objects", func(t *testing.T) {
		var out map[string]interface{}
		err := extractJSONObject(`{"extractedData": {"customerName": "Acme", "tags": ["a", "b"]}}`, &out)
		require.NoError(t, err)
		data, ok := out["extractedData"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Acme", data["customerName"])
	})

	t.Run("no object at all", func(t *testing.T) {
		var out map[string]interface{}
		err := extractJSONObject("I cannot help with that.", &out)
		assert.Error(t, err)
	})

	t.Run("unbalanced braces", func(t *testing.T) {
		var out map[string]interface{}
		err := extractJSONObject(`{"intent": "truncated`, &out)
		assert.Error(t, err)
	})
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFence("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFence("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFence(`{"a": 1}`))
}
