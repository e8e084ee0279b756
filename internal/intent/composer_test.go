package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestComposer_Compose(t *testing.T) {
	extraction := &Extraction{
		Intent:        "add a note to Acme",
		ExtractedData: map[string]interface{}{"customerName": "Acme", "notes": "went well"},
	}

	t.Run("uses generated text", func(t *testing.T) {
		gen := &stubGenerator{response: "  I'll add a note to Acme saying the call went well. Sound good?  "}
		c := NewComposer(gen, zap.NewNop())

		got := c.Compose(context.Background(), extraction)
		assert.Equal(t, "I'll add a note to Acme saying the call went well. Sound good?", got)
	})

	t.Run("falls back on generation error", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("rate limited")}
		c := NewComposer(gen, zap.NewNop())

		got := c.Compose(context.Background(), extraction)
		assert.Equal(t, FallbackConfirmation(extraction), got)
	})

	t.Run("falls back on blank output", func(t *testing.T) {
		gen := &stubGenerator{response: "   \n"}
		c := NewComposer(gen, zap.NewNop())

		got := c.Compose(context.Background(), extraction)
		assert.Equal(t, FallbackConfirmation(extraction), got)
	})
}

func TestFallbackConfirmation(t *testing.T) {
	t.Run("fields sorted for stable output", func(t *testing.T) {
		extraction := &Extraction{
			Intent: "create an opportunity for Acme",
			ExtractedData: map[string]interface{}{
				"name":           "Cloud migration",
				"customerName":   "Acme",
				"estimatedValue": 50000,
			},
		}

		got := FallbackConfirmation(extraction)
		assert.Equal(t,
			"I understood: create an opportunity for Acme. Details: customerName = Acme, estimatedValue = 50000, name = Cloud migration. Should I go ahead?",
			got)
	})

	t.Run("warnings are called out", func(t *testing.T) {
		extraction := &Extraction{
			Intent:   "add a note to Acme",
			Warnings: []string{`could not interpret "last spring" as a date for noteDate, ignoring it`},
		}

		got := FallbackConfirmation(extraction)
		assert.Contains(t, got, "Note: could not interpret")
		assert.Contains(t, got, "Should I go ahead?")
	})

	t.Run("no data, no details section", func(t *testing.T) {
		extraction := &Extraction{Intent: "list all customers"}
		assert.Equal(t, "I understood: list all customers. Should I go ahead?", FallbackConfirmation(extraction))
	})
}
