package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGenerator is a canned llm.Generator for tests.
type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	return g.response, g.err
}

func TestDetector_Detect(t *testing.T) {
	catalog := BuiltinCatalog()

	t.Run("matches a known template", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "note.create", "confidence": 0.92}`}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, confidence := d.Detect(context.Background(), "add a note to Acme, green, send POC doc")
		require.NotNil(t, tmpl)
		assert.Equal(t, "note.create", tmpl.ID)
		assert.Equal(t, 0.92, confidence)
	})

	t.Run("explicit none is no match", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "none", "confidence": 0}`}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, confidence := d.Detect(context.Background(), "what's the weather like")
		assert.Nil(t, tmpl)
		assert.Zero(t, confidence)
	})

	t.Run("unknown template id is no match", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "invoice.create", "confidence": 0.9}`}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, _ := d.Detect(context.Background(), "create an invoice")
		assert.Nil(t, tmpl)
	})

	t.Run("oracle failure is no match, not an error", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("upstream timeout")}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, confidence := d.Detect(context.Background(), "add a note to Acme")
		assert.Nil(t, tmpl)
		assert.Zero(t, confidence)
	})

	t.Run("unparsable output is no match", func(t *testing.T) {
		gen := &stubGenerator{response: "I think you want to add a note."}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, _ := d.Detect(context.Background(), "add a note to Acme")
		assert.Nil(t, tmpl)
	})

	t.Run("confidence is clamped", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "customer.list", "confidence": 3.5}`}
		d := NewDetector(catalog, gen, zap.NewNop())

		tmpl, confidence := d.Detect(context.Background(), "show me all customers")
		require.NotNil(t, tmpl)
		assert.Equal(t, 1.0, confidence)
	})

	t.Run("empty catalog skips the oracle", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "customer.list", "confidence": 1}`}
		d := NewDetector(NewCatalog(nil), gen, zap.NewNop())

		tmpl, _ := d.Detect(context.Background(), "show me all customers")
		assert.Nil(t, tmpl)
		assert.Zero(t, gen.calls)
	})

	t.Run("prompt lists every template", func(t *testing.T) {
		gen := &stubGenerator{response: `{"templateId": "none"}`}
		d := NewDetector(catalog, gen, zap.NewNop())

		d.Detect(context.Background(), "hello")
		for _, tmpl := range catalog.Templates() {
			assert.Contains(t, gen.lastPrompt, tmpl.ID)
		}
	})
}
