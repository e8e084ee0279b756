package intent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lumen-crm/assistant-api/internal/llm"
	"go.uber.org/zap"
)

// Composer produces the short confirmation message shown to the user before
// an action is executed. Composition must never block on the oracle: when
// generation fails, a deterministic template takes over.
type Composer struct {
	generator llm.Generator
	logger    *zap.Logger
}

// NewComposer creates a Composer.
func NewComposer(generator llm.Generator, logger *zap.Logger) *Composer {
	return &Composer{generator: generator, logger: logger}
}

// Compose returns a natural-language summary of the extraction inviting the
// user to confirm or reject, calling out any warnings.
func (c *Composer) Compose(ctx context.Context, extraction *Extraction) string {
	text, err := c.generator.Generate(ctx, c.buildPrompt(extraction))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			c.logger.Warn("Confirmation generation failed, using fallback", zap.Error(err))
		}
		return FallbackConfirmation(extraction)
	}
	return strings.TrimSpace(text)
}

// FallbackConfirmation builds a deterministic confirmation from the intent
// summary and extracted data. Fields are sorted so the output is stable.
func FallbackConfirmation(extraction *Extraction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I understood: %s.", extraction.Intent)

	if len(extraction.ExtractedData) > 0 {
		keys := make([]string, 0, len(extraction.ExtractedData))
		for k := range extraction.ExtractedData {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" Details: ")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = %v", k, extraction.ExtractedData[k])
		}
		b.WriteString(".")
	}

	for _, w := range extraction.Warnings {
		fmt.Fprintf(&b, " Note: %s.", strings.TrimSuffix(w, "."))
	}

	b.WriteString(" Should I go ahead?")
	return b.String()
}

func (c *Composer) buildPrompt(extraction *Extraction) string {
	var b strings.Builder
	b.WriteString("Write one or two short sentences confirming a CRM action back to the user, ending with a question inviting them to confirm.\n\n")
	fmt.Fprintf(&b, "Intent: %s\n", extraction.Intent)
	if len(extraction.ExtractedData) > 0 {
		b.WriteString("Data:\n")
		for k, v := range extraction.ExtractedData {
			fmt.Fprintf(&b, "- %s: %v\n", k, v)
		}
	}
	if len(extraction.Warnings) > 0 {
		b.WriteString("Mention these caveats:\n")
		for _, w := range extraction.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
