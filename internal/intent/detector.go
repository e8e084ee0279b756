package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumen-crm/assistant-api/internal/llm"
	"go.uber.org/zap"
)

// Detector selects the catalog template that best matches a piece of user
// text. Detection is a routing hint, never a hard dependency: any oracle
// failure or unrecognized answer yields "no match" instead of an error.
type Detector struct {
	catalog   *Catalog
	generator llm.Generator
	logger    *zap.Logger
}

// NewDetector creates a Detector over the given catalog.
func NewDetector(catalog *Catalog, generator llm.Generator, logger *zap.Logger) *Detector {
	return &Detector{
		catalog:   catalog,
		generator: generator,
		logger:    logger,
	}
}

type detectionPayload struct {
	TemplateID string  `json:"templateId"`
	Confidence float64 `json:"confidence"`
}

// Detect returns the best-matching template and a confidence score, or
// (nil, 0) when nothing matches. It never returns an error.
func (d *Detector) Detect(ctx context.Context, text string) (*CommandTemplate, float64) {
	if d.catalog.Len() == 0 {
		return nil, 0
	}

	raw, err := d.generator.Generate(ctx, d.buildPrompt(text))
	if err != nil {
		d.logger.Warn("Template detection failed, treating as no match", zap.Error(err))
		return nil, 0
	}

	var payload detectionPayload
	if err := extractJSONObject(raw, &payload); err != nil {
		d.logger.Warn("Template detection returned unparsable output", zap.Error(err))
		return nil, 0
	}

	id := strings.TrimSpace(payload.TemplateID)
	if id == "" || strings.EqualFold(id, "none") {
		return nil, 0
	}

	tmpl, ok := d.catalog.ByID(id)
	if !ok {
		d.logger.Warn("Detection returned unknown template id", zap.String("template_id", id))
		return nil, 0
	}

	confidence := clampConfidence(payload.Confidence)
	d.logger.Debug("Template detected",
		zap.String("template_id", tmpl.ID),
		zap.Float64("confidence", confidence),
	)
	return &tmpl, confidence
}

func (d *Detector) buildPrompt(text string) string {
	var b strings.Builder
	b.WriteString("You route CRM assistant commands. Pick the single template that best matches the user's request.\n\n")
	b.WriteString("Templates:\n")
	for _, t := range d.catalog.Templates() {
		fmt.Fprintf(&b, "- id: %s | %s", t.ID, t.Description)
		if len(t.Examples) > 0 {
			fmt.Fprintf(&b, " | e.g. %q", t.Examples[0])
		}
		b.WriteString("\n")
	}
	b.WriteString("\nUser request:\n")
	b.WriteString(text)
	b.WriteString("\n\nRespond with exactly one JSON object: {\"templateId\": \"<id or none>\", \"confidence\": <0.0-1.0>}")
	return b.String()
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
