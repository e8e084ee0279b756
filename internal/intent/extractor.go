package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/llm"
	"go.uber.org/zap"
)

// ErrMalformedExtraction indicates the oracle's answer could not be parsed
// into a usable extraction. Callers surface this to the user as "could not
// understand that" instead of proceeding with partial data.
var ErrMalformedExtraction = errors.New("extraction output is malformed")

const dateLayout = "2006-01-02"

// acceptedDateLayouts are the forms the oracle has been seen producing
// despite being told to use ISO dates.
var acceptedDateLayouts = []string{
	dateLayout,
	"2006-01-02T15:04:05Z07:00",
	"02.01.2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// dateFields are extraction fields holding calendar dates that must be
// normalized to a single unambiguous form.
var dateFields = map[string]bool{
	"noteDate":          true,
	"expectedCloseDate": true,
	"actualCloseDate":   true,
}

// Extractor turns raw user text into a structured Extraction, optionally
// narrowed by a matched template and biased towards known entity names.
type Extractor struct {
	generator llm.Generator
	logger    *zap.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(generator llm.Generator, logger *zap.Logger) *Extractor {
	return &Extractor{generator: generator, logger: logger}
}

type extractionPayload struct {
	Intent        string                 `json:"intent"`
	Confidence    float64                `json:"confidence"`
	ExtractedData map[string]interface{} `json:"extractedData"`
	Warnings      []string               `json:"warnings"`
}

// Extract interprets text against the optional template. Known entity
// display names bias proper-noun resolution towards existing records.
// Oracle failures and unparsable output both return ErrMalformedExtraction.
func (e *Extractor) Extract(ctx context.Context, text string, tmpl *CommandTemplate, knownNames []string) (*Extraction, error) {
	raw, err := e.generator.Generate(ctx, e.buildPrompt(text, tmpl, knownNames))
	if err != nil {
		e.logger.Warn("Extraction oracle call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}

	var payload extractionPayload
	if err := extractJSONObject(raw, &payload); err != nil {
		e.logger.Warn("Extraction output unparsable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}
	if strings.TrimSpace(payload.Intent) == "" {
		return nil, fmt.Errorf("%w: missing intent summary", ErrMalformedExtraction)
	}

	result := &Extraction{
		Intent:          payload.Intent,
		Confidence:      clampConfidence(payload.Confidence),
		ExtractedData:   payload.ExtractedData,
		MatchedTemplate: tmpl,
		Warnings:        payload.Warnings,
	}
	if tmpl != nil {
		result.TemplateID = tmpl.ID
	}
	if result.ExtractedData == nil {
		result.ExtractedData = map[string]interface{}{}
	}

	e.normalize(result)
	return result, nil
}

// normalize rewrites date fields into the canonical calendar form and
// collapses the three-valued confidence label onto its closed set. Values
// that cannot be normalized are dropped with a warning rather than guessed.
func (e *Extractor) normalize(result *Extraction) {
	for field, value := range result.ExtractedData {
		s, ok := value.(string)
		if !ok {
			continue
		}
		switch {
		case dateFields[field]:
			normalized, err := normalizeDate(s)
			if err != nil {
				delete(result.ExtractedData, field)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("could not interpret %q as a date for %s, ignoring it", s, field))
				continue
			}
			result.ExtractedData[field] = normalized
		case field == "confidence":
			label := domain.ConfidenceLevel(strings.ToLower(strings.TrimSpace(s)))
			if !label.IsValid() {
				delete(result.ExtractedData, field)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("confidence %q is not one of green, yellow or red, ignoring it", s))
				continue
			}
			result.ExtractedData[field] = string(label)
		}
	}
}

func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

func (e *Extractor) buildPrompt(text string, tmpl *CommandTemplate, knownNames []string) string {
	var b strings.Builder
	b.WriteString("Extract structured CRM command data from the user's request.\n\n")

	if tmpl != nil {
		fmt.Fprintf(&b, "The request is a %q command (%s %s).\n", tmpl.Title, tmpl.Operation, tmpl.Entity)
		fmt.Fprintf(&b, "Extract only these fields when present: %s.\n", strings.Join(tmpl.Fields, ", "))
	}
	if len(knownNames) > 0 {
		fmt.Fprintf(&b, "Known customer names, prefer exact matches from this list: %s.\n", strings.Join(knownNames, ", "))
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- Dates use YYYY-MM-DD.\n")
	b.WriteString("- A confidence assessment, if mentioned, is exactly one of: green, yellow, red.\n")
	b.WriteString("- Put anything ambiguous or unparsable into warnings instead of guessing.\n")
	b.WriteString("\nUser request:\n")
	b.WriteString(text)
	b.WriteString("\n\nRespond with exactly one JSON object: {\"intent\": \"<one-sentence summary>\", \"confidence\": <0.0-1.0>, \"extractedData\": {...}, \"warnings\": [...]}")
	return b.String()
}
