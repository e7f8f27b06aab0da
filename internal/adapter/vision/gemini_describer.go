package vision

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"photoquiz/internal/domain"
	"photoquiz/internal/util"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Extraction wants ground truth, not variety.
const describeTemperature = 0.2

// describePrompt asks for the twelve-field grounded description. The
// sentinel values and the JSON-only rule are load-bearing: the synthesis
// prompt keys off "unknown brand" etc., and the parser expects bare JSON.
const describePrompt = `
Describe the main subject of the image in a simple, grounded, visual way.

GOALS:
- Works for ANY image (object, food, tech, animals, vehicles, packaging, clothing, furniture, scenes, etc.)
- Keep descriptions short (1-2 sentences).
- Only describe what is visually obvious.
- Allow brand/model guessing ONLY when clearly visible or iconic.
- Avoid hallucinating specifics.

RULES:
- If no clear brand/model/year is visible or iconic, use:
  "unknown brand", "unknown model", "unknown year".
- Context should be simple and visual (e.g., "on a table", "outdoors").
- Category_general should be a broad type (e.g., "food", "vehicle", "animal", "tool", "electronics", "furniture").
- Materials should include only the most obvious ones.

OUTPUT ONLY valid JSON with this structure:

{
  "description": "1-2 sentence simple description of the main subject.",
  "brand": "Visible or iconic brand, or 'unknown brand'.",
  "model": "Visible or iconic model, or 'unknown model'.",
  "year": "Visible year, rough era if truly obvious, or 'unknown year'.",
  "color": "Main visible colors.",
  "condition": "Basic visible condition.",
  "style": "Simple style descriptor.",
  "category_general": "Broad category like 'food', 'vehicle', 'tool', 'electronics', etc.",
  "material": "Main visible materials.",
  "context": "Short visual context like 'on a table', 'in a kitchen', 'outdoors'.",
  "size": "Simple size descriptor like 'small', 'medium', 'large'.",
  "notable_features": "Key features that stand out visually."
}

No markdown. No commentary. JSON only.
`

var errNoChoices = errors.New("backend returned no content choices")

// GeminiDescriber implements domain.ImageDescriber on a vision-capable
// langchaingo model (Gemini in production).
type GeminiDescriber struct {
	model   llms.Model
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiDescriber creates a new describer. A zero timeout means the
// caller's context governs the call on its own.
func NewGeminiDescriber(model llms.Model, timeout time.Duration, logger *zap.Logger) domain.ImageDescriber {
	return &GeminiDescriber{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Describe sends the image plus the fixed extraction prompt to the vision
// backend and parses the response. Backend failure is an upstream error;
// unparsable text is not an error and degrades to a description-only map.
func (d *GeminiDescriber) Describe(ctx context.Context, image domain.ImageInput) (domain.ObjectDescription, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(image.MIMEType, image.Data),
				llms.TextPart(describePrompt),
			},
		},
	}

	resp, err := d.model.GenerateContent(ctx, messages, llms.WithTemperature(describeTemperature))
	if err != nil {
		return nil, domain.NewUpstreamError("description extraction", err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewUpstreamError("description extraction", errNoChoices)
	}

	raw := resp.Choices[0].Content
	cleaned := util.StripFences(raw)

	var description domain.ObjectDescription
	if err := json.Unmarshal([]byte(cleaned), &description); err != nil || len(description) == 0 {
		d.logger.Warn("Vision response was not structured JSON, falling back to raw description",
			zap.Error(err),
			zap.Int("response_length", len(raw)))
		return domain.FallbackDescription(raw), nil
	}

	d.logger.Debug("Parsed structured object description",
		zap.Int("field_count", len(description)))
	return description, nil
}

var _ domain.ImageDescriber = (*GeminiDescriber)(nil)
