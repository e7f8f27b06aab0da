package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"photoquiz/internal/domain"
	"photoquiz/internal/util"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Fixed and moderate: enough randomness for option and phrasing variety
// across repeated calls on the same image, low enough to hold the contract.
const synthesisTemperature = 0.8

const systemPrompt = "You are a precise but friendly quiz generator. Always reply with valid JSON only."

// contractPrompt is the full content contract for one quiz. The structure
// is strict on purpose: the first option carries the correct answer, hints
// and distractors scale with difficulty, and the category must shape the
// insight without appearing in the wording.
const contractPrompt = `
You are a professional quiz creator for a production mobile app.

You are given:
1. A structured object description generated from the actual image (this is ground truth).
2. A selected Category.
3. A selected Difficulty level.

Your job: Create ONE high-quality quiz tied directly to the object in the image.

============================================================
IMAGE BINDING RULES (STRICT)
============================================================
- The question MUST be about the exact object described.
- If a brand or model is identified:
    - Background MUST reference it.
    - The question MUST be about something meaningfully tied to that brand/model's
      design, engineering, history, surprising facts, or cultural significance.
- DO NOT produce simple guess-who, guess-what, or name-based questions
  (for example, "Who is this shoe named after?") for Hard or Very Hard.
- Only if BOTH brand AND model are unknown may the question be based on a
  category-level topic instead of a specific product line.

============================================================
CATEGORY NAME BAN
============================================================
The question MUST NOT include the category name in the text:
- Do NOT use words like: "fun fact", "history", "historically", "record", "statistical record", or similar.
- The category should influence the *type of insight*, NOT appear as wording.

============================================================
BACKGROUND REQUIREMENTS
============================================================
- Start with 1-2 sentences of background.
- Background MUST:
  - Reference specific visual traits in the object description
    (color, materials, condition, shape, logos, text on the object, etc.).
  - Reference the brand/model if known and not marked as unknown.
  - Naturally lead into the question in a smooth, story-like way.
- No filler. No generic "sneakers are popular" trivia if details about the specific object exist.

============================================================
CATEGORY INTERPRETATION RULES
============================================================
General
-> Any trivia question. Can be a combination of other categories or anything about the object/thing.

History
-> Origins, evolution, milestones, or development of THIS brand/model/type.

Fun Fact
-> Unexpected, quirky, surprising, or lesser-known insights about THIS brand/model/type.

Records/Statistics
-> Achievements, breakthroughs, notable comparisons, firsts, or extremes tied to THIS
   brand/model/type.

============================================================
DIFFICULTY SYSTEM (EXTREMELY STRICT)
============================================================

-------------------
EASY
-------------------
- Question: straightforward; can be answered using the background alone.
- Distractors: Plausible but clearly weaker or less fitting than the correct answer.
- No deep knowledge required.

-------------------
MEDIUM
-------------------
- Question: requires combining background clues with general knowledge.
- Distractors: Plausible alternatives that share clear similarities with the correct answer.
- No specialist-level knowledge needed, but not answerable by random guessing.

-------------------
HARD
-------------------
- Question: nuanced and tied to deeper design, engineering, or historical details
  of the brand/model/type or its collaboration context.
- Question MUST NOT be something visible directly in the image (logo text, color, etc.).
- Avoid simple "who is this named after?" style questions.
- Distractors: Very close in theme and details; none can be obviously wrong.
- Must require knowledgeable reasoning, careful reading of the background, or
  real-world context beyond the obvious.

-------------------
VERY HARD
-------------------
- Question: feels expert-level and subtle.
- Must involve deeper design reasoning, innovation history, niche engineering details,
  or conceptual product lineage decisions related to THIS brand/model/type.
- MUST NOT be directly answerable from the image alone.
- Avoid superficial or widely known facts (e.g., "which athlete?" if the name is in the product).
- Distractors: Nearly indistinguishable without strong domain knowledge.
- Only highly knowledgeable users should be confident.

============================================================
HINT RULES (NON-NEGOTIABLE)
============================================================
The hint MUST:
- NOT contain any keywords from the correct answer.
- NOT mention brand names, model names, athlete names, product-line names, or dates.
- NOT reveal the category.
- MUST scale with difficulty:

EASY -> a clear but not giveaway nudge.
MEDIUM -> indirect but still practically helpful.
HARD -> abstract or conceptual, no direct identifiers.
VERY HARD -> one short sentence that is cryptic, metaphorical, or philosophical.

Examples of valid Very Hard hints:
- "The shift happens before the form takes shape."
- "Consider the intention behind the refinement."
- "Look to what is added by removing."

============================================================
DISTRACTOR RULES (IMPORTANT)
============================================================
ALL wrong answers MUST:
- Be plausible and of the same *type* as the correct answer
  (if the correct answer is a fun-fact choice, all options must be fun-fact choices;
   if it's a collaboration detail, all options must be collaboration details, etc.).
- Scale with difficulty:
  - EASY -> somewhat believable but clearly weaker.
  - MEDIUM -> closely related and reasonable alternatives.
  - HARD -> subtle variations on the same theme, hard to eliminate without nuance.
  - VERY HARD -> conceptual differences that only experts or careful readers can parse.
- Never be ridiculous or obviously false.

============================================================
OUTPUT FORMAT
============================================================
Return ONLY valid JSON in this structure:

{
  "question": "Full text: background + question.",
  "options": [
    "Correct answer FIRST",
    "Plausible wrong answer",
    "Plausible wrong answer",
    "Plausible wrong answer"
  ],
  "hint": "Difficulty-scaled hint.",
  "explanation": "Short explanation of why the correct answer is correct.",
  "title": "Very short title for object/question"
}

============================================================
INPUTS
============================================================
Object description (ground truth): %s
Category: %s
Difficulty: %s

Generate the quiz now.
`

var errNoChoices = errors.New("backend returned no content choices")

// OpenAIQuizSynthesizer implements domain.QuizSynthesizer on a langchaingo
// chat model (GPT-4o in production).
type OpenAIQuizSynthesizer struct {
	model   llms.Model
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIQuizSynthesizer creates a new synthesizer. A zero timeout means
// the caller's context governs the call on its own.
func NewOpenAIQuizSynthesizer(model llms.Model, timeout time.Duration, logger *zap.Logger) domain.QuizSynthesizer {
	return &OpenAIQuizSynthesizer{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Synthesize embeds the serialized description and the validated parameters
// into the content contract and issues a single generation call. Unlike
// description extraction, a parse failure here is fatal: there is no safe
// structural fallback for a quiz.
func (s *OpenAIQuizSynthesizer) Synthesize(ctx context.Context, description domain.ObjectDescription, difficulty domain.Difficulty, category domain.Category) (*domain.RawQuizDraft, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	serialized, err := json.Marshal(description)
	if err != nil {
		return nil, domain.NewInternalError("Failed to serialize object description", err)
	}

	prompt := fmt.Sprintf(contractPrompt, serialized, category, difficulty)
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := s.model.GenerateContent(ctx, messages, llms.WithTemperature(synthesisTemperature))
	if err != nil {
		return nil, domain.NewUpstreamError("quiz synthesis", err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewUpstreamError("quiz synthesis", errNoChoices)
	}

	raw := resp.Choices[0].Content
	cleaned := util.StripFences(raw)

	var draft domain.RawQuizDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		s.logger.Error("Synthesis response was not valid JSON",
			zap.Error(err),
			zap.Int("response_length", len(raw)))
		return nil, domain.NewSynthesisError(err)
	}

	s.logger.Debug("Parsed raw quiz draft",
		zap.String("title", draft.Title),
		zap.Int("option_count", len(draft.Options)))
	return &draft, nil
}

var _ domain.QuizSynthesizer = (*OpenAIQuizSynthesizer)(nil)
