package quizgen

import (
	"context"
	"errors"
	"testing"

	"photoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

type fakeModel struct {
	response string
	err      error

	gotMessages []llms.MessageContent
	gotOpts     llms.CallOptions
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.gotMessages = messages
	for _, opt := range options {
		opt(&m.gotOpts)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

const draftJSON = `{
	"question": "This worn red sneaker carries a swoosh on its side. Which material innovation defined its midsole?",
	"options": ["Encapsulated air unit", "Foam wedge", "Gel pocket", "Coiled spring"],
	"hint": "Think about what you cannot see but can feel.",
	"explanation": "The encapsulated air unit was the defining midsole innovation.",
	"title": "Red Sneaker"
}`

func testDescription() domain.ObjectDescription {
	return domain.ObjectDescription{
		"description": "a worn red sneaker on a wooden table",
		"brand":       "unknown brand",
	}
}

func TestSynthesize_ParsesDraft(t *testing.T) {
	model := &fakeModel{response: draftJSON}
	synth := NewOpenAIQuizSynthesizer(model, 0, zap.NewNop())

	draft, err := synth.Synthesize(context.Background(), testDescription(), domain.DifficultyMedium, domain.CategoryHistory)
	require.NoError(t, err)
	require.Len(t, draft.Options, 4)
	assert.Equal(t, "Encapsulated air unit", draft.Options[0])
	assert.Equal(t, "Red Sneaker", draft.Title)
	assert.NotEmpty(t, draft.Hint)
	assert.NotEmpty(t, draft.Explanation)
}

func TestSynthesize_StripsFence(t *testing.T) {
	model := &fakeModel{response: "```json\n" + draftJSON + "\n```"}
	synth := NewOpenAIQuizSynthesizer(model, 0, zap.NewNop())

	draft, err := synth.Synthesize(context.Background(), testDescription(), domain.DifficultyEasy, domain.CategoryGeneral)
	require.NoError(t, err)
	assert.Equal(t, "Encapsulated air unit", draft.Options[0])
}

func TestSynthesize_UnparsableResponseIsFatal(t *testing.T) {
	model := &fakeModel{response: "Sorry, I cannot produce a quiz for this image."}
	synth := NewOpenAIQuizSynthesizer(model, 0, zap.NewNop())

	_, err := synth.Synthesize(context.Background(), testDescription(), domain.DifficultyHard, domain.CategoryFunFact)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSynthesis, domainErr.Code)
}

func TestSynthesize_BackendFailureIsUpstreamError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	synth := NewOpenAIQuizSynthesizer(model, 0, zap.NewNop())

	_, err := synth.Synthesize(context.Background(), testDescription(), domain.DifficultyHard, domain.CategoryFunFact)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUpstream, domainErr.Code)
}

func TestSynthesize_PromptEmbedsInputs(t *testing.T) {
	model := &fakeModel{response: draftJSON}
	synth := NewOpenAIQuizSynthesizer(model, 0, zap.NewNop())

	_, err := synth.Synthesize(context.Background(), testDescription(), domain.DifficultyVeryHard, domain.CategoryRecords)
	require.NoError(t, err)

	require.Len(t, model.gotMessages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.gotMessages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.gotMessages[1].Role)

	human, ok := model.gotMessages[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, human.Text, "a worn red sneaker on a wooden table")
	assert.Contains(t, human.Text, "Category: Records/Statistics")
	assert.Contains(t, human.Text, "Difficulty: Very Hard")
	assert.Contains(t, human.Text, "Correct answer FIRST")

	assert.InDelta(t, synthesisTemperature, model.gotOpts.Temperature, 1e-9)
}
