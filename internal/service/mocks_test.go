package service

import (
	"context"

	"photoquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockImageDescriber ---
type MockImageDescriber struct {
	mock.Mock
}

func (m *MockImageDescriber) Describe(ctx context.Context, image domain.ImageInput) (domain.ObjectDescription, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ObjectDescription), args.Error(1)
}

// --- MockQuizSynthesizer ---
type MockQuizSynthesizer struct {
	mock.Mock
}

func (m *MockQuizSynthesizer) Synthesize(ctx context.Context, description domain.ObjectDescription, difficulty domain.Difficulty, category domain.Category) (*domain.RawQuizDraft, error) {
	args := m.Called(ctx, description, difficulty, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawQuizDraft), args.Error(1)
}

// --- MockArtifactSink ---
type MockArtifactSink struct {
	mock.Mock
}

func (m *MockArtifactSink) Persist(ctx context.Context, name string, artifact interface{}) error {
	args := m.Called(ctx, name, artifact)
	return args.Error(0)
}

// recordingSink collects persisted artifact names on a channel so tests
// can wait for the fire-and-forget writes to land.
type recordingSink struct {
	names chan string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{names: make(chan string, 16)}
}

func (s *recordingSink) Persist(ctx context.Context, name string, artifact interface{}) error {
	s.names <- name
	return nil
}
