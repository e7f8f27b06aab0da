package domain

import "context"

// ImageDescriber turns an image into a structured ground-truth description
// via a vision-capable generation backend. Backend failures surface as
// upstream errors; unparsable-but-present text degrades to a fallback
// description and never fails.
type ImageDescriber interface {
	Describe(ctx context.Context, image ImageInput) (ObjectDescription, error)
}

// QuizSynthesizer turns a description plus the validated parameters into a
// raw quiz draft via a text generation backend. An unparsable response is
// fatal: there is no safe default quiz.
type QuizSynthesizer interface {
	Synthesize(ctx context.Context, description ObjectDescription, difficulty Difficulty, category Category) (*RawQuizDraft, error)
}

// ArtifactSink persists intermediate and final pipeline artifacts for
// debugging and audit. Best effort: failures must never fail the request.
type ArtifactSink interface {
	Persist(ctx context.Context, name string, artifact interface{}) error
}
