package sink

import (
	"context"

	"photoquiz/internal/domain"
)

// NoopSink discards all artifacts. Used when artifact persistence is
// disabled; the pipeline never notices the difference.
type NoopSink struct{}

func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (s *NoopSink) Persist(ctx context.Context, name string, artifact interface{}) error {
	return nil
}

var _ domain.ArtifactSink = (*NoopSink)(nil)
