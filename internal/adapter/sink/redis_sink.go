package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"photoquiz/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "photoquiz:artifact"

// RedisSink stores each artifact as a JSON string under a TTL'd key, so
// debugging state expires on its own instead of accumulating.
type RedisSink struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSink expects a connected *redis.Client.
func NewRedisSink(client *redis.Client, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, ttl: ttl}
}

func (s *RedisSink) Persist(ctx context.Context, name string, artifact interface{}) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact %s: %w", name, err)
	}
	return s.client.Set(ctx, artifactKey(name), data, s.ttl).Err()
}

// artifactKey maps the request-scoped artifact name onto the usual
// colon-separated redis key layout.
func artifactKey(name string) string {
	return keyPrefix + ":" + strings.ReplaceAll(name, "/", ":")
}

var _ domain.ArtifactSink = (*RedisSink)(nil)
