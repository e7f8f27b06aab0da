package sink

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSink_Persist(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisSink(db, time.Hour)
	ctx := context.Background()

	artifact := map[string]string{"description": "a red sneaker"}
	payload, err := json.Marshal(artifact)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet("photoquiz:artifact:01ARZ3NDEKTSV4RRFFQ69G5FAV:description", payload, time.Hour).SetVal("OK")
		err := s.Persist(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV/description", artifact)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectSet("photoquiz:artifact:quiz", payload, time.Hour).SetErr(redisErr)
		err := s.Persist(ctx, "quiz", artifact)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArtifactKey(t *testing.T) {
	assert.Equal(t, "photoquiz:artifact:abc:draft", artifactKey("abc/draft"))
	assert.Equal(t, "photoquiz:artifact:draft", artifactKey("draft"))
}
