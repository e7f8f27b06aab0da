package sink

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Persist(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(dir)
	require.NoError(t, err)

	artifact := map[string]string{"description": "a red sneaker"}
	err = s.Persist(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV/description", artifact)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "01ARZ3NDEKTSV4RRFFQ69G5FAV", "description.json"))
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, artifact, got)
}

func TestFileSink_PersistFlatName(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, s.Persist(context.Background(), "quiz", map[string]int{"correct_index": 2}))

	_, err = os.Stat(filepath.Join(dir, "quiz.json"))
	assert.NoError(t, err)
}

func TestFileSink_UnmarshalableArtifact(t *testing.T) {
	s, err := NewFileSink(t.TempDir())
	require.NoError(t, err)

	err = s.Persist(context.Background(), "bad", func() {})
	assert.Error(t, err)
}
