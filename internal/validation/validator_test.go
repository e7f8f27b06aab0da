package validation

import (
	"testing"

	"photoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("valid request", func(t *testing.T) {
		difficulty, category, errs := v.ValidateGenerateQuizRequest("medium", "History", true)
		require.Empty(t, errs)
		assert.Equal(t, domain.DifficultyMedium, difficulty)
		assert.Equal(t, domain.CategoryHistory, category)
	})

	t.Run("missing image", func(t *testing.T) {
		_, _, errs := v.ValidateGenerateQuizRequest("Easy", "General", false)
		require.Len(t, errs, 1)
		assert.Equal(t, "image", errs[0].Field)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		_, _, errs := v.ValidateGenerateQuizRequest("impossible", "General", true)
		require.Len(t, errs, 1)
		assert.Equal(t, "difficulty", errs[0].Field)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, _, errs := v.ValidateGenerateQuizRequest("Hard", "Science", true)
		require.Len(t, errs, 1)
		assert.Equal(t, "category", errs[0].Field)
	})

	t.Run("everything invalid", func(t *testing.T) {
		_, _, errs := v.ValidateGenerateQuizRequest("", "", false)
		assert.Len(t, errs, 3)
	})
}
