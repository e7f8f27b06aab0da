package validation

import (
	"photoquiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest checks the raw request fields against the
// closed difficulty and category sets and verifies an image was supplied.
// It runs before any backend call so invalid requests never cost a
// generation invocation. On success it returns the parsed parameters.
func (v *Validator) ValidateGenerateQuizRequest(difficulty, category string, hasImage bool) (domain.Difficulty, domain.Category, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	if !hasImage {
		errs = append(errs, domain.NewMissingFieldError("image"))
	}

	parsedDifficulty, ok := domain.ParseDifficulty(difficulty)
	if !ok {
		errs = append(errs, domain.NewInvalidFormatError("difficulty", difficulty))
	}

	parsedCategory, ok := domain.ParseCategory(category)
	if !ok {
		errs = append(errs, domain.NewInvalidFormatError("category", category))
	}

	if len(errs) > 0 {
		return "", "", errs
	}
	return parsedDifficulty, parsedCategory, nil
}
