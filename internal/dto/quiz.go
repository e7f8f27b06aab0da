package dto

import "photoquiz/internal/domain"

// QuizResponse is the generated quiz in the API response
// @Description Final quiz with shuffled options and the correct answer index
type QuizResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Hint         string   `json:"hint"`
	Explanation  string   `json:"explanation"`
	Title        string   `json:"title"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// NewQuizResponse maps the immutable domain record onto the wire shape
func NewQuizResponse(record *domain.FinalQuizRecord) *QuizResponse {
	return &QuizResponse{
		Question:     record.Question,
		Options:      record.Options,
		CorrectIndex: record.CorrectIndex,
		Hint:         record.Hint,
		Explanation:  record.Explanation,
		Title:        record.Title,
		Difficulty:   string(record.Difficulty),
		Category:     string(record.Category),
	}
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
