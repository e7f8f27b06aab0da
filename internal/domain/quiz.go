package domain

import (
	"math/rand"
	"strings"
	"unicode"
)

// Difficulty is the requested difficulty level of a quiz
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyHard     Difficulty = "Hard"
	DifficultyVeryHard Difficulty = "Very Hard"
)

// Category is the requested topic category of a quiz
type Category string

const (
	CategoryGeneral Category = "General"
	CategoryHistory Category = "History"
	CategoryFunFact Category = "Fun Fact"
	CategoryRecords Category = "Records/Statistics"
)

// Difficulties returns the closed set of accepted difficulty levels
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard}
}

// Categories returns the closed set of accepted categories
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryHistory, CategoryFunFact, CategoryRecords}
}

// ParseDifficulty normalizes raw user input (case and surrounding
// whitespace) to title case and checks it against the closed set.
func ParseDifficulty(raw string) (Difficulty, bool) {
	normalized := Difficulty(titleCase(strings.TrimSpace(raw)))
	for _, d := range Difficulties() {
		if normalized == d {
			return d, true
		}
	}
	return "", false
}

// ParseCategory checks raw user input against the closed category set.
// Categories are matched exactly after trimming; they are display names
// with fixed casing.
func ParseCategory(raw string) (Category, bool) {
	trimmed := Category(strings.TrimSpace(raw))
	for _, c := range Categories() {
		if trimmed == c {
			return c, true
		}
	}
	return "", false
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest, so "very hard" and "MEDIUM" match their canonical forms.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ImageInput is the uploaded image as received at the boundary. It is
// consumed exactly once by the describer and never mutated.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// ObjectDescription is the structured ground-truth description of the main
// subject of the image. Values are free text; fields the vision backend
// could not determine hold an "unknown <field>" sentinel.
type ObjectDescription map[string]string

// FallbackDescription wraps raw backend text that failed to parse as JSON.
// A vaguer ground truth is better than none for a trivia question, so this
// is a defined degradation rather than an error.
func FallbackDescription(raw string) ObjectDescription {
	return ObjectDescription{"description": raw}
}

// RawQuizDraft is the unvalidated quiz as parsed from the synthesis
// backend. By contract the first option is the correct answer; the draft
// only exists between synthesis and normalization.
type RawQuizDraft struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Hint        string   `json:"hint"`
	Explanation string   `json:"explanation"`
	Title       string   `json:"title"`
}

// Validate checks the draft against the synthesis contract
func (d *RawQuizDraft) Validate() error {
	if len(d.Options) < 2 {
		return NewInsufficientOptionsError(len(d.Options))
	}
	return nil
}

// FinalQuizRecord is the sole externally returned artifact: shuffled
// options, recomputed correct index, and pass-through text fields.
// Immutable once constructed.
type FinalQuizRecord struct {
	Question     string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correct_index"`
	Hint         string     `json:"hint"`
	Explanation  string     `json:"explanation"`
	Title        string     `json:"title"`
	Difficulty   Difficulty `json:"difficulty"`
	Category     Category   `json:"category"`
}

// NormalizeDraft turns a raw draft into the final record. It shuffles the
// options with a uniform permutation of index positions and tracks where
// the original first option (the correct answer) landed, so duplicate
// option text cannot misplace the index. Difficulty and category come from
// the validated request parameters, never from model output.
func NormalizeDraft(draft *RawQuizDraft, difficulty Difficulty, category Category, rng *rand.Rand) (*FinalQuizRecord, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	correct := draft.Options[0]

	perm := rng.Perm(len(draft.Options))
	shuffled := make([]string, len(draft.Options))
	correctIndex := 0
	for to, from := range perm {
		shuffled[to] = draft.Options[from]
		if from == 0 {
			correctIndex = to
		}
	}

	shuffled, correctIndex = ensureCorrectOption(shuffled, correctIndex, correct)

	return &FinalQuizRecord{
		Question:     draft.Question,
		Options:      shuffled,
		CorrectIndex: correctIndex,
		Hint:         draft.Hint,
		Explanation:  draft.Explanation,
		Title:        draft.Title,
		Difficulty:   difficulty,
		Category:     category,
	}, nil
}

// ensureCorrectOption guards the position invariant: options[index] must
// equal the correct answer by value. If the shuffled list was corrupted in
// any way, the correct answer is forced into position 0 instead of failing
// the request.
func ensureCorrectOption(options []string, index int, correct string) ([]string, int) {
	if index >= 0 && index < len(options) && options[index] == correct {
		return options, index
	}
	for i, opt := range options {
		if opt == correct {
			return options, i
		}
	}
	options[0] = correct
	return options, 0
}
