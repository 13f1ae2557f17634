package question

import "errors"

// Option is a single answer choice. Its identity within a question is the
// original index, i.e. its position in the question's Options slice as
// loaded from the bank. Answers are recorded and compared against original
// indices, never against shuffled display positions.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Image is an illustration attached to a question.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Question is an immutable record from the question bank. It is owned by
// the bank store and shared read-only with every other component.
type Question struct {
	ID              int      `json:"id"`
	Question        string   `json:"question"`
	ExpectedAnswers int      `json:"expectedAnswers"`
	Options         []Option `json:"options"`
	Images          []Image  `json:"images"`
}

var (
	ErrEmptyText = errors.New("question text cannot be empty")
	ErrNoOptions = errors.New("question has no options")
	ErrNoCorrect = errors.New("question has no correct option")
	ErrInvalidID = errors.New("question id must be positive")
)

// Validate reports whether the record is usable. Malformed records are
// skipped at load time rather than failing the whole bank.
func (q Question) Validate() error {
	if q.ID <= 0 {
		return ErrInvalidID
	}
	if q.Question == "" {
		return ErrEmptyText
	}
	if len(q.Options) == 0 {
		return ErrNoOptions
	}
	if len(q.CorrectIndices()) == 0 {
		return ErrNoCorrect
	}
	return nil
}

// CorrectIndices returns the original indices of all correct options,
// in ascending order.
func (q Question) CorrectIndices() []int {
	var indices []int
	for i, opt := range q.Options {
		if opt.IsCorrect {
			indices = append(indices, i)
		}
	}
	return indices
}

// IsMultiChoice reports whether more than one answer is expected.
// Single-choice questions get radio semantics, multi-choice get toggles.
func (q Question) IsMultiChoice() bool {
	return q.ExpectedAnswers > 1
}
