package scoring

import (
	"math"
	"sort"

	"github.com/psd1-practice-tool/backend/internal/domain/question"
)

// PassMark is the minimum percentage required to pass an exam.
const PassMark = 85

// QuestionResult captures everything a review view needs for one question
// without re-deriving it: the question's 1-based position in the exam, the
// raw user selections, the correct original indices, and the verdict.
type QuestionResult struct {
	Position       int               `json:"position"`
	QuestionID     int               `json:"question_id"`
	Question       question.Question `json:"question"`
	Selected       []int             `json:"selected"`
	CorrectIndices []int             `json:"correct_indices"`
	Correct        bool              `json:"correct"`
}

// Result is the aggregate outcome of a completed session.
type Result struct {
	Percentage       int              `json:"percentage"`
	CorrectCount     int              `json:"correct_count"`
	TotalQuestions   int              `json:"total_questions"`
	Passed           bool             `json:"passed"`
	TimeTakenSeconds int              `json:"time_taken_seconds"`
	PerQuestion      []QuestionResult `json:"per_question"`
}

// Score grades a completed session. A question counts as correct iff the
// selected set equals the correct set exactly: order-independent, no
// partial credit for subsets, supersets, or overlaps.
func Score(questions []question.Question, selections map[int][]int, timeTakenSeconds int) Result {
	result := Result{
		TotalQuestions:   len(questions),
		TimeTakenSeconds: timeTakenSeconds,
		PerQuestion:      make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		selected := selections[q.ID]
		correctIndices := q.CorrectIndices()
		correct := sameIndexSet(selected, correctIndices)
		if correct {
			result.CorrectCount++
		}

		result.PerQuestion = append(result.PerQuestion, QuestionResult{
			Position:       i + 1,
			QuestionID:     q.ID,
			Question:       q,
			Selected:       selected,
			CorrectIndices: correctIndices,
			Correct:        correct,
		})
	}

	if result.TotalQuestions > 0 {
		quotient := 100 * float64(result.CorrectCount) / float64(result.TotalQuestions)
		result.Percentage = int(math.Round(quotient))
	}
	result.Passed = result.Percentage >= PassMark

	return result
}

// FailedOnly projects the per-question results down to the incorrect
// ones. It is a pure view-level filter over an already computed result.
func FailedOnly(perQuestion []QuestionResult) []QuestionResult {
	failed := make([]QuestionResult, 0)
	for _, qr := range perQuestion {
		if !qr.Correct {
			failed = append(failed, qr)
		}
	}
	return failed
}

// sameIndexSet compares two index slices as sets.
func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sortedA := append([]int(nil), a...)
	sortedB := append([]int(nil), b...)
	sort.Ints(sortedA)
	sort.Ints(sortedB)
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}
	return true
}
