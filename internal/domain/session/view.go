package session

import "github.com/psd1-practice-tool/backend/internal/domain/question"

// OptionView is one displayable answer choice. Correct is only populated
// after the question has been revealed in practice mode, mirroring the
// per-option feedback coloring.
type OptionView struct {
	Text          string `json:"text"`
	OriginalIndex int    `json:"original_index"`
	Selected      bool   `json:"selected"`
	Correct       *bool  `json:"correct,omitempty"`
}

// View is the render-ready projection of the current session state. It
// carries no behavior; any UI can be rebuilt from it without touching the
// shuffling or scoring logic.
type View struct {
	SessionID        string           `json:"session_id"`
	Mode             Mode             `json:"mode"`
	Index            int              `json:"index"`
	Total            int              `json:"total"`
	QuestionID       int              `json:"question_id"`
	QuestionText     string           `json:"question_text"`
	ExpectedAnswers  int              `json:"expected_answers"`
	Images           []question.Image `json:"images,omitempty"`
	Options          []OptionView     `json:"options"`
	Checked          bool             `json:"checked"`
	Bookmarked       bool             `json:"bookmarked"`
	CanGoPrev        bool             `json:"can_go_prev"`
	CanGoNext        bool             `json:"can_go_next"`
	RemainingSeconds *int             `json:"remaining_seconds,omitempty"`
	Clock            string           `json:"clock,omitempty"`
}

// View projects the current question into a ViewModel. The option order
// comes from the memoized shuffler, so repeated calls within a session
// are stable.
func (c *Controller) View() (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeResult {
		return View{SessionID: c.sessionID, Mode: ModeResult, Total: len(c.questions)}, nil
	}
	if !c.active() {
		return View{}, ErrNoSession
	}

	q := c.questions[c.index]
	checked := c.checked[q.ID]
	selected := c.tracker.Selected(q.ID)

	view := View{
		SessionID:       c.sessionID,
		Mode:            c.mode,
		Index:           c.index,
		Total:           len(c.questions),
		QuestionID:      q.ID,
		QuestionText:    q.Question,
		ExpectedAnswers: q.ExpectedAnswers,
		Images:          q.Images,
		Checked:         checked,
		Bookmarked:      c.bookmarks.IsBookmarked(q.ID),
		CanGoPrev:       c.index > 0,
		CanGoNext:       c.index < len(c.questions)-1,
	}

	for _, so := range c.shuffler.Shuffle(q) {
		ov := OptionView{
			Text:          so.Option.Text,
			OriginalIndex: so.OriginalIndex,
			Selected:      contains(selected, so.OriginalIndex),
		}
		if checked && c.mode != ModeExam {
			correct := so.Option.IsCorrect
			ov.Correct = &correct
		}
		view.Options = append(view.Options, ov)
	}

	if c.mode == ModeExam && c.timer != nil {
		remaining := c.timer.Remaining()
		view.RemainingSeconds = &remaining
		view.Clock = Clock(remaining)
	}

	return view, nil
}

func contains(indices []int, target int) bool {
	for _, idx := range indices {
		if idx == target {
			return true
		}
	}
	return false
}
