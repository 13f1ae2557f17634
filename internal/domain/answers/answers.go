package answers

// Tracker records which original option indices the user has selected for
// each question. It is cleared at the start of every session and performs
// no validation against the expected answer count; over- and
// under-selection only matter at scoring time.
type Tracker struct {
	selected map[int][]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{selected: make(map[int][]int)}
}

// Select records a selection for the question identified by questionID.
//
// Single-choice questions (expectedAnswers == 1) use radio semantics: the
// new index replaces any prior selection, and re-clicking the already
// selected option keeps it selected rather than clearing it. Multi-choice
// questions toggle membership: selecting an already selected index
// removes it.
func (t *Tracker) Select(questionID, originalIndex, expectedAnswers int) {
	if expectedAnswers == 1 {
		t.selected[questionID] = []int{originalIndex}
		return
	}

	current := t.selected[questionID]
	for i, idx := range current {
		if idx == originalIndex {
			t.selected[questionID] = append(current[:i], current[i+1:]...)
			return
		}
	}
	t.selected[questionID] = append(current, originalIndex)
}

// Selected returns the original indices currently selected for the
// question, in selection order. The returned slice is a copy.
func (t *Tracker) Selected(questionID int) []int {
	current := t.selected[questionID]
	if len(current) == 0 {
		return nil
	}
	out := make([]int, len(current))
	copy(out, current)
	return out
}

// Selections returns the full question → selected indices mapping as a
// copy, for handing to the scoring engine.
func (t *Tracker) Selections() map[int][]int {
	out := make(map[int][]int, len(t.selected))
	for qid, indices := range t.selected {
		copied := make([]int, len(indices))
		copy(copied, indices)
		out[qid] = copied
	}
	return out
}

// Reset discards all recorded selections.
func (t *Tracker) Reset() {
	t.selected = make(map[int][]int)
}
