package answers_test

import (
	"testing"

	"github.com/psd1-practice-tool/backend/internal/domain/answers"
)

func TestSelect_SingleChoiceReplaces(t *testing.T) {
	tracker := answers.NewTracker()

	tracker.Select(1, 2, 1)
	tracker.Select(1, 5, 1)

	selected := tracker.Selected(1)
	if len(selected) != 1 || selected[0] != 5 {
		t.Errorf("expected selection [5], got %v", selected)
	}
}

func TestSelect_SingleChoiceReclickKeepsSelection(t *testing.T) {
	tracker := answers.NewTracker()

	tracker.Select(1, 3, 1)
	tracker.Select(1, 3, 1)

	selected := tracker.Selected(1)
	if len(selected) != 1 || selected[0] != 3 {
		t.Errorf("expected re-click to keep [3], got %v", selected)
	}
}

func TestSelect_MultiChoiceToggles(t *testing.T) {
	tracker := answers.NewTracker()

	tracker.Select(1, 1, 2)
	tracker.Select(1, 1, 2)

	if selected := tracker.Selected(1); len(selected) != 0 {
		t.Errorf("expected empty selection after toggle off, got %v", selected)
	}
}

func TestSelect_MultiChoiceAccumulates(t *testing.T) {
	tracker := answers.NewTracker()

	tracker.Select(1, 0, 3)
	tracker.Select(1, 2, 3)
	tracker.Select(1, 4, 3)

	selected := tracker.Selected(1)
	if len(selected) != 3 {
		t.Fatalf("expected 3 selections, got %d", len(selected))
	}
	if selected[0] != 0 || selected[1] != 2 || selected[2] != 4 {
		t.Errorf("expected [0 2 4] in selection order, got %v", selected)
	}
}

func TestSelect_NoUpperBound(t *testing.T) {
	tracker := answers.NewTracker()

	// expectedAnswers is 2 but the tracker never enforces counts;
	// over-selection only matters at scoring time.
	tracker.Select(1, 0, 2)
	tracker.Select(1, 1, 2)
	tracker.Select(1, 2, 2)

	if selected := tracker.Selected(1); len(selected) != 3 {
		t.Errorf("expected 3 selections despite expectedAnswers=2, got %v", selected)
	}
}

func TestSelected_ReturnsCopy(t *testing.T) {
	tracker := answers.NewTracker()
	tracker.Select(1, 0, 2)

	selected := tracker.Selected(1)
	selected[0] = 99

	if tracker.Selected(1)[0] != 0 {
		t.Error("expected tracker state to be isolated from returned slice")
	}
}

func TestReset(t *testing.T) {
	tracker := answers.NewTracker()
	tracker.Select(1, 0, 1)
	tracker.Select(2, 1, 2)

	tracker.Reset()

	if len(tracker.Selections()) != 0 {
		t.Error("expected no selections after reset")
	}
}

func TestSelections_IndependentQuestions(t *testing.T) {
	tracker := answers.NewTracker()
	tracker.Select(1, 0, 1)
	tracker.Select(2, 3, 2)

	all := tracker.Selections()
	if len(all) != 2 {
		t.Fatalf("expected selections for 2 questions, got %d", len(all))
	}
	if all[1][0] != 0 || all[2][0] != 3 {
		t.Errorf("unexpected selections map: %v", all)
	}
}
