package shuffle_test

import (
	"math/rand"
	"testing"

	"github.com/psd1-practice-tool/backend/internal/domain/question"
	"github.com/psd1-practice-tool/backend/internal/domain/shuffle"
)

func newQuestion(id int, optionTexts ...string) question.Question {
	q := question.Question{ID: id, Question: "q", ExpectedAnswers: 1}
	for _, text := range optionTexts {
		q.Options = append(q.Options, question.Option{Text: text})
	}
	return q
}

func seeded(seed int64) *shuffle.Shuffler {
	return shuffle.New(rand.New(rand.NewSource(seed)))
}

func TestShuffle_Bijection(t *testing.T) {
	q := newQuestion(1, "a", "b", "c", "d", "e", "f")
	shuffled := seeded(1).Shuffle(q)

	if len(shuffled) != len(q.Options) {
		t.Fatalf("expected %d options, got %d", len(q.Options), len(shuffled))
	}

	seen := make(map[int]bool)
	for _, so := range shuffled {
		if seen[so.OriginalIndex] {
			t.Errorf("original index %d appears more than once", so.OriginalIndex)
		}
		seen[so.OriginalIndex] = true
	}
	for i := range q.Options {
		if !seen[i] {
			t.Errorf("original index %d missing from shuffle", i)
		}
	}
}

func TestShuffle_PinnedOptionStaysAtBottom(t *testing.T) {
	q := newQuestion(1, "All of the above", "a", "b", "c", "d")

	// Any seed must keep the pinned option last.
	for seed := int64(0); seed < 20; seed++ {
		shuffled := seeded(seed).Shuffle(q)
		last := shuffled[len(shuffled)-1]
		if last.OriginalIndex != 0 {
			t.Fatalf("seed %d: expected pinned option last, got original index %d", seed, last.OriginalIndex)
		}
	}
}

func TestShuffle_MultiplePinnedKeepEncounterOrder(t *testing.T) {
	q := newQuestion(1, "a", "all of these", "b", "ALL THE ABOVE")
	shuffled := seeded(3).Shuffle(q)

	n := len(shuffled)
	if shuffled[n-2].OriginalIndex != 1 || shuffled[n-1].OriginalIndex != 3 {
		t.Errorf("expected pinned options in encounter order at the end, got %v", shuffled)
	}
}

func TestShuffle_Memoized(t *testing.T) {
	q := newQuestion(1, "a", "b", "c", "d", "e", "f", "g", "h")
	s := seeded(42)

	first := s.Shuffle(q)
	second := s.Shuffle(q)

	for i := range first {
		if first[i].OriginalIndex != second[i].OriginalIndex {
			t.Fatal("expected identical permutation within one session")
		}
	}
}

func TestShuffle_ResetInvalidatesCache(t *testing.T) {
	q := newQuestion(1, "a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	s := seeded(42)

	first := s.Shuffle(q)

	// After a reset the shuffler draws a fresh permutation. With 10
	// options, ten resets virtually never reproduce the same order
	// every time.
	different := false
	for i := 0; i < 10; i++ {
		s.Reset()
		next := s.Shuffle(q)
		for j := range first {
			if first[j].OriginalIndex != next[j].OriginalIndex {
				different = true
			}
		}
	}
	if !different {
		t.Error("expected a fresh permutation after reset")
	}
}

func TestShuffle_DeterministicWithSeed(t *testing.T) {
	q := newQuestion(1, "a", "b", "c", "d", "e")

	first := seeded(7).Shuffle(q)
	second := seeded(7).Shuffle(q)

	for i := range first {
		if first[i].OriginalIndex != second[i].OriginalIndex {
			t.Fatal("expected identical permutations from identical seeds")
		}
	}
}

func TestStaysAtBottom(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"All of the above", true},
		{"all of these", true},
		{"All the above", true},
		{"None of the above", false},
		{"a regular option", false},
	}

	for _, tc := range cases {
		if got := shuffle.StaysAtBottom(tc.text); got != tc.want {
			t.Errorf("StaysAtBottom(%q) = %v, expected %v", tc.text, got, tc.want)
		}
	}
}
