package shuffle

import (
	"math/rand"
	"strings"

	"github.com/psd1-practice-tool/backend/internal/domain/question"
)

// bottomPhrases marks options that must never be shuffled away from the
// end of the list. Matching is a case-insensitive substring check.
var bottomPhrases = []string{
	"all of the above",
	"all of these",
	"all the above",
}

// ShuffledOption pairs an option with its original index so selections
// can always be recorded against the canonical identity.
type ShuffledOption struct {
	Option        question.Option
	OriginalIndex int
}

// Shuffler produces a per-question permutation of options and memoizes it
// for the lifetime of a session. The same question shuffled twice within
// one session yields the identical order; Reset starts a fresh session.
//
// Callers serialize access through the session controller, so no internal
// locking is needed.
type Shuffler struct {
	rng   *rand.Rand
	cache map[int][]ShuffledOption
}

// New creates a Shuffler backed by the given random source. Tests pass a
// seeded source to assert exact permutations.
func New(rng *rand.Rand) *Shuffler {
	return &Shuffler{
		rng:   rng,
		cache: make(map[int][]ShuffledOption),
	}
}

// Shuffle returns the memoized permutation for the question, computing it
// on first use. Options matching a bottom phrase keep their encounter
// order after all regular options; regular options get a uniform
// Fisher-Yates permutation.
func (s *Shuffler) Shuffle(q question.Question) []ShuffledOption {
	if cached, ok := s.cache[q.ID]; ok {
		return cached
	}

	var regular, pinned []ShuffledOption
	for i, opt := range q.Options {
		so := ShuffledOption{Option: opt, OriginalIndex: i}
		if StaysAtBottom(opt.Text) {
			pinned = append(pinned, so)
		} else {
			regular = append(regular, so)
		}
	}

	s.rng.Shuffle(len(regular), func(i, j int) {
		regular[i], regular[j] = regular[j], regular[i]
	})

	shuffled := append(regular, pinned...)
	s.cache[q.ID] = shuffled
	return shuffled
}

// Reset discards all memoized permutations. Called whenever a new
// practice, bookmark review, or exam session starts.
func (s *Shuffler) Reset() {
	s.cache = make(map[int][]ShuffledOption)
}

// StaysAtBottom reports whether an option with this text is pinned to the
// end of its question's option list.
func StaysAtBottom(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range bottomPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
