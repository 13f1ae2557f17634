package bookmark

import (
	"log/slog"
	"sort"
)

// Persister stores the full bookmark set durably. The sqlite store
// implements it; tests supply fakes.
type Persister interface {
	LoadBookmarks() ([]int, error)
	SaveBookmarks(ids []int) error
}

// Set is the persistent collection of bookmarked question ids. Membership
// is independent of any session: bookmarks survive process restarts and
// refer to questions whether or not they are part of the active session.
//
// Persistence failures degrade the set to memory-only operation. They are
// logged and never surfaced, since bookmarks are a convenience rather
// than correctness-critical state.
type Set struct {
	ids     map[int]struct{}
	persist Persister
	logger  *slog.Logger
}

// Load builds the set from the persister. A read error or malformed
// payload yields an empty set, not a failure.
func Load(persist Persister, logger *slog.Logger) *Set {
	s := &Set{
		ids:     make(map[int]struct{}),
		persist: persist,
		logger:  logger,
	}

	ids, err := persist.LoadBookmarks()
	if err != nil {
		logger.Warn("failed to load bookmarks, starting empty", "error", err)
		return s
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle adds the id if absent, removes it if present, and writes the
// full set through the persister. Returns the new membership state.
func (s *Set) Toggle(questionID int) bool {
	_, bookmarked := s.ids[questionID]
	if bookmarked {
		delete(s.ids, questionID)
	} else {
		s.ids[questionID] = struct{}{}
	}

	if err := s.persist.SaveBookmarks(s.IDs()); err != nil {
		s.logger.Warn("failed to persist bookmarks", "error", err)
	}

	return !bookmarked
}

// IsBookmarked reports membership.
func (s *Set) IsBookmarked(questionID int) bool {
	_, ok := s.ids[questionID]
	return ok
}

// IDs returns the bookmarked question ids in ascending order.
func (s *Set) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of bookmarked questions.
func (s *Set) Len() int {
	return len(s.ids)
}
