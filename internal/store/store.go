package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// Storage keys. User state is a flat key-value table: the bookmark set as
// a JSON array of question ids and the last visited practice index as an
// integer string.
const (
	KeyBookmarks     = "bookmarks"
	KeyPracticeIndex = "practice_index"
)
