package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/psd1-practice-tool/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "practice.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBookmarks_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveBookmarks([]int{4, 12, 37}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, err := s.LoadBookmarks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 4 || ids[1] != 12 || ids[2] != 37 {
		t.Errorf("expected [4 12 37], got %v", ids)
	}
}

func TestBookmarks_AbsentIsEmpty(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.LoadBookmarks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty set, got %v", ids)
	}
}

func TestBookmarks_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	s.SaveBookmarks([]int{1, 2, 3})
	if err := s.SaveBookmarks([]int{2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, _ := s.LoadBookmarks()
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected the full set to be replaced, got %v", ids)
	}
}

func TestBookmarks_SaveNilWritesEmptyArray(t *testing.T) {
	s := newTestStore(t)

	s.SaveBookmarks([]int{5})
	if err := s.SaveBookmarks(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids, err := s.LoadBookmarks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected cleared set, got %v", ids)
	}
}

func TestPracticeIndex_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.SavePracticeIndex(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index, err := s.PracticeIndex()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index != 42 {
		t.Errorf("expected index 42, got %d", index)
	}
}

func TestPracticeIndex_Unset(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.PracticeIndex(); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPracticeIndex_Overwrites(t *testing.T) {
	s := newTestStore(t)

	s.SavePracticeIndex(3)
	s.SavePracticeIndex(17)

	index, _ := s.PracticeIndex()
	if index != 17 {
		t.Errorf("expected index 17, got %d", index)
	}
}
