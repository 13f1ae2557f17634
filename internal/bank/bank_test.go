package bank_test

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/psd1-practice-tool/backend/internal/bank"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestStore_LoadParsesAndCaches(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	cache := filepath.Join(dir, "questions.json")
	writeFile(t, readme, sampleMarkdown)

	store := bank.NewStore(readme, cache, testLogger())
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.GetAll()); got != 4 {
		t.Errorf("expected 4 questions, got %d", got)
	}
	if _, err := os.Stat(cache); err != nil {
		t.Errorf("expected cache file to be written: %v", err)
	}
}

func TestStore_LoadPrefersCache(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	cache := filepath.Join(dir, "questions.json")
	writeFile(t, readme, sampleMarkdown)
	writeFile(t, cache, `[{"id":99,"question":"cached?","expectedAnswers":1,"options":[{"text":"yes","isCorrect":true},{"text":"no","isCorrect":false}]}]`)

	store := bank.NewStore(readme, cache, testLogger())
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	questions := store.GetAll()
	if len(questions) != 1 || questions[0].ID != 99 {
		t.Errorf("expected the cached question, got %+v", questions)
	}
}

func TestStore_LoadFallsBackOnCorruptCache(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	cache := filepath.Join(dir, "questions.json")
	writeFile(t, readme, sampleMarkdown)
	writeFile(t, cache, "{not json")

	store := bank.NewStore(readme, cache, testLogger())
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.GetAll()); got != 4 {
		t.Errorf("expected a fresh parse of 4 questions, got %d", got)
	}
}

func TestStore_RefreshBypassesCache(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	cache := filepath.Join(dir, "questions.json")
	writeFile(t, readme, sampleMarkdown)

	store := bank.NewStore(readme, cache, testLogger())
	if err := store.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Source changed after the cache was written.
	writeFile(t, readme, "#### Q1. Only one left?\n- [x] yes\n- [ ] no\n")

	questions, err := store.Refresh()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("expected 1 question after refresh, got %d", len(questions))
	}
	if got := len(store.GetAll()); got != 1 {
		t.Errorf("expected the in-memory bank to be replaced, got %d", got)
	}
}

func TestStore_RefreshSkipsMalformedQuestions(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	// Q1 has no correct option and must be dropped.
	writeFile(t, readme, "#### Q1. Broken?\n- [ ] a\n- [ ] b\n\n#### Q2. Fine?\n- [x] yes\n- [ ] no\n")

	store := bank.NewStore(readme, filepath.Join(dir, "questions.json"), testLogger())

	questions, err := store.Refresh()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != 2 {
		t.Errorf("expected only the valid question, got %+v", questions)
	}
}

func TestStore_RefreshEmptySource(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	writeFile(t, readme, "# No questions here\n")

	store := bank.NewStore(readme, filepath.Join(dir, "questions.json"), testLogger())

	if _, err := store.Refresh(); !errors.Is(err, bank.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestStore_LoadMissingSource(t *testing.T) {
	dir := t.TempDir()

	store := bank.NewStore(filepath.Join(dir, "missing.md"), filepath.Join(dir, "questions.json"), testLogger())

	if err := store.Load(); err == nil {
		t.Error("expected an error when both cache and source are missing")
	}
}
