package bank

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/psd1-practice-tool/backend/internal/domain/question"
)

// ErrNoQuestions means the source yielded no usable question records.
// This is fatal to session start and surfaced to the user with a manual
// retry; it is never retried automatically.
var ErrNoQuestions = errors.New("no usable questions in source")

// Store is the question bank: an immutable, validated array of Question
// records parsed from the README source. Parsed results are cached to a
// JSON file so restarts skip the parse, and a force refresh re-parses
// from source and rewrites the cache.
type Store struct {
	readmePath string
	cachePath  string
	logger     *slog.Logger

	mu        sync.RWMutex
	questions []question.Question
}

// NewStore creates an unloaded bank. Call Load before serving.
func NewStore(readmePath, cachePath string, logger *slog.Logger) *Store {
	return &Store{
		readmePath: readmePath,
		cachePath:  cachePath,
		logger:     logger,
	}
}

// Load populates the bank, preferring the cache file and falling back to
// a fresh parse when the cache is missing or unreadable.
func (s *Store) Load() error {
	if questions, err := s.loadCache(); err == nil {
		s.mu.Lock()
		s.questions = questions
		s.mu.Unlock()
		s.logger.Info("loaded questions from cache", "count", len(questions))
		return nil
	} else if !os.IsNotExist(err) {
		s.logger.Warn("question cache unreadable, re-parsing source", "error", err)
	}

	_, err := s.Refresh()
	return err
}

// Refresh re-parses the README, replaces the in-memory bank, and rewrites
// the cache file. A cache write failure is logged but not fatal.
func (s *Store) Refresh() ([]question.Question, error) {
	parsed, err := ParseFile(s.readmePath)
	if err != nil {
		return nil, err
	}

	valid := make([]question.Question, 0, len(parsed))
	for _, q := range parsed {
		if err := q.Validate(); err != nil {
			s.logger.Warn("skipping malformed question", "id", q.ID, "error", err)
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, ErrNoQuestions
	}

	s.mu.Lock()
	s.questions = valid
	s.mu.Unlock()

	if err := s.writeCache(valid); err != nil {
		s.logger.Warn("failed to write question cache", "path", s.cachePath, "error", err)
	}

	s.logger.Info("parsed questions from source", "count", len(valid))
	return valid, nil
}

// GetAll returns the loaded question records. The slice and its records
// are shared read-only; callers must not mutate them.
func (s *Store) GetAll() []question.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions
}

func (s *Store) loadCache() ([]question.Question, error) {
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil, err
	}

	var questions []question.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

func (s *Store) writeCache(questions []question.Question) error {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.cachePath, data, 0644)
}
