package session

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/psd1-practice-tool/backend/internal/domain/answers"
	"github.com/psd1-practice-tool/backend/internal/domain/bookmark"
	"github.com/psd1-practice-tool/backend/internal/domain/question"
	"github.com/psd1-practice-tool/backend/internal/domain/scoring"
	"github.com/psd1-practice-tool/backend/internal/domain/shuffle"
	"github.com/psd1-practice-tool/backend/internal/id"
)

// Mode identifies the kind of session currently running.
type Mode string

const (
	ModeMenu      Mode = "menu" // no active session
	ModePractice  Mode = "practice"
	ModeBookmarks Mode = "bookmarks"
	ModeExam      Mode = "exam"
	ModeResult    Mode = "result"
)

var (
	ErrNoSession            = errors.New("no active session")
	ErrNoQuestions          = errors.New("question bank is empty")
	ErrNoBookmarks          = errors.New("no questions bookmarked")
	ErrInvalidJump          = errors.New("question number out of range")
	ErrUnknownQuestion      = errors.New("question not in session")
	ErrInvalidOption        = errors.New("option index out of range")
	ErrNotPractice          = errors.New("answers can only be revealed in practice mode")
	ErrNotExam              = errors.New("not in an exam session")
	ErrNoResult             = errors.New("no exam result available")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// QuestionSource supplies the loaded question bank.
type QuestionSource interface {
	GetAll() []question.Question
}

// ProgressStore persists the last visited practice index.
type ProgressStore interface {
	PracticeIndex() (int, error)
	SavePracticeIndex(index int) error
}

// Controller owns all mutable session state: the active question subset,
// the current position, answer and reveal tracking, the option shuffler,
// and the exam clock. Every mutation goes through the controller, which
// serializes access with a mutex so the timer goroutine and HTTP handlers
// never interleave mid-operation.
type Controller struct {
	mu sync.Mutex

	source    QuestionSource
	progress  ProgressStore
	bookmarks *bookmark.Set
	logger    *slog.Logger
	cfg       Config
	rng       *rand.Rand

	sessionID string
	mode      Mode
	questions []question.Question
	index     int
	tracker   *answers.Tracker
	checked   map[int]bool
	shuffler  *shuffle.Shuffler
	timer     *Countdown
	result    *scoring.Result
}

// New creates a Controller in the menu state. The random source drives
// both exam sampling and option shuffling; tests inject a seeded one.
func New(source QuestionSource, progress ProgressStore, bookmarks *bookmark.Set, rng *rand.Rand, cfg Config, logger *slog.Logger) *Controller {
	return &Controller{
		source:    source,
		progress:  progress,
		bookmarks: bookmarks,
		logger:    logger,
		cfg:       cfg,
		mode:      ModeMenu,
		tracker:   answers.NewTracker(),
		checked:   make(map[int]bool),
		shuffler:  shuffle.New(rng),
		rng:       rng,
	}
}

// StartPractice enters practice mode over the full bank in load order.
// The starting index is the last saved practice position when one exists
// and is still in range.
func (c *Controller) StartPractice() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.source.GetAll()
	if len(all) == 0 {
		return ErrNoQuestions
	}

	c.reset(ModePractice, all)

	if saved, err := c.progress.PracticeIndex(); err == nil {
		if saved > 0 && saved < len(all) {
			c.index = saved
		}
	}
	return nil
}

// StartBookmarkReview enters practice over the bookmarked subset,
// preserving bank order. An empty bookmark set aborts mode entry.
func (c *Controller) StartBookmarkReview() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subset []question.Question
	for _, q := range c.source.GetAll() {
		if c.bookmarks.IsBookmarked(q.ID) {
			subset = append(subset, q)
		}
	}
	if len(subset) == 0 {
		return ErrNoBookmarks
	}

	c.reset(ModeBookmarks, subset)
	return nil
}

// StartExam samples up to cfg.ExamQuestions questions without replacement
// in random order and starts the countdown. When the clock expires the
// session is submitted without confirmation.
func (c *Controller) StartExam() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.source.GetAll()
	if len(all) == 0 {
		return ErrNoQuestions
	}

	count := c.cfg.ExamQuestions
	if count > len(all) {
		count = len(all)
	}

	sampled := make([]question.Question, 0, count)
	for _, i := range c.rng.Perm(len(all))[:count] {
		sampled = append(sampled, all[i])
	}

	c.reset(ModeExam, sampled)

	c.timer = NewCountdown(int(c.cfg.ExamDuration.Seconds()))
	c.timer.Start(c.ForceSubmit)
	return nil
}

// reset discards all per-session state and installs the new question set.
// Caller holds the lock.
func (c *Controller) reset(mode Mode, questions []question.Question) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.sessionID = id.GenerateID()
	c.mode = mode
	c.questions = questions
	c.index = 0
	c.tracker.Reset()
	c.checked = make(map[int]bool)
	c.shuffler.Reset()
	c.result = nil
}

// Navigate moves the current position by delta. Requests that would leave
// [0, len-1] are silently ignored. In plain practice mode every
// successful move persists the new index so an interrupted run resumes
// where it left off.
func (c *Controller) Navigate(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return ErrNoSession
	}

	next := c.index + delta
	if next < 0 || next >= len(c.questions) {
		return nil
	}
	c.index = next

	if c.mode == ModePractice {
		if err := c.progress.SavePracticeIndex(c.index); err != nil {
			c.logger.Warn("failed to save practice position", "error", err)
		}
	}
	return nil
}

// JumpTo moves to the n-th question, 1-based. Out-of-range input is
// rejected without mutating state.
func (c *Controller) JumpTo(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return ErrNoSession
	}
	if n < 1 || n > len(c.questions) {
		return ErrInvalidJump
	}
	c.index = n - 1
	return nil
}

// Select records an answer for the given question. Revealed questions in
// practice mode are locked: further selections are silently ignored until
// the reveal is toggled off.
func (c *Controller) Select(questionID, originalIndex int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return ErrNoSession
	}

	q, ok := c.find(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if originalIndex < 0 || originalIndex >= len(q.Options) {
		return ErrInvalidOption
	}

	if c.mode != ModeExam && c.checked[questionID] {
		return nil
	}

	c.tracker.Select(questionID, originalIndex, q.ExpectedAnswers)
	return nil
}

// ToggleCheck flips the feedback reveal for a question. Practice and
// bookmark review only; exams never reveal correctness mid-run.
func (c *Controller) ToggleCheck(questionID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active() {
		return ErrNoSession
	}
	if c.mode == ModeExam {
		return ErrNotPractice
	}
	if _, ok := c.find(questionID); !ok {
		return ErrUnknownQuestion
	}

	c.checked[questionID] = !c.checked[questionID]
	return nil
}

// ToggleBookmark flips bookmark membership for a question and reports the
// new state. Bookmarks live outside the session lifecycle, so this works
// in any mode.
func (c *Controller) ToggleBookmark(questionID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookmarks.Toggle(questionID)
}

// Submit finishes the exam and computes the result. Manual submission is
// destructive (answers become immutable) and therefore requires explicit
// confirmation.
func (c *Controller) Submit(confirmed bool) (scoring.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeExam {
		return scoring.Result{}, ErrNotExam
	}
	if !confirmed {
		return scoring.Result{}, ErrConfirmationRequired
	}

	c.finishExam()
	return *c.result, nil
}

// ForceSubmit is the zero-expiry path: same as Submit but without
// confirmation. Invoked by the countdown when the exam clock runs out;
// a no-op unless an exam is running, so a straggling tick after
// submission or exit cannot score twice.
func (c *Controller) ForceSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeExam {
		return
	}
	c.logger.Info("exam time expired, submitting automatically")
	c.finishExam()
}

// finishExam stops the clock, scores the session, and transitions to the
// result state. Caller holds the lock and has verified mode == ModeExam.
func (c *Controller) finishExam() {
	timeTaken := int(c.cfg.ExamDuration.Seconds())
	if c.timer != nil {
		c.timer.Stop()
		timeTaken -= c.timer.Remaining()
	}

	res := scoring.Score(c.questions, c.tracker.Selections(), timeTaken)
	c.result = &res
	c.mode = ModeResult
}

// Result returns the computed exam result.
func (c *Controller) Result() (scoring.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.result == nil {
		return scoring.Result{}, ErrNoResult
	}
	return *c.result, nil
}

// Exit discards the session and returns to the menu. Leaving a running
// exam loses all progress, so it requires explicit confirmation; practice
// and bookmark review exit immediately.
func (c *Controller) Exit(confirmed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeMenu {
		return ErrNoSession
	}
	if c.mode == ModeExam && !confirmed {
		return ErrConfirmationRequired
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.sessionID = ""
	c.mode = ModeMenu
	c.questions = nil
	c.index = 0
	c.tracker.Reset()
	c.checked = make(map[int]bool)
	c.shuffler.Reset()
	c.result = nil
	return nil
}

// Mode returns the current controller state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// active reports whether a navigable session is running. Caller holds the
// lock.
func (c *Controller) active() bool {
	switch c.mode {
	case ModePractice, ModeBookmarks, ModeExam:
		return true
	}
	return false
}

// find locates a question of the active session by id. Caller holds the
// lock.
func (c *Controller) find(questionID int) (question.Question, bool) {
	for _, q := range c.questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}
