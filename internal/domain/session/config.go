package session

import "time"

// Config holds the fixed parameters of an exam run.
type Config struct {
	ExamQuestions int           // questions sampled from the bank
	ExamDuration  time.Duration // countdown before forced submission
}

// DefaultConfig matches the real exam: 80 questions in 60 minutes.
func DefaultConfig() Config {
	return Config{
		ExamQuestions: 80,
		ExamDuration:  60 * time.Minute,
	}
}
