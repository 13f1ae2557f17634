package bank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/psd1-practice-tool/backend/internal/domain/question"
)

// The bank source is a markdown README in the common quiz layout:
//
//	#### Q12. Question text
//	![diagram](images/q12.png)
//	- [ ] wrong option
//	- [x] correct option
//
// Question ids come from the header number, option identity from the
// listing order, and expectedAnswers from the number of checked boxes.
var (
	questionPattern = regexp.MustCompile(`^#{2,6}\s+Q?(\d+)[.)]\s+(.+)$`)
	optionPattern   = regexp.MustCompile(`^[-*]\s+\[([ xX])\]\s+(.+)$`)
	imagePattern    = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

// ParseFile parses the README at path into question records.
func ParseFile(path string) ([]question.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question source: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse extracts questions from markdown text. Records that fail
// validation are dropped by the store, not here, so callers can report
// what was skipped.
func Parse(r io.Reader) ([]question.Question, error) {
	var (
		questions []question.Question
		current   *question.Question
	)

	flush := func() {
		if current != nil {
			questions = append(questions, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := questionPattern.FindStringSubmatch(line); m != nil {
			flush()
			id, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			current = &question.Question{
				ID:       id,
				Question: strings.TrimSpace(m[2]),
			}
			continue
		}

		if current == nil {
			continue
		}

		if m := optionPattern.FindStringSubmatch(line); m != nil {
			correct := m[1] == "x" || m[1] == "X"
			current.Options = append(current.Options, question.Option{
				Text:      strings.TrimSpace(m[2]),
				IsCorrect: correct,
			})
			if correct {
				current.ExpectedAnswers++
			}
			continue
		}

		if m := imagePattern.FindStringSubmatch(line); m != nil {
			current.Images = append(current.Images, question.Image{
				Alt: m[1],
				Src: m[2],
			})
			continue
		}

		// Plain text before the first option continues the question text.
		if line != "" && len(current.Options) == 0 && !strings.HasPrefix(line, "#") {
			current.Question += " " + line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read question source: %w", err)
	}

	flush()
	return questions, nil
}
