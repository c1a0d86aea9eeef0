package bank

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoQuestions is returned when a source document holds no question headings.
var ErrNoQuestions = errors.New("no questions found")

// CategoryRule assigns Name to every id up to and including MaxID.
// A rule with MaxID 0 matches any id.
type CategoryRule struct {
	MaxID int
	Name  string
}

// DefaultCategoryRules mirrors the chapter layout of the printed book.
var DefaultCategoryRules = []CategoryRule{
	{MaxID: 50, Name: "Park golf basics"},
	{MaxID: 100, Name: "Equipment and facilities"},
	{MaxID: 200, Name: "Rules of play"},
	{MaxID: 0, Name: "Practical technique"},
}

const fallbackCategory = "General"

var (
	headingPattern = regexp.MustCompile(`^\*\*Q(\d+)\.\s*(.*?)\*\*\s*$`)
	sectionPattern = regexp.MustCompile(`^##`)
)

// categoryFor returns the first rule matching id.
func categoryFor(id int, rules []CategoryRule) string {
	for _, r := range rules {
		if r.MaxID == 0 || id <= r.MaxID {
			return r.Name
		}
	}
	return fallbackCategory
}

// ParseMarkdown extracts questions from a markdown document where each
// question is a bold "**Q<n>. text**" line followed by its answer. An answer
// runs until the next question heading or a "##" section heading.
func ParseMarkdown(r io.Reader, rules []CategoryRule) ([]Question, error) {
	if len(rules) == 0 {
		rules = DefaultCategoryRules
	}

	var (
		questions []Question
		current   *Question
		answer    []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Answer = strings.TrimSpace(strings.Join(answer, "\n"))
		questions = append(questions, *current)
		current = nil
		answer = nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("parse question number %q: %w", m[1], err)
			}
			current = &Question{
				ID:       id,
				Category: categoryFor(id, rules),
				Question: strings.TrimSpace(m[2]),
			}
			continue
		}

		if sectionPattern.MatchString(line) {
			flush()
			continue
		}

		if current != nil {
			answer = append(answer, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	flush()

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// WriteJSON writes questions as an indented JSON array.
func WriteJSON(w io.Writer, questions []Question) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(questions); err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return nil
}
