package bank

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrDuplicateID is returned when two questions share an id.
	ErrDuplicateID = errors.New("duplicate question id")

	// ErrInvalidID is returned for ids below 1.
	ErrInvalidID = errors.New("invalid question id")
)

// Bank is the immutable, ordered question collection. Position in the bank
// is the global order.
type Bank struct {
	questions  []Question
	index      map[int]int // id -> global index
	categories []Category
}

// New builds a Bank from questions in global order.
func New(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, len(questions)),
		index:     make(map[int]int, len(questions)),
	}
	copy(b.questions, questions)

	counts := make(map[string]int)
	for i, q := range b.questions {
		if q.ID < 1 {
			return nil, fmt.Errorf("question at position %d: %w: %d", i, ErrInvalidID, q.ID)
		}
		if _, dup := b.index[q.ID]; dup {
			return nil, fmt.Errorf("question at position %d: %w: %d", i, ErrDuplicateID, q.ID)
		}
		b.index[q.ID] = i

		if _, seen := counts[q.Category]; !seen {
			b.categories = append(b.categories, Category{Name: q.Category})
		}
		counts[q.Category]++
	}
	for i := range b.categories {
		b.categories[i].Count = counts[b.categories[i].Name]
	}
	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at a global index. It panics when out of range,
// like a slice access.
func (b *Bank) At(globalIndex int) Question {
	return b.questions[globalIndex]
}

// All returns a copy of every question in global order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// GlobalIndexOf resolves a question id to its position in the bank.
func (b *Bank) GlobalIndexOf(id int) (int, bool) {
	i, ok := b.index[id]
	return i, ok
}

// ByID returns the question with the given id.
func (b *Bank) ByID(id int) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Categories returns the real categories ordered by first occurrence.
func (b *Bank) Categories() []Category {
	out := make([]Category, len(b.categories))
	copy(out, b.categories)
	return out
}

// HasCategory reports whether any question carries the category.
func (b *Bank) HasCategory(name string) bool {
	for _, c := range b.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CategoryIDs returns the ids of a category in global order.
func (b *Bank) CategoryIDs(name string) []int {
	var ids []int
	for _, q := range b.questions {
		if q.Category == name {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// Search matches term against question text, answer text, and the decimal
// id, ignoring case. A blank term matches nothing.
func (b *Bank) Search(term string) []Question {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	fold := cases.Fold()
	needle := fold.String(term)

	var out []Question
	for _, q := range b.questions {
		if strings.Contains(fold.String(q.Question), needle) ||
			strings.Contains(fold.String(q.Answer), needle) ||
			strings.Contains(strconv.Itoa(q.ID), needle) {
			out = append(out, q)
		}
	}
	return out
}
