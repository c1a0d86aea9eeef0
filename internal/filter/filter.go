// Package filter derives the working set of questions the learner steps
// through from the bank, the active filter and the unknown set.
package filter

import (
	"errors"
	"fmt"

	"github.com/seiyeolo/park-golf-master/internal/bank"
)

// Kind tags a Filter.
type Kind int

const (
	KindAll Kind = iota
	KindCategory
	KindReview
)

// ReviewSelection is the persisted form of the review-unknowns filter.
const ReviewSelection = "unknown"

var (
	// ErrEmptyWorkingSet is returned when the filter yields no questions.
	ErrEmptyWorkingSet = errors.New("working set is empty")
	// ErrOutOfRange is returned for a position outside a non-empty set.
	ErrOutOfRange = errors.New("position out of range")
)

// Filter selects a subset of the bank. The zero value is All.
type Filter struct {
	kind     Kind
	category string
}

// All selects the whole bank.
func All() Filter { return Filter{kind: KindAll} }

// Category selects one real category.
func Category(name string) Filter { return Filter{kind: KindCategory, category: name} }

// Review selects the questions currently marked unknown.
func Review() Filter { return Filter{kind: KindReview} }

func (f Filter) Kind() Kind { return f.kind }

// CategoryName returns the category for KindCategory filters and "" otherwise.
func (f Filter) CategoryName() string { return f.category }

func (f Filter) String() string {
	switch f.kind {
	case KindCategory:
		return "category:" + f.category
	case KindReview:
		return "review"
	default:
		return "all"
	}
}

// Selection returns the persisted form: nil for All, "unknown" for review,
// otherwise the category name.
func (f Filter) Selection() *string {
	switch f.kind {
	case KindCategory:
		s := f.category
		return &s
	case KindReview:
		s := ReviewSelection
		return &s
	default:
		return nil
	}
}

// FromSelection parses a persisted selection. Names the bank does not know
// fall back to All.
func FromSelection(b *bank.Bank, sel *string) Filter {
	if sel == nil {
		return All()
	}
	if *sel == ReviewSelection {
		return Review()
	}
	if b.HasCategory(*sel) {
		return Category(*sel)
	}
	return All()
}

// UnknownSet reports whether an id is marked unknown.
type UnknownSet interface {
	IsUnknown(id int) bool
}

// WorkingSet is an ordered list of global indices into the bank.
type WorkingSet struct {
	bank    *bank.Bank
	indices []int
}

// Derive computes the working set for f. Members always keep bank order.
func Derive(b *bank.Bank, f Filter, unknown UnknownSet) WorkingSet {
	ws := WorkingSet{bank: b}
	for i := 0; i < b.Len(); i++ {
		q := b.At(i)
		switch f.kind {
		case KindCategory:
			if q.Category != f.category {
				continue
			}
		case KindReview:
			if unknown == nil || !unknown.IsUnknown(q.ID) {
				continue
			}
		}
		ws.indices = append(ws.indices, i)
	}
	return ws
}

func (w WorkingSet) Len() int { return len(w.indices) }

func (w WorkingSet) Empty() bool { return len(w.indices) == 0 }

// At returns the question at pos.
func (w WorkingSet) At(pos int) (bank.Question, error) {
	gi, err := w.GlobalIndex(pos)
	if err != nil {
		return bank.Question{}, err
	}
	return w.bank.At(gi), nil
}

// GlobalIndex maps a working-set position to its bank position.
func (w WorkingSet) GlobalIndex(pos int) (int, error) {
	if w.Empty() {
		return 0, ErrEmptyWorkingSet
	}
	if pos < 0 || pos >= len(w.indices) {
		return 0, fmt.Errorf("%w: %d of %d", ErrOutOfRange, pos, len(w.indices))
	}
	return w.indices[pos], nil
}

// PositionOf returns id's position in the working set.
func (w WorkingSet) PositionOf(id int) (int, bool) {
	gi, ok := w.bank.GlobalIndexOf(id)
	if !ok {
		return 0, false
	}
	for pos, idx := range w.indices {
		if idx == gi {
			return pos, true
		}
	}
	return 0, false
}

// IDs returns the question ids in working-set order.
func (w WorkingSet) IDs() []int {
	ids := make([]int, len(w.indices))
	for i, gi := range w.indices {
		ids[i] = w.bank.At(gi).ID
	}
	return ids
}

// GlobalIndices returns a copy of the bank positions in working-set order.
func (w WorkingSet) GlobalIndices() []int {
	out := make([]int, len(w.indices))
	copy(out, w.indices)
	return out
}

// Option is one entry of the category picker.
type Option struct {
	Filter Filter
	Label  string
	Count  int
}

// Options lists the picker entries: All, then the review pseudo-category
// when anything is marked unknown, then each real category.
func Options(b *bank.Bank, unknownCount int) []Option {
	opts := []Option{{Filter: All(), Label: "All questions", Count: b.Len()}}
	if unknownCount > 0 {
		opts = append(opts, Option{Filter: Review(), Label: "Review unknowns", Count: unknownCount})
	}
	for _, c := range b.Categories() {
		opts = append(opts, Option{Filter: Category(c.Name), Label: c.Name, Count: c.Count})
	}
	return opts
}
