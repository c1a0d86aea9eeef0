package session

import (
	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
)

// Card is what the study screen renders for the current position.
type Card struct {
	Question bank.Question

	// Position is 0-based within the working set; Total is its length.
	Position int
	Total    int

	// GlobalIndex is the question's 0-based position in bank order.
	GlobalIndex int

	Favorite bool

	// Status is the self-assessment verdict; Marked is false when unmarked.
	Status selfeval.Result
	Marked bool

	// Locked is set when the gate refuses the question. Its text must not be
	// shown.
	Locked bool

	Filter filter.Filter
}

// AtStart reports whether Prev would be a no-op.
func (c Card) AtStart() bool { return c.Position == 0 }

// AtEnd reports whether Next would be a no-op.
func (c Card) AtEnd() bool { return c.Position >= c.Total-1 }
