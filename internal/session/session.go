// Package session moves the learner through the working set: stepping,
// random jumps, lookups by id and filter changes, each checked against the
// access gate and saved as the user's progress.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/seiyeolo/park-golf-master/internal/bank"
	"github.com/seiyeolo/park-golf-master/internal/favorites"
	"github.com/seiyeolo/park-golf-master/internal/filter"
	"github.com/seiyeolo/park-golf-master/internal/gate"
	"github.com/seiyeolo/park-golf-master/internal/selfeval"
	"github.com/seiyeolo/park-golf-master/internal/store"
)

var (
	// ErrGateDenied is returned when a move would land on a locked question.
	// It matches gate.ErrDenied.
	ErrGateDenied = gate.ErrDenied
	// ErrQuestionNotFound is returned by SelectByID for ids not in the bank.
	ErrQuestionNotFound = errors.New("question not found")
)

// Rand draws uniformly from [0, n).
type Rand interface {
	IntN(n int) int
}

// Deps are the collaborators a Controller needs. Now and Rand are optional.
type Deps struct {
	Bank      *bank.Bank
	Gate      *gate.Gate
	SelfEval  *selfeval.Tracker
	Favorites *favorites.Tracker
	KV        store.KV
	User      string
	Logger    zerolog.Logger
	Now       func() time.Time
	Rand      Rand
}

// Controller owns the {filter, index} state for one user.
type Controller struct {
	bank        *bank.Bank
	gate        *gate.Gate
	eval        *selfeval.Tracker
	favs        *favorites.Tracker
	kv          store.KV
	progressKey store.Key
	logger      zerolog.Logger
	now         func() time.Time
	rng         Rand

	filter filter.Filter
	index  int
	ws     filter.WorkingSet
}

// Open restores the user's saved position and subscribes to self-assessment
// changes so the review set stays live.
func Open(ctx context.Context, d Deps) (*Controller, error) {
	if d.User == "" {
		return nil, store.ErrEmptyNamespace
	}
	if d.Bank == nil || d.Gate == nil || d.SelfEval == nil || d.Favorites == nil || d.KV == nil {
		return nil, errors.New("session: missing dependency")
	}

	c := &Controller{
		bank:        d.Bank,
		gate:        d.Gate,
		eval:        d.SelfEval,
		favs:        d.Favorites,
		kv:          d.KV,
		progressKey: store.User(d.User, store.KeyProgress),
		logger:      d.Logger,
		now:         d.Now,
		rng:         d.Rand,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	f, index := c.restore(ctx)
	c.set(f, index)
	c.eval.OnChange(c.recompute)
	return c, nil
}

// Filter returns the active filter.
func (c *Controller) Filter() filter.Filter { return c.filter }

// Index returns the current position within the working set.
func (c *Controller) Index() int { return c.index }

// WorkingSet returns the current working set.
func (c *Controller) WorkingSet() filter.WorkingSet { return c.ws }

// Card describes the current position. An empty working set returns
// filter.ErrEmptyWorkingSet.
func (c *Controller) Card() (Card, error) {
	gi, err := c.ws.GlobalIndex(c.index)
	if err != nil {
		return Card{Filter: c.filter}, err
	}
	q := c.bank.At(gi)
	status, marked := c.eval.Status(q.ID)
	return Card{
		Question:    q,
		Position:    c.index,
		Total:       c.ws.Len(),
		GlobalIndex: gi,
		Favorite:    c.favs.Has(q.ID),
		Status:      status,
		Marked:      marked,
		Locked:      !c.gate.Allows(gi),
		Filter:      c.filter,
	}, nil
}

// Next advances one position. It is a no-op at the end of the set.
func (c *Controller) Next(ctx context.Context) error {
	if c.ws.Empty() {
		return filter.ErrEmptyWorkingSet
	}
	if c.index >= c.ws.Len()-1 {
		return nil
	}
	gi, err := c.ws.GlobalIndex(c.index + 1)
	if err != nil {
		return err
	}
	if err := c.gate.Check(gi); err != nil {
		return err
	}
	return c.apply(ctx, c.filter, c.index+1)
}

// Prev steps back one position. It is a no-op at the start.
func (c *Controller) Prev(ctx context.Context) error {
	if c.ws.Empty() {
		return filter.ErrEmptyWorkingSet
	}
	if c.index == 0 {
		return nil
	}
	return c.apply(ctx, c.filter, c.index-1)
}

// Random jumps to a uniformly drawn position among those the gate allows.
func (c *Controller) Random(ctx context.Context) error {
	if c.ws.Empty() {
		return filter.ErrEmptyWorkingSet
	}
	var pool []int
	for pos, gi := range c.ws.GlobalIndices() {
		if c.gate.Allows(gi) {
			pool = append(pool, pos)
		}
	}
	if len(pool) == 0 {
		return fmt.Errorf("%w: no unlocked question in %v", ErrGateDenied, c.filter)
	}
	return c.apply(ctx, c.filter, pool[c.rng.IntN(len(pool))])
}

// SelectByID jumps to question id. When id is outside the working set the
// filter is cleared and the jump lands on its bank position.
func (c *Controller) SelectByID(ctx context.Context, id int) error {
	gi, ok := c.bank.GlobalIndexOf(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	if err := c.gate.Check(gi); err != nil {
		return err
	}
	if pos, ok := c.ws.PositionOf(id); ok {
		return c.apply(ctx, c.filter, pos)
	}
	return c.apply(ctx, filter.All(), gi)
}

// SelectFilter switches to f at its first position. The first position may
// be locked; Card reports that.
func (c *Controller) SelectFilter(ctx context.Context, f filter.Filter) error {
	return c.apply(ctx, f, 0)
}

// Evaluate records a self-assessment for id and advances once without a
// gate check. In review mode a question marked known leaves the set, so the
// position it vacated already holds the next one.
func (c *Controller) Evaluate(ctx context.Context, id int, result selfeval.Result) error {
	before := c.ws.Len()
	markErr := c.eval.Mark(ctx, id, result)
	if errors.Is(markErr, selfeval.ErrInvalidResult) {
		return markErr
	}

	index := c.index
	if c.ws.Len() == before && index < c.ws.Len()-1 {
		index++
	}
	return errors.Join(markErr, c.apply(ctx, c.filter, index))
}

// ToggleFavorite flips id's favorite flag and reports the new value.
func (c *Controller) ToggleFavorite(ctx context.Context, id int) (bool, error) {
	return c.favs.Toggle(ctx, id)
}

// ResetSelfEval clears every mark. In review mode the set becomes empty.
func (c *Controller) ResetSelfEval(ctx context.Context) error {
	resetErr := c.eval.Reset(ctx)
	return errors.Join(resetErr, c.apply(ctx, c.filter, c.index))
}

// apply commits a transition and saves it.
func (c *Controller) apply(ctx context.Context, f filter.Filter, index int) error {
	c.set(f, index)
	c.logger.Debug().Stringer("filter", f).Int("index", c.index).Msg("position changed")
	return c.saveProgress(ctx)
}

func (c *Controller) set(f filter.Filter, index int) {
	c.filter = f
	c.ws = filter.Derive(c.bank, f, c.eval)
	c.index = clamp(index, c.ws.Len())
}

// recompute refreshes the working set after the unknown set changed.
func (c *Controller) recompute() {
	c.set(c.filter, c.index)
}

func clamp(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
