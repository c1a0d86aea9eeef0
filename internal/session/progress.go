package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seiyeolo/park-golf-master/internal/filter"
)

// progress is the persisted session record.
type progress struct {
	CurrentIndex     int     `json:"currentIndex"`
	SelectedCategory *string `json:"selectedCategory"`
	LastStudied      string  `json:"lastStudied"`
}

// restore reads the saved position. Anything unreadable yields the defaults:
// index 0 over the whole bank.
func (c *Controller) restore(ctx context.Context) (filter.Filter, int) {
	raw, ok, err := c.kv.Get(ctx, c.progressKey)
	if err != nil {
		c.logger.Warn().Err(err).Msg("read progress failed, starting at the beginning")
		return filter.All(), 0
	}
	if !ok {
		return filter.All(), 0
	}

	var p progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		c.logger.Warn().Err(err).Msg("malformed progress record, starting at the beginning")
		return filter.All(), 0
	}

	f := filter.FromSelection(c.bank, p.SelectedCategory)
	if p.SelectedCategory != nil && f.Kind() == filter.KindAll {
		c.logger.Warn().Str("category", *p.SelectedCategory).Msg("saved category no longer exists, showing all")
	}
	return f, p.CurrentIndex
}

func (c *Controller) saveProgress(ctx context.Context) error {
	p := progress{
		CurrentIndex:     c.index,
		SelectedCategory: c.filter.Selection(),
		LastStudied:      c.now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := c.kv.Set(ctx, c.progressKey, string(data)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// LastStudied returns the timestamp of the last saved position, if any.
func (c *Controller) LastStudied(ctx context.Context) (time.Time, bool) {
	raw, ok, err := c.kv.Get(ctx, c.progressKey)
	if err != nil || !ok {
		return time.Time{}, false
	}
	var p progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, p.LastStudied)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
