package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

// Tracker is one user's favorite question ids, kept in the order they were
// added.
type Tracker struct {
	kv     store.KV
	key    store.Key
	logger zerolog.Logger
	ids    []int
	set    map[int]struct{}
}

// Load reads user's favorites. Missing or malformed data yields an empty set.
func Load(ctx context.Context, kv store.KV, user string, logger zerolog.Logger) (*Tracker, error) {
	if user == "" {
		return nil, store.ErrEmptyNamespace
	}
	t := &Tracker{
		kv:     kv,
		key:    store.User(user, store.KeyFavorites),
		logger: logger,
		set:    make(map[int]struct{}),
	}

	raw, ok, err := kv.Get(ctx, t.key)
	if err != nil {
		logger.Warn().Err(err).Str("key", t.key.String()).Msg("read favorites failed, starting empty")
		return t, nil
	}
	if !ok {
		return t, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn().Err(err).Str("key", t.key.String()).Msg("malformed favorites record, starting empty")
		return t, nil
	}
	for _, id := range ids {
		if _, dup := t.set[id]; dup {
			continue
		}
		t.set[id] = struct{}{}
		t.ids = append(t.ids, id)
	}
	return t, nil
}

// Toggle flips id's membership and reports whether it is now a favorite.
func (t *Tracker) Toggle(ctx context.Context, id int) (bool, error) {
	_, had := t.set[id]
	if had {
		delete(t.set, id)
		for i, v := range t.ids {
			if v == id {
				t.ids = append(t.ids[:i], t.ids[i+1:]...)
				break
			}
		}
	} else {
		t.set[id] = struct{}{}
		t.ids = append(t.ids, id)
	}

	data, err := json.Marshal(t.IDs())
	if err != nil {
		return !had, fmt.Errorf("marshal favorites: %w", err)
	}
	if err := t.kv.Set(ctx, t.key, string(data)); err != nil {
		return !had, fmt.Errorf("write favorites: %w", err)
	}
	return !had, nil
}

// Has reports whether id is a favorite.
func (t *Tracker) Has(id int) bool {
	_, ok := t.set[id]
	return ok
}

// IDs returns the favorites in the order they were added.
func (t *Tracker) IDs() []int {
	out := make([]int, len(t.ids))
	copy(out, t.ids)
	return out
}

// Len returns the number of favorites.
func (t *Tracker) Len() int {
	return len(t.ids)
}
