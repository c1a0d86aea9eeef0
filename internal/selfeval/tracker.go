package selfeval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

// Result is a self-assessment verdict.
type Result int

const (
	Known Result = iota + 1
	Unknown
)

// ErrInvalidResult is returned for results other than Known and Unknown.
var ErrInvalidResult = errors.New("invalid self-assessment result")

func (r Result) String() string {
	switch r {
	case Known:
		return "known"
	case Unknown:
		return "unknown"
	default:
		return "unmarked"
	}
}

// ParseResult parses "known" or "unknown".
func ParseResult(s string) (Result, error) {
	switch s {
	case "known":
		return Known, nil
	case "unknown":
		return Unknown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidResult, s)
}

// record is the persisted shape.
type record struct {
	Known   []int `json:"known"`
	Unknown []int `json:"unknown"`
}

// Tracker holds one user's known and unknown sets. The sets are disjoint:
// every mutation moves an id between them in one step.
type Tracker struct {
	kv        store.KV
	key       store.Key
	logger    zerolog.Logger
	known     map[int]struct{}
	unknown   map[int]struct{}
	listeners []func()
}

// Load reads user's self-assessment record. A missing, unreadable or
// malformed record yields empty sets; the error is only logged.
func Load(ctx context.Context, kv store.KV, user string, logger zerolog.Logger) (*Tracker, error) {
	if user == "" {
		return nil, store.ErrEmptyNamespace
	}
	t := &Tracker{
		kv:      kv,
		key:     store.User(user, store.KeySelfEval),
		logger:  logger,
		known:   make(map[int]struct{}),
		unknown: make(map[int]struct{}),
	}

	raw, ok, err := kv.Get(ctx, t.key)
	if err != nil {
		logger.Warn().Err(err).Str("key", t.key.String()).Msg("read self-assessment failed, starting empty")
		return t, nil
	}
	if !ok {
		return t, nil
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		logger.Warn().Err(err).Str("key", t.key.String()).Msg("malformed self-assessment record, starting empty")
		return t, nil
	}
	for _, id := range rec.Unknown {
		t.unknown[id] = struct{}{}
	}
	for _, id := range rec.Known {
		if _, both := t.unknown[id]; both {
			logger.Warn().Int("id", id).Msg("id marked both known and unknown, keeping unknown")
			continue
		}
		t.known[id] = struct{}{}
	}
	return t, nil
}

// OnChange registers fn to run after every mutation.
func (t *Tracker) OnChange(fn func()) {
	t.listeners = append(t.listeners, fn)
}

// Mark records result for id, removing it from the opposite set. The
// in-memory sets change together before the single persisted write.
func (t *Tracker) Mark(ctx context.Context, id int, result Result) error {
	switch result {
	case Known:
		delete(t.unknown, id)
		t.known[id] = struct{}{}
	case Unknown:
		delete(t.known, id)
		t.unknown[id] = struct{}{}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidResult, int(result))
	}
	t.notify()
	return t.persist(ctx)
}

// Reset empties both sets and removes the persisted record.
func (t *Tracker) Reset(ctx context.Context) error {
	t.known = make(map[int]struct{})
	t.unknown = make(map[int]struct{})
	t.notify()
	if err := t.kv.Remove(ctx, t.key); err != nil {
		return fmt.Errorf("reset self-assessment: %w", err)
	}
	return nil
}

// Status returns the verdict for id, or false when unmarked.
func (t *Tracker) Status(id int) (Result, bool) {
	if _, ok := t.known[id]; ok {
		return Known, true
	}
	if _, ok := t.unknown[id]; ok {
		return Unknown, true
	}
	return 0, false
}

// IsKnown reports whether id is in the known set.
func (t *Tracker) IsKnown(id int) bool {
	_, ok := t.known[id]
	return ok
}

// IsUnknown reports whether id is in the unknown set.
func (t *Tracker) IsUnknown(id int) bool {
	_, ok := t.unknown[id]
	return ok
}

// Known returns the known ids in ascending order.
func (t *Tracker) Known() []int { return sortedIDs(t.known) }

// Unknown returns the unknown ids in ascending order.
func (t *Tracker) Unknown() []int { return sortedIDs(t.unknown) }

// KnownCount returns |known|.
func (t *Tracker) KnownCount() int { return len(t.known) }

// UnknownCount returns |unknown|.
func (t *Tracker) UnknownCount() int { return len(t.unknown) }

// StudiedCount returns |known| + |unknown|.
func (t *Tracker) StudiedCount() int {
	return len(t.known) + len(t.unknown)
}

func (t *Tracker) notify() {
	for _, fn := range t.listeners {
		fn()
	}
}

func (t *Tracker) persist(ctx context.Context) error {
	data, err := json.Marshal(record{Known: t.Known(), Unknown: t.Unknown()})
	if err != nil {
		return fmt.Errorf("marshal self-assessment: %w", err)
	}
	if err := t.kv.Set(ctx, t.key, string(data)); err != nil {
		return fmt.Errorf("write self-assessment: %w", err)
	}
	return nil
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
