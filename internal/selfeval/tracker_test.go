package selfeval

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

// failingKV fails every call.
type failingKV struct{}

var errDisk = errors.New("disk gone")

func (failingKV) Get(context.Context, store.Key) (string, bool, error) { return "", false, errDisk }
func (failingKV) Set(context.Context, store.Key, string) error         { return errDisk }
func (failingKV) Remove(context.Context, store.Key) error              { return errDisk }
func (failingKV) Namespaces(context.Context) ([]string, error)         { return nil, errDisk }

func load(t *testing.T, kv store.KV) *Tracker {
	t.Helper()
	tr, err := Load(context.Background(), kv, "kim", zerolog.Nop())
	require.NoError(t, err)
	return tr
}

func assertDisjoint(t *testing.T, tr *Tracker) {
	t.Helper()
	for _, id := range tr.Known() {
		assert.False(t, tr.IsUnknown(id), "id %d in both sets", id)
	}
}

func TestMark_MovesBetweenSets(t *testing.T) {
	ctx := context.Background()
	tr := load(t, store.NewMemory())

	require.NoError(t, tr.Mark(ctx, 3, Unknown))
	assert.Equal(t, []int{3}, tr.Unknown())
	assert.Empty(t, tr.Known())

	require.NoError(t, tr.Mark(ctx, 3, Known))
	assert.Equal(t, []int{3}, tr.Known())
	assert.Empty(t, tr.Unknown())
	assertDisjoint(t, tr)

	res, ok := tr.Status(3)
	assert.True(t, ok)
	assert.Equal(t, Known, res)
}

func TestMark_Idempotent(t *testing.T) {
	ctx := context.Background()
	tr := load(t, store.NewMemory())

	require.NoError(t, tr.Mark(ctx, 5, Known))
	once := [2][]int{tr.Known(), tr.Unknown()}
	require.NoError(t, tr.Mark(ctx, 5, Known))
	twice := [2][]int{tr.Known(), tr.Unknown()}

	assert.Equal(t, once, twice)
}

func TestMark_InvalidResult(t *testing.T) {
	tr := load(t, store.NewMemory())

	err := tr.Mark(context.Background(), 1, Result(9))
	assert.ErrorIs(t, err, ErrInvalidResult)
	_, ok := tr.Status(1)
	assert.False(t, ok)
}

func TestMark_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := load(t, kv)

	require.NoError(t, tr.Mark(ctx, 2, Unknown))
	require.NoError(t, tr.Mark(ctx, 4, Unknown))
	require.NoError(t, tr.Mark(ctx, 1, Known))

	raw, ok, _ := kv.Get(ctx, store.User("kim", store.KeySelfEval))
	require.True(t, ok)
	assert.JSONEq(t, `{"known":[1],"unknown":[2,4]}`, raw)

	again := load(t, kv)
	assert.Equal(t, []int{1}, again.Known())
	assert.Equal(t, []int{2, 4}, again.Unknown())
	assert.Equal(t, 3, again.StudiedCount())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	_ = kv.Set(ctx, store.User("kim", store.KeyFavorites), "[1]")
	tr := load(t, kv)

	require.NoError(t, tr.Mark(ctx, 1, Known))
	require.NoError(t, tr.Mark(ctx, 2, Unknown))
	require.NoError(t, tr.Reset(ctx))

	assert.Zero(t, tr.StudiedCount())
	_, ok, _ := kv.Get(ctx, store.User("kim", store.KeySelfEval))
	assert.False(t, ok, "persisted record must be removed")
	_, ok, _ = kv.Get(ctx, store.User("kim", store.KeyFavorites))
	assert.True(t, ok, "reset must not touch favorites")
}

func TestOnChange_FiresOnEveryMutation(t *testing.T) {
	ctx := context.Background()
	tr := load(t, store.NewMemory())

	calls := 0
	tr.OnChange(func() { calls++ })

	require.NoError(t, tr.Mark(ctx, 1, Unknown))
	require.NoError(t, tr.Mark(ctx, 1, Known))
	require.NoError(t, tr.Reset(ctx))

	assert.Equal(t, 3, calls)
}

func TestLoad_Recovery(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantKnown   []int
		wantUnknown []int
	}{
		{"malformed", `{"known":[1,`, []int{}, []int{}},
		{"wrong shape", `[1,2,3]`, []int{}, []int{}},
		{"overlap keeps unknown", `{"known":[1,2],"unknown":[2,3]}`, []int{1}, []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			_ = kv.Set(context.Background(), store.User("kim", store.KeySelfEval), tt.raw)

			tr := load(t, kv)
			assert.Equal(t, tt.wantKnown, tr.Known())
			assert.Equal(t, tt.wantUnknown, tr.Unknown())
			assertDisjoint(t, tr)
		})
	}
}

func TestLoad_ReadFailureStartsEmpty(t *testing.T) {
	tr := load(t, failingKV{})
	assert.Zero(t, tr.StudiedCount())

	// Writes still surface their errors, but memory state is applied.
	err := tr.Mark(context.Background(), 1, Unknown)
	assert.ErrorIs(t, err, errDisk)
	assert.True(t, tr.IsUnknown(1))
}

func TestLoad_EmptyUser(t *testing.T) {
	_, err := Load(context.Background(), store.NewMemory(), "", zerolog.Nop())
	assert.ErrorIs(t, err, store.ErrEmptyNamespace)
}

func TestParseResult(t *testing.T) {
	r, err := ParseResult("known")
	require.NoError(t, err)
	assert.Equal(t, Known, r)

	r, err = ParseResult("unknown")
	require.NoError(t, err)
	assert.Equal(t, Unknown, r)

	_, err = ParseResult("maybe")
	assert.ErrorIs(t, err, ErrInvalidResult)

	assert.Equal(t, "unmarked", Result(0).String())
}
