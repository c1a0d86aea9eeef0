package favorites

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seiyeolo/park-golf-master/internal/store"
)

func load(t *testing.T, kv store.KV) *Tracker {
	t.Helper()
	tr, err := Load(context.Background(), kv, "kim", zerolog.Nop())
	require.NoError(t, err)
	return tr
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	tr := load(t, store.NewMemory())

	on, err := tr.Toggle(ctx, 4)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, tr.Has(4))

	on, err = tr.Toggle(ctx, 4)
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, tr.Has(4))
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	ctx := context.Background()
	tr := load(t, store.NewMemory())
	for _, id := range []int{3, 1, 8} {
		_, err := tr.Toggle(ctx, id)
		require.NoError(t, err)
	}
	before := tr.IDs()

	for _, id := range []int{1, 9} {
		_, _ = tr.Toggle(ctx, id)
		_, _ = tr.Toggle(ctx, id)
		assert.ElementsMatch(t, before, tr.IDs(), "toggle(%d) twice", id)
	}
}

func TestToggle_PersistsInAddOrder(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	tr := load(t, kv)

	for _, id := range []int{7, 2, 5} {
		_, err := tr.Toggle(ctx, id)
		require.NoError(t, err)
	}
	_, err := tr.Toggle(ctx, 2)
	require.NoError(t, err)

	raw, ok, _ := kv.Get(ctx, store.User("kim", store.KeyFavorites))
	require.True(t, ok)
	assert.JSONEq(t, `[7,5]`, raw)

	again := load(t, kv)
	assert.Equal(t, []int{7, 5}, again.IDs())
	assert.Equal(t, 2, again.Len())
}

func TestLoad_Recovery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"malformed", `[1,2`, []int{}},
		{"object instead of array", `{"ids":[1]}`, []int{}},
		{"duplicates collapsed", `[3,3,1]`, []int{3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			_ = kv.Set(context.Background(), store.User("kim", store.KeyFavorites), tt.raw)
			assert.Equal(t, tt.want, load(t, kv).IDs())
		})
	}
}

func TestLoad_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	kim := load(t, kv)
	_, _ = kim.Toggle(ctx, 1)

	lee, err := Load(ctx, kv, "lee", zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, lee.Len())
}
