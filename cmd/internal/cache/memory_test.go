package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock позволяет двигать время вручную
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMemoryCache() (*MemoryCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache()
	c.now = clock.Now
	return c, clock
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestMemoryCache()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	value, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	clock.Advance(time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires exactly at its TTL")
}

func TestMemoryCache_StoresCopies(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestMemoryCache()

	original := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", original, time.Minute))
	original[0] = 'x'

	value, _, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), value)

	value[1] = 'y'
	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryCache_DeleteAndSweep(t *testing.T) {
	ctx := context.Background()
	c, clock := newTestMemoryCache()

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))
	require.NoError(t, c.Set(ctx, "gone", []byte("3"), time.Hour))
	require.NoError(t, c.Delete(ctx, "gone"))

	clock.Advance(time.Minute)
	assert.Equal(t, 1, c.Sweep())

	_, ok, _ := c.Get(ctx, "long")
	assert.True(t, ok)
	_, ok, _ = c.Get(ctx, "gone")
	assert.False(t, ok)
}
