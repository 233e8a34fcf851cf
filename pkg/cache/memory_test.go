package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache[string](time.Minute, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", "1", 0)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 1, c.Len())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.Set("b", "2", 0)
	c.Flush()
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache[int](time.Minute, time.Minute)
	c.Set("short", 1, time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
}

func TestMemoryCacheGetOrLoad(t *testing.T) {
	c := NewMemoryCache[string](time.Minute, time.Minute)
	calls := 0
	load := func() (string, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", 0, load)
		require.NoError(t, err)
		assert.Equal(t, "loaded", v)
	}
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err := c.GetOrLoad("bad", 0, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("bad")
	assert.False(t, ok)
}
