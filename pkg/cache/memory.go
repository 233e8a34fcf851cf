package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration = 10 * time.Minute
	CleanupInterval   = 30 * time.Minute
)

type MemoryCache[T any] struct {
	c *gocache.Cache
}

var _ Cache[string] = (*MemoryCache[string])(nil)

func NewMemoryCache[T any](defaultExpiration, cleanupInterval time.Duration) *MemoryCache[T] {
	return &MemoryCache[T]{
		c: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (m *MemoryCache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	m.c.Set(key, value, ttl)
}

func (m *MemoryCache[T]) Get(key string) (T, bool) {
	val, found := m.c.Get(key)
	if !found {
		var zero T
		return zero, false
	}
	v, ok := val.(T)
	return v, ok
}

func (m *MemoryCache[T]) GetOrLoad(key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	m.Set(key, v, ttl)
	return v, nil
}

func (m *MemoryCache[T]) Delete(key string) {
	m.c.Delete(key)
}

// Len 当前条目数 (可能包含尚未清理的过期条目)
func (m *MemoryCache[T]) Len() int {
	return m.c.ItemCount()
}

func (m *MemoryCache[T]) Flush() {
	m.c.Flush()
}
