package cache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 5 * time.Minute

// Cache fronts a Store with in-flight deduplication: concurrent identical
// queries collapse into a single underlying fetch.
type Cache struct {
	store Store
	ttl   time.Duration
	group singleflight.Group
}

func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// Do returns the cached value for key or runs fetch and memoizes its
// result. Store errors degrade to a plain fetch; a broken cache must not
// take reads down with it.
func (c *Cache) Do(ctx context.Context, key Key, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	ks := key.String()
	if val, ok, err := c.store.Get(ctx, ks); err == nil && ok {
		return val, nil
	}

	val, err, _ := c.group.Do(ks, func() (any, error) {
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.store.Set(ctx, ks, fetched, c.ttl)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]byte), nil
}

// Invalidate drops every entry under the given group prefixes.
func (c *Cache) Invalidate(ctx context.Context, groups ...string) error {
	for _, g := range groups {
		if err := c.store.DeletePrefix(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// Fetch is the typed wrapper over Do: results round-trip through JSON so
// the Store can stay byte-oriented.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	raw, err := c.Do(ctx, key, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, err
	}
	return out, nil
}
