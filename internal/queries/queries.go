// Package queries binds the resource accessors to the query cache: reads
// are memoized and deduplicated, mutations pass straight through and then
// invalidate the affected query groups so the next read refetches.
//
// No optimistic updates: consumers only ever see server-confirmed state.
package queries

import (
	"context"

	"prodtrack/internal/api"
	"prodtrack/internal/cache"
)

// Service is the cache/sync layer. Build one per client session and tear it
// down with the session; inject it into whatever renders the data.
type Service struct {
	Departments *DepartmentQueries
	Products    *ProductQueries
	Orders      *OrderQueries
}

func NewService(client *api.Client, c *cache.Cache) *Service {
	return &Service{
		Departments: &DepartmentQueries{api: client.Departments, cache: c},
		Products:    &ProductQueries{api: client.Products, cache: c},
		Orders:      &OrderQueries{api: client.Orders, cache: c},
	}
}

// fetchRead wraps a read with the single connectivity retry. Mutations are
// never retried; a duplicated side effect is worse than a failed call.
func fetchRead[T any](ctx context.Context, c *cache.Cache, key cache.Key, fn func(ctx context.Context) (T, error)) (T, error) {
	return cache.Fetch(ctx, c, key, func(ctx context.Context) (T, error) {
		out, err := fn(ctx)
		if err != nil && api.IsConnError(err) {
			return fn(ctx)
		}
		return out, err
	})
}

func invalidate(ctx context.Context, c *cache.Cache, resource string) {
	// Invalidation failure only costs freshness on a hit; the mutation
	// itself already succeeded.
	_ = c.Invalidate(ctx, cache.GroupsFor(resource)...)
}
