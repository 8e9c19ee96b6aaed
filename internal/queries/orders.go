package queries

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"prodtrack/internal/api"
	"prodtrack/internal/cache"
	"prodtrack/internal/orders"
)

const resourceOrders = "orders"

type OrderQueries struct {
	api   *api.Orders
	cache *cache.Cache
}

func (q *OrderQueries) List(ctx context.Context, f api.OrderFilter) (api.List[orders.Order], error) {
	key := cache.ParamsKey(resourceOrders, "list", f.Query())
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (api.List[orders.Order], error) {
		return q.api.List(ctx, f)
	})
}

func (q *OrderQueries) Active(ctx context.Context, limit int) ([]orders.Order, error) {
	key := cache.ParamsKey(resourceOrders, "active", url.Values{"limit": []string{strconv.Itoa(limit)}})
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) ([]orders.Order, error) {
		return q.api.Active(ctx, limit)
	})
}

func (q *OrderQueries) Overdue(ctx context.Context) ([]orders.Order, error) {
	key := cache.NewKey(resourceOrders, "list", "overdue")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) ([]orders.Order, error) {
		return q.api.Overdue(ctx)
	})
}

func (q *OrderQueries) Stats(ctx context.Context) (orders.Stats, error) {
	key := cache.NewKey(resourceOrders, "stats", "")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (orders.Stats, error) {
		return q.api.Stats(ctx)
	})
}

func (q *OrderQueries) Get(ctx context.Context, id int) (orders.Order, error) {
	key := cache.NewKey(resourceOrders, "detail", strconv.Itoa(id))
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (orders.Order, error) {
		return q.api.Get(ctx, id)
	})
}

func (q *OrderQueries) GetWithDetails(ctx context.Context, id int) (orders.OrderWithDetails, error) {
	key := cache.NewKey(resourceOrders, "detail", strconv.Itoa(id)+":expanded")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (orders.OrderWithDetails, error) {
		return q.api.GetWithDetails(ctx, id)
	})
}

func (q *OrderQueries) GetByNumber(ctx context.Context, orderNumber string) (orders.Order, error) {
	key := cache.NewKey(resourceOrders, "detail", "num:"+orderNumber)
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (orders.Order, error) {
		return q.api.GetByNumber(ctx, orderNumber)
	})
}

func (q *OrderQueries) Create(ctx context.Context, in orders.CreateOrder) (orders.Order, error) {
	out, err := q.api.Create(ctx, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return out, nil
}

func (q *OrderQueries) Update(ctx context.Context, id int, in orders.UpdateOrder) (orders.Order, error) {
	out, err := q.api.Update(ctx, id, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return out, nil
}

func (q *OrderQueries) Delete(ctx context.Context, id int) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return nil
}

// transition runs one lifecycle call with its client-side guard: when the
// current status is known and the move is invalid we refuse locally instead
// of bouncing off the server.
func (q *OrderQueries) transition(ctx context.Context, id int, want orders.Status, call func(ctx context.Context) (orders.Order, error)) (orders.Order, error) {
	if cur, err := q.Get(ctx, id); err == nil {
		if !orders.CanTransition(cur.Status, want) {
			return orders.Order{}, fmt.Errorf("%w: %s -> %s", orders.ErrInvalidTransition, cur.Status, want)
		}
	}
	out, err := call(ctx)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return out, nil
}

func (q *OrderQueries) Start(ctx context.Context, id int) (orders.Order, error) {
	return q.transition(ctx, id, orders.StatusInProgress, func(ctx context.Context) (orders.Order, error) {
		return q.api.Start(ctx, id)
	})
}

func (q *OrderQueries) Complete(ctx context.Context, id int) (orders.Order, error) {
	return q.transition(ctx, id, orders.StatusCompleted, func(ctx context.Context) (orders.Order, error) {
		return q.api.Complete(ctx, id)
	})
}

func (q *OrderQueries) Cancel(ctx context.Context, id int, reason string) (orders.Order, error) {
	return q.transition(ctx, id, orders.StatusCancelled, func(ctx context.Context) (orders.Order, error) {
		return q.api.Cancel(ctx, id, reason)
	})
}

func (q *OrderQueries) Reopen(ctx context.Context, id int) (orders.Order, error) {
	return q.transition(ctx, id, orders.StatusPending, func(ctx context.Context) (orders.Order, error) {
		return q.api.Reopen(ctx, id)
	})
}

func (q *OrderQueries) BulkUpdateStatus(ctx context.Context, ids []int, status orders.Status) ([]orders.Order, error) {
	out, err := q.api.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return out, nil
}

func (q *OrderQueries) BulkDelete(ctx context.Context, ids []int) error {
	if err := q.api.BulkDelete(ctx, ids); err != nil {
		return err
	}
	invalidate(ctx, q.cache, resourceOrders)
	return nil
}
