package queries

import (
	"context"
	"net/url"
	"strconv"

	"prodtrack/internal/api"
	"prodtrack/internal/cache"
	"prodtrack/internal/products"
)

const resourceProducts = "products"

type ProductQueries struct {
	api   *api.Products
	cache *cache.Cache
}

func (q *ProductQueries) List(ctx context.Context, f api.ProductFilter) (api.List[products.Product], error) {
	key := cache.ParamsKey(resourceProducts, "list", f.Query())
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (api.List[products.Product], error) {
		return q.api.List(ctx, f)
	})
}

func (q *ProductQueries) Active(ctx context.Context, limit int) ([]products.Product, error) {
	key := cache.ParamsKey(resourceProducts, "active", url.Values{"limit": []string{strconv.Itoa(limit)}})
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) ([]products.Product, error) {
		return q.api.Active(ctx, limit)
	})
}

// Search results are not cached: typeahead queries churn too fast for
// memoization to pay off.
func (q *ProductQueries) Search(ctx context.Context, query string, limit int) ([]products.Product, error) {
	return q.api.Search(ctx, query, limit)
}

func (q *ProductQueries) Stats(ctx context.Context) (products.Stats, error) {
	key := cache.NewKey(resourceProducts, "stats", "")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (products.Stats, error) {
		return q.api.Stats(ctx)
	})
}

func (q *ProductQueries) Get(ctx context.Context, id int) (products.Product, error) {
	key := cache.NewKey(resourceProducts, "detail", strconv.Itoa(id))
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (products.Product, error) {
		return q.api.Get(ctx, id)
	})
}

func (q *ProductQueries) GetByNumber(ctx context.Context, itemNumber string) (products.Product, error) {
	key := cache.NewKey(resourceProducts, "detail", "num:"+itemNumber)
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (products.Product, error) {
		return q.api.GetByNumber(ctx, itemNumber)
	})
}

func (q *ProductQueries) Create(ctx context.Context, in products.CreateProduct) (products.Product, error) {
	out, err := q.api.Create(ctx, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceProducts)
	return out, nil
}

func (q *ProductQueries) Update(ctx context.Context, id int, in products.UpdateProduct) (products.Product, error) {
	out, err := q.api.Update(ctx, id, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceProducts)
	return out, nil
}

func (q *ProductQueries) Delete(ctx context.Context, id int) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, q.cache, resourceProducts)
	return nil
}

func (q *ProductQueries) Activate(ctx context.Context, id int) (products.Product, error) {
	out, err := q.api.Activate(ctx, id)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceProducts)
	return out, nil
}

func (q *ProductQueries) Deactivate(ctx context.Context, id int) (products.Product, error) {
	out, err := q.api.Deactivate(ctx, id)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceProducts)
	return out, nil
}
