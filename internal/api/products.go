package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"prodtrack/internal/products"
)

type Products struct {
	c *Client
}

type ProductFilter struct {
	Search       string
	CategoryCode string
	IsActive     *bool
	Page         PageParams
}

func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "category_code", f.CategoryCode)
	setBool(q, "is_active", f.IsActive)
	f.Page.apply(q)
	return q
}

func (p *Products) List(ctx context.Context, f ProductFilter) (List[products.Product], error) {
	var out List[products.Product]
	err := p.c.get(ctx, "/products", f.Query(), &out)
	return out, err
}

func (p *Products) Active(ctx context.Context, limit int) ([]products.Product, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	var out []products.Product
	err := p.c.get(ctx, "/products/active", q, &out)
	return out, err
}

// Search is the typeahead endpoint: free-text q, small limit.
func (p *Products) Search(ctx context.Context, query string, limit int) ([]products.Product, error) {
	q := url.Values{"q": []string{query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []products.Product
	err := p.c.get(ctx, "/products/search", q, &out)
	return out, err
}

func (p *Products) Stats(ctx context.Context) (products.Stats, error) {
	var out products.Stats
	err := p.c.get(ctx, "/products/stats", nil, &out)
	return out, err
}

func (p *Products) Get(ctx context.Context, id int) (products.Product, error) {
	var out products.Product
	err := p.c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &out)
	return out, err
}

func (p *Products) GetByNumber(ctx context.Context, itemNumber string) (products.Product, error) {
	var out products.Product
	err := p.c.get(ctx, "/products/by-number/"+url.PathEscape(itemNumber), nil, &out)
	return out, err
}

func (p *Products) Create(ctx context.Context, in products.CreateProduct) (products.Product, error) {
	var out products.Product
	err := p.c.post(ctx, "/products", in, &out)
	return out, err
}

func (p *Products) Update(ctx context.Context, id int, in products.UpdateProduct) (products.Product, error) {
	var out products.Product
	err := p.c.put(ctx, fmt.Sprintf("/products/%d", id), in, &out)
	return out, err
}

func (p *Products) Delete(ctx context.Context, id int) error {
	return p.c.delete(ctx, fmt.Sprintf("/products/%d", id))
}

func (p *Products) Activate(ctx context.Context, id int) (products.Product, error) {
	var out products.Product
	err := p.c.post(ctx, fmt.Sprintf("/products/%d/activate", id), nil, &out)
	return out, err
}

func (p *Products) Deactivate(ctx context.Context, id int) (products.Product, error) {
	var out products.Product
	err := p.c.post(ctx, fmt.Sprintf("/products/%d/deactivate", id), nil, &out)
	return out, err
}
