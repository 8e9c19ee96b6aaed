package api

import (
	"context"
	"fmt"
	"net/url"

	"prodtrack/internal/orders"
)

type Orders struct {
	c *Client
}

type OrderFilter struct {
	Search       string
	Status       orders.Status
	DepartmentID int
	ProductID    int
	Priority     orders.Priority
	Overdue      *bool
	Page         PageParams
}

func (f OrderFilter) Query() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setStr(q, "status", string(f.Status))
	setInt(q, "department_id", f.DepartmentID)
	setInt(q, "product_id", f.ProductID)
	setStr(q, "priority", string(f.Priority))
	setBool(q, "overdue", f.Overdue)
	f.Page.apply(q)
	return q
}

func (o *Orders) List(ctx context.Context, f OrderFilter) (List[orders.Order], error) {
	var out List[orders.Order]
	err := o.c.get(ctx, "/orders", f.Query(), &out)
	return out, err
}

// Active returns pending and in_progress orders, newest first.
func (o *Orders) Active(ctx context.Context, limit int) ([]orders.Order, error) {
	q := url.Values{}
	setInt(q, "limit", limit)
	var out []orders.Order
	err := o.c.get(ctx, "/orders/active", q, &out)
	return out, err
}

func (o *Orders) Overdue(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	err := o.c.get(ctx, "/orders/overdue", nil, &out)
	return out, err
}

func (o *Orders) Stats(ctx context.Context) (orders.Stats, error) {
	var out orders.Stats
	err := o.c.get(ctx, "/orders/stats", nil, &out)
	return out, err
}

func (o *Orders) Get(ctx context.Context, id int) (orders.Order, error) {
	var out orders.Order
	err := o.c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out, err
}

func (o *Orders) GetWithDetails(ctx context.Context, id int) (orders.OrderWithDetails, error) {
	var out orders.OrderWithDetails
	err := o.c.get(ctx, fmt.Sprintf("/orders/%d/with-details", id), nil, &out)
	return out, err
}

func (o *Orders) GetByNumber(ctx context.Context, orderNumber string) (orders.Order, error) {
	var out orders.Order
	err := o.c.get(ctx, "/orders/by-number/"+url.PathEscape(orderNumber), nil, &out)
	return out, err
}

func (o *Orders) Create(ctx context.Context, in orders.CreateOrder) (orders.Order, error) {
	var out orders.Order
	err := o.c.post(ctx, "/orders", in, &out)
	return out, err
}

func (o *Orders) Update(ctx context.Context, id int, in orders.UpdateOrder) (orders.Order, error) {
	var out orders.Order
	err := o.c.put(ctx, fmt.Sprintf("/orders/%d", id), in, &out)
	return out, err
}

func (o *Orders) Delete(ctx context.Context, id int) error {
	return o.c.delete(ctx, fmt.Sprintf("/orders/%d", id))
}

// Transition endpoints. Each is a dedicated call the server accepts only
// from the matching source status; an invalid transition surfaces as an
// *APIError with the server's message.
func (o *Orders) Start(ctx context.Context, id int) (orders.Order, error) {
	var out orders.Order
	err := o.c.post(ctx, fmt.Sprintf("/orders/%d/start", id), nil, &out)
	return out, err
}

func (o *Orders) Complete(ctx context.Context, id int) (orders.Order, error) {
	var out orders.Order
	err := o.c.post(ctx, fmt.Sprintf("/orders/%d/complete", id), nil, &out)
	return out, err
}

func (o *Orders) Cancel(ctx context.Context, id int, reason string) (orders.Order, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	var out orders.Order
	err := o.c.post(ctx, fmt.Sprintf("/orders/%d/cancel", id), body, &out)
	return out, err
}

func (o *Orders) Reopen(ctx context.Context, id int) (orders.Order, error) {
	var out orders.Order
	err := o.c.post(ctx, fmt.Sprintf("/orders/%d/reopen", id), nil, &out)
	return out, err
}

type bulkStatusReq struct {
	OrderIDs []int         `json:"order_ids"`
	Status   orders.Status `json:"status"`
}

type bulkDeleteReq struct {
	OrderIDs []int `json:"order_ids"`
}

// BulkUpdateStatus applies one status to a set of orders in a single
// request. Partial-failure semantics are the server's; callers only see the
// aggregate outcome.
func (o *Orders) BulkUpdateStatus(ctx context.Context, ids []int, status orders.Status) ([]orders.Order, error) {
	var out []orders.Order
	err := o.c.post(ctx, "/orders/bulk/update-status", bulkStatusReq{OrderIDs: ids, Status: status}, &out)
	return out, err
}

func (o *Orders) BulkDelete(ctx context.Context, ids []int) error {
	return o.c.post(ctx, "/orders/bulk/delete", bulkDeleteReq{OrderIDs: ids}, nil)
}
