package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodtrack/internal/orders"
	"prodtrack/internal/products"
)

// stubERP is a minimal in-memory rendition of the server contract, just
// enough for the accessor tests.
type stubERP struct {
	products map[int]products.Product
	orders   map[int]orders.Order
	nextID   int

	lastQuery  map[string]string
	lastCancel map[string]string
}

func newStubERP() *stubERP {
	return &stubERP{
		products: map[int]products.Product{},
		orders:   map[int]orders.Order{},
		nextID:   1,
	}
}

func (s *stubERP) router() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/products", func(w http.ResponseWriter, req *http.Request) {
		var in products.CreateProduct
		json.NewDecoder(req.Body).Decode(&in)
		now := time.Now().UTC()
		p := products.Product{
			ID:                  s.nextID,
			ItemNumber:          in.ItemNumber,
			Description:         in.Description,
			CategoryCode:        in.CategoryCode,
			StandardTimeMinutes: in.StandardTimeMinutes,
			IsActive:            true,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		s.nextID++
		s.products[p.ID] = p
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	})
	r.Get("/api/products/by-number/{num}", func(w http.ResponseWriter, req *http.Request) {
		num := chi.URLParam(req, "num")
		for _, p := range s.products {
			if p.ItemNumber == num {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "product not found"})
	})

	r.Get("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		s.lastQuery = flatten(req)
		status := req.URL.Query().Get("status")
		var items []orders.Order
		for id := 1; id < s.nextID; id++ {
			o, ok := s.orders[id]
			if !ok {
				continue
			}
			if status != "" && string(o.Status) != status {
				continue
			}
			items = append(items, o)
		}
		json.NewEncoder(w).Encode(List[orders.Order]{
			Items: items, Total: len(items), Page: 1, PageSize: 100,
		})
	})
	r.Post("/api/orders", func(w http.ResponseWriter, req *http.Request) {
		var in orders.CreateOrder
		json.NewDecoder(req.Body).Decode(&in)
		o := orders.Order{
			ID:          s.nextID,
			OrderNumber: in.OrderNumber,
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			Status:      orders.StatusPending,
			Priority:    in.Priority,
		}
		s.nextID++
		s.orders[o.ID] = o
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(o)
	})
	r.Post("/api/orders/{id}/start", s.transition(orders.StatusInProgress))
	r.Post("/api/orders/{id}/complete", s.transition(orders.StatusCompleted))
	r.Post("/api/orders/{id}/cancel", func(w http.ResponseWriter, req *http.Request) {
		s.lastCancel = map[string]string{}
		json.NewDecoder(req.Body).Decode(&s.lastCancel)
		s.transition(orders.StatusCancelled)(w, req)
	})
	r.Post("/api/orders/{id}/reopen", s.transition(orders.StatusPending))
	r.Post("/api/orders/bulk/update-status", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			OrderIDs []int         `json:"order_ids"`
			Status   orders.Status `json:"status"`
		}
		json.NewDecoder(req.Body).Decode(&in)
		var updated []orders.Order
		for _, id := range in.OrderIDs {
			o := s.orders[id]
			o.Status = in.Status
			s.orders[id] = o
			updated = append(updated, o)
		}
		json.NewEncoder(w).Encode(updated)
	})
	r.Post("/api/orders/bulk/delete", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			OrderIDs []int `json:"order_ids"`
		}
		json.NewDecoder(req.Body).Decode(&in)
		for _, id := range in.OrderIDs {
			delete(s.orders, id)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func (s *stubERP) transition(to orders.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		o, ok := s.orders[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "order not found"})
			return
		}
		if !orders.CanTransition(o.Status, to) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid transition"})
			return
		}
		o.Status = to
		s.orders[id] = o
		json.NewEncoder(w).Encode(o)
	}
}

func flatten(req *http.Request) map[string]string {
	out := map[string]string{}
	for k, v := range req.URL.Query() {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

func TestProductCreateFetchRoundTrip(t *testing.T) {
	stub := newStubERP()
	srv := httptest.NewServer(stub.router())
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	cat := "A"
	std := 12.5
	created, err := c.Products.Create(ctx, products.CreateProduct{
		ItemNumber:          "ABC-001",
		CategoryCode:        &cat,
		StandardTimeMinutes: &std,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := c.Products.GetByNumber(ctx, "ABC-001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ABC-001", got.ItemNumber)
	require.NotNil(t, got.CategoryCode)
	assert.Equal(t, "A", *got.CategoryCode)
	require.NotNil(t, got.StandardTimeMinutes)
	assert.Equal(t, 12.5, *got.StandardTimeMinutes)
}

func TestOrderFiltersPassThroughVerbatim(t *testing.T) {
	stub := newStubERP()
	srv := httptest.NewServer(stub.router())
	defer srv.Close()
	c := New(srv.URL)

	overdue := true
	_, err := c.Orders.List(context.Background(), OrderFilter{
		Search:       "frame",
		Status:       orders.StatusInProgress,
		DepartmentID: 4,
		ProductID:    7,
		Priority:     orders.PriorityHigh,
		Overdue:      &overdue,
		Page:         PageParams{Skip: 40, Limit: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"search":        "frame",
		"status":        "in_progress",
		"department_id": "4",
		"product_id":    "7",
		"priority":      "high",
		"overdue":       "true",
		"skip":          "40",
		"limit":         "20",
	}, stub.lastQuery)
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	stub := newStubERP()
	srv := httptest.NewServer(stub.router())
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	o, err := c.Orders.Create(ctx, orders.CreateOrder{OrderNumber: "W-100", ProductID: 1, DepartmentID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, o.Status)

	o, err = c.Orders.Start(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusInProgress, o.Status)

	// completing twice: second attempt is an invalid transition
	o, err = c.Orders.Complete(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusCompleted, o.Status)

	_, err = c.Orders.Complete(ctx, o.ID)
	assert.True(t, IsConflict(err))
}

func TestCancelCarriesReason(t *testing.T) {
	stub := newStubERP()
	srv := httptest.NewServer(stub.router())
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	o, err := c.Orders.Create(ctx, orders.CreateOrder{OrderNumber: "W-101", ProductID: 1, DepartmentID: 1, Quantity: 1})
	require.NoError(t, err)

	o, err = c.Orders.Cancel(ctx, o.ID, "material shortage")
	require.NoError(t, err)
	assert.Equal(t, orders.StatusCancelled, o.Status)
	assert.Equal(t, "material shortage", stub.lastCancel["reason"])

	// reopen is the only way back
	o, err = c.Orders.Reopen(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, o.Status)
}

func TestBulkUpdateThenFilteredList(t *testing.T) {
	stub := newStubERP()
	srv := httptest.NewServer(stub.router())
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	var ids []int
	for _, num := range []string{"B-1", "B-2", "B-3"} {
		o, err := c.Orders.Create(ctx, orders.CreateOrder{OrderNumber: num, ProductID: 1, DepartmentID: 1, Quantity: 1})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}

	updated, err := c.Orders.BulkUpdateStatus(ctx, ids, orders.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, updated, 3)

	res, err := c.Orders.List(ctx, OrderFilter{Status: orders.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	for _, o := range res.Items {
		assert.Equal(t, orders.StatusCompleted, o.Status)
	}
}
