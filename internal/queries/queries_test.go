package queries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodtrack/internal/api"
	"prodtrack/internal/cache"
	"prodtrack/internal/departments"
	"prodtrack/internal/orders"
)

// deptServer counts list/active/stats hits so tests can observe cache
// behavior from the outside.
type deptServer struct {
	items []departments.Department

	listHits   atomic.Int32
	activeHits atomic.Int32
	statsHits  atomic.Int32
}

func (s *deptServer) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/departments", func(w http.ResponseWriter, req *http.Request) {
		s.listHits.Add(1)
		json.NewEncoder(w).Encode(api.List[departments.Department]{
			Items: s.items, Total: len(s.items), Page: 1, PageSize: 100,
		})
	})
	r.Get("/api/departments/active", func(w http.ResponseWriter, req *http.Request) {
		s.activeHits.Add(1)
		json.NewEncoder(w).Encode(s.items)
	})
	r.Get("/api/departments/stats", func(w http.ResponseWriter, req *http.Request) {
		s.statsHits.Add(1)
		json.NewEncoder(w).Encode(departments.Stats{Total: len(s.items), Active: len(s.items)})
	})
	r.Post("/api/departments", func(w http.ResponseWriter, req *http.Request) {
		var in departments.CreateDepartment
		json.NewDecoder(req.Body).Decode(&in)
		d := departments.Department{ID: len(s.items) + 1, Code: in.Code, Name: in.Name, IsActive: true}
		s.items = append(s.items, d)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(d)
	})
	return r
}

func newService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(srv.URL)
	svc := NewService(client, cache.New(cache.NewMemoryStore(), time.Minute))
	return svc, srv
}

func TestRepeatedReadsHitCache(t *testing.T) {
	stub := &deptServer{items: []departments.Department{{ID: 1, Code: "WELD", Name: "Welding"}}}
	svc, _ := newService(t, stub.router())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := svc.Departments.List(ctx, api.DepartmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	}
	assert.Equal(t, int32(1), stub.listHits.Load())
}

func TestMutationInvalidatesListActiveAndStats(t *testing.T) {
	stub := &deptServer{items: []departments.Department{{ID: 1, Code: "WELD", Name: "Welding"}}}
	svc, _ := newService(t, stub.router())
	ctx := context.Background()

	// warm every read group
	_, err := svc.Departments.List(ctx, api.DepartmentFilter{})
	require.NoError(t, err)
	_, err = svc.Departments.Active(ctx)
	require.NoError(t, err)
	_, err = svc.Departments.Stats(ctx)
	require.NoError(t, err)

	_, err = svc.Departments.Create(ctx, departments.CreateDepartment{Code: "PAINT", Name: "Painting"})
	require.NoError(t, err)

	// the read right after the create reflects the new item, no manual
	// cache fiddling required
	res, err := svc.Departments.List(ctx, api.DepartmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	_, err = svc.Departments.Active(ctx)
	require.NoError(t, err)
	stats, err := svc.Departments.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)

	assert.Equal(t, int32(2), stub.listHits.Load())
	assert.Equal(t, int32(2), stub.activeHits.Load())
	assert.Equal(t, int32(2), stub.statsHits.Load())
}

func TestReadRetriesOnceOnConnectivity(t *testing.T) {
	var hits atomic.Int32
	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if hits.Add(1) == 1 {
			// kill the first attempt mid-flight
			hj := w.(http.Hijacker)
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		json.NewEncoder(w).Encode(departments.Stats{Total: 5})
	}))
	t.Cleanup(flaky.Close)

	svc := NewService(api.New(flaky.URL), cache.New(cache.NewMemoryStore(), time.Minute))
	stats, err := svc.Departments.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, int32(2), hits.Load())
}

func TestReadDoesNotRetryTwice(t *testing.T) {
	var hits atomic.Int32
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		conn.Close()
	}))
	t.Cleanup(dead.Close)

	svc := NewService(api.New(dead.URL), cache.New(cache.NewMemoryStore(), time.Minute))
	_, err := svc.Departments.Stats(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsConnError(err))
	assert.Equal(t, int32(2), hits.Load())
}

func orderStub(current orders.Status, transitionHits *atomic.Int32) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/orders/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		json.NewEncoder(w).Encode(orders.Order{ID: id, Status: current})
	})
	for _, ep := range []string{"start", "complete", "cancel", "reopen"} {
		ep := ep
		r.Post("/api/orders/{id}/"+ep, func(w http.ResponseWriter, req *http.Request) {
			transitionHits.Add(1)
			id, _ := strconv.Atoi(chi.URLParam(req, "id"))
			json.NewEncoder(w).Encode(orders.Order{ID: id, Status: current})
		})
	}
	return r
}

func TestTransitionGuardRejectsLocally(t *testing.T) {
	var hits atomic.Int32
	svc, _ := newService(t, orderStub(orders.StatusPending, &hits))
	ctx := context.Background()

	// complete from pending is invalid; the request never goes out
	_, err := svc.Orders.Complete(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrInvalidTransition)
	assert.Equal(t, int32(0), hits.Load())

	// start from pending is fine
	_, err = svc.Orders.Start(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestMutationIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		conn.Close()
	}))
	t.Cleanup(dead.Close)

	svc := NewService(api.New(dead.URL), cache.New(cache.NewMemoryStore(), time.Minute))
	_, err := svc.Departments.Create(context.Background(), departments.CreateDepartment{Code: "X", Name: "X"})
	require.Error(t, err)
	assert.True(t, api.IsConnError(err))
	assert.Equal(t, int32(1), hits.Load())
}
