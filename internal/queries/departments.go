package queries

import (
	"context"
	"strconv"

	"prodtrack/internal/api"
	"prodtrack/internal/cache"
	"prodtrack/internal/departments"
)

const resourceDepartments = "departments"

type DepartmentQueries struct {
	api   *api.Departments
	cache *cache.Cache
}

func (q *DepartmentQueries) List(ctx context.Context, f api.DepartmentFilter) (api.List[departments.Department], error) {
	key := cache.ParamsKey(resourceDepartments, "list", f.Query())
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (api.List[departments.Department], error) {
		return q.api.List(ctx, f)
	})
}

func (q *DepartmentQueries) Active(ctx context.Context) ([]departments.Department, error) {
	key := cache.NewKey(resourceDepartments, "active", "")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) ([]departments.Department, error) {
		return q.api.Active(ctx)
	})
}

func (q *DepartmentQueries) Stats(ctx context.Context) (departments.Stats, error) {
	key := cache.NewKey(resourceDepartments, "stats", "")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (departments.Stats, error) {
		return q.api.Stats(ctx)
	})
}

func (q *DepartmentQueries) Get(ctx context.Context, id int) (departments.Department, error) {
	key := cache.NewKey(resourceDepartments, "detail", strconv.Itoa(id))
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (departments.Department, error) {
		return q.api.Get(ctx, id)
	})
}

func (q *DepartmentQueries) GetWithStats(ctx context.Context, id int) (departments.DepartmentWithStats, error) {
	key := cache.NewKey(resourceDepartments, "detail", strconv.Itoa(id)+":stats")
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (departments.DepartmentWithStats, error) {
		return q.api.GetWithStats(ctx, id)
	})
}

func (q *DepartmentQueries) GetByCode(ctx context.Context, code string) (departments.Department, error) {
	key := cache.NewKey(resourceDepartments, "detail", "code:"+code)
	return fetchRead(ctx, q.cache, key, func(ctx context.Context) (departments.Department, error) {
		return q.api.GetByCode(ctx, code)
	})
}

func (q *DepartmentQueries) Create(ctx context.Context, in departments.CreateDepartment) (departments.Department, error) {
	out, err := q.api.Create(ctx, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return out, nil
}

func (q *DepartmentQueries) Update(ctx context.Context, id int, in departments.UpdateDepartment) (departments.Department, error) {
	out, err := q.api.Update(ctx, id, in)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return out, nil
}

func (q *DepartmentQueries) Delete(ctx context.Context, id int) error {
	if err := q.api.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return nil
}

func (q *DepartmentQueries) Activate(ctx context.Context, id int) (departments.Department, error) {
	out, err := q.api.Activate(ctx, id)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return out, nil
}

func (q *DepartmentQueries) Deactivate(ctx context.Context, id int) (departments.Department, error) {
	out, err := q.api.Deactivate(ctx, id)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return out, nil
}

func (q *DepartmentQueries) Reorder(ctx context.Context, ordering map[int]int) ([]departments.Department, error) {
	out, err := q.api.Reorder(ctx, ordering)
	if err != nil {
		return out, err
	}
	invalidate(ctx, q.cache, resourceDepartments)
	return out, nil
}
