package api

import (
	"context"
	"fmt"
	"net/url"

	"prodtrack/internal/departments"
)

// Departments maps department operations to their endpoints. No business
// logic lives here; filters go through verbatim and the server does the
// filtering and pagination.
type Departments struct {
	c *Client
}

type DepartmentFilter struct {
	Search   string
	IsActive *bool
	Page     PageParams
}

func (f DepartmentFilter) Query() url.Values {
	q := url.Values{}
	setStr(q, "search", f.Search)
	setBool(q, "is_active", f.IsActive)
	f.Page.apply(q)
	return q
}

func (d *Departments) List(ctx context.Context, f DepartmentFilter) (List[departments.Department], error) {
	var out List[departments.Department]
	err := d.c.get(ctx, "/departments", f.Query(), &out)
	return out, err
}

// Active returns every active department in display order; meant for
// dropdowns and navigation.
func (d *Departments) Active(ctx context.Context) ([]departments.Department, error) {
	var out []departments.Department
	err := d.c.get(ctx, "/departments/active", nil, &out)
	return out, err
}

func (d *Departments) Stats(ctx context.Context) (departments.Stats, error) {
	var out departments.Stats
	err := d.c.get(ctx, "/departments/stats", nil, &out)
	return out, err
}

func (d *Departments) Get(ctx context.Context, id int) (departments.Department, error) {
	var out departments.Department
	err := d.c.get(ctx, fmt.Sprintf("/departments/%d", id), nil, &out)
	return out, err
}

func (d *Departments) GetWithStats(ctx context.Context, id int) (departments.DepartmentWithStats, error) {
	var out departments.DepartmentWithStats
	err := d.c.get(ctx, fmt.Sprintf("/departments/%d/with-stats", id), nil, &out)
	return out, err
}

func (d *Departments) GetByCode(ctx context.Context, code string) (departments.Department, error) {
	var out departments.Department
	err := d.c.get(ctx, "/departments/by-code/"+url.PathEscape(code), nil, &out)
	return out, err
}

func (d *Departments) Create(ctx context.Context, in departments.CreateDepartment) (departments.Department, error) {
	var out departments.Department
	err := d.c.post(ctx, "/departments", in, &out)
	return out, err
}

func (d *Departments) Update(ctx context.Context, id int, in departments.UpdateDepartment) (departments.Department, error) {
	var out departments.Department
	err := d.c.put(ctx, fmt.Sprintf("/departments/%d", id), in, &out)
	return out, err
}

func (d *Departments) Delete(ctx context.Context, id int) error {
	return d.c.delete(ctx, fmt.Sprintf("/departments/%d", id))
}

// Activate and Deactivate are first-class transitions, not field updates;
// the server may attach side effects (e.g. blocking new orders against an
// inactive department).
func (d *Departments) Activate(ctx context.Context, id int) (departments.Department, error) {
	var out departments.Department
	err := d.c.post(ctx, fmt.Sprintf("/departments/%d/activate", id), nil, &out)
	return out, err
}

func (d *Departments) Deactivate(ctx context.Context, id int) (departments.Department, error) {
	var out departments.Department
	err := d.c.post(ctx, fmt.Sprintf("/departments/%d/deactivate", id), nil, &out)
	return out, err
}

// Reorder assigns new display_order values in one call. The body maps
// department id to its new position.
func (d *Departments) Reorder(ctx context.Context, ordering map[int]int) ([]departments.Department, error) {
	var out []departments.Department
	err := d.c.post(ctx, "/departments/reorder", ordering, &out)
	return out, err
}
