// Package departments holds the department entity and its derived ordering.
package departments

import "sort"

type Department struct {
	ID           int     `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	DisplayOrder *int    `json:"display_order"`
	Color        *string `json:"color"`
	IsActive     bool    `json:"is_active"`
}

// DepartmentWithStats is a department fetched via /with-stats.
type DepartmentWithStats struct {
	Department
	WorkPhaseCount    int `json:"work_phase_count"`
	ActiveOrdersCount int `json:"active_orders_count"`
}

type CreateDepartment struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Color        *string `json:"color,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type UpdateDepartment struct {
	Code         *string `json:"code,omitempty"`
	Name         *string `json:"name,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Color        *string `json:"color,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// SortByDisplayOrder orders departments ascending by display_order.
// nil means unordered and sorts after every ordered department; the sort is
// stable so unordered departments keep their server-returned order.
func SortByDisplayOrder(ds []Department) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].DisplayOrder, ds[j].DisplayOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
