package orders

import (
	"time"

	"prodtrack/internal/departments"
	"prodtrack/internal/products"
)

type Order struct {
	ID           int      `json:"id"`
	OrderNumber  string   `json:"order_number"`
	ProductID    int      `json:"product_id"`
	DepartmentID int      `json:"department_id"`
	Quantity     int      `json:"quantity"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	DueDate     *time.Time `json:"due_date"`

	// Server-computed; EfficiencyPercentage is nil until the order
	// has been completed.
	EstimatedDurationMinutes *float64 `json:"estimated_duration_minutes"`
	ActualDurationMinutes    *float64 `json:"actual_duration_minutes"`
	EfficiencyPercentage     *float64 `json:"efficiency_percentage"`

	Notes *string `json:"notes"`

	// Populated only when fetched with expansion.
	Product    *products.Product       `json:"product,omitempty"`
	Department *departments.Department `json:"department,omitempty"`
}

// OrderWithDetails is an order fetched via /with-details: product and
// department are always joined in.
type OrderWithDetails struct {
	Order
	Product    products.Product       `json:"product"`
	Department departments.Department `json:"department"`
}

// IsOverdue reports whether the order has missed its due date. Derived at
// display time, never persisted: a closed order is never overdue.
func (o Order) IsOverdue(now time.Time) bool {
	if o.DueDate == nil {
		return false
	}
	if o.Status == StatusCompleted || o.Status == StatusCancelled {
		return false
	}
	return o.DueDate.Before(now)
}

type CreateOrder struct {
	OrderNumber  string     `json:"order_number"`
	ProductID    int        `json:"product_id"`
	DepartmentID int        `json:"department_id"`
	Quantity     int        `json:"quantity"`
	Priority     Priority   `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// UpdateOrder carries a partial update; nil fields are left untouched by the
// server. There is no Status field: status only moves through the dedicated
// transition endpoints.
type UpdateOrder struct {
	OrderNumber  *string    `json:"order_number,omitempty"`
	ProductID    *int       `json:"product_id,omitempty"`
	DepartmentID *int       `json:"department_id,omitempty"`
	Quantity     *int       `json:"quantity,omitempty"`
	Priority     *Priority  `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

// Stats comes pre-aggregated from GET /orders/stats; the client renders it
// and never recomputes the aggregates locally.
type Stats struct {
	Total         int              `json:"total"`
	ByStatus      map[Status]int   `json:"by_status"`
	ByPriority    map[Priority]int `json:"by_priority"`
	OverdueCount  int              `json:"overdue_count"`
	AvgEfficiency *float64         `json:"avg_efficiency"`
}
