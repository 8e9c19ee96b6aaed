package products

import "time"

type Category struct {
	ID                   int     `json:"id"`
	Code                 string  `json:"code"`
	Name                 *string `json:"name"`
	EfficiencyMultiplier float64 `json:"efficiency_multiplier"`
}

type Product struct {
	ID                  int       `json:"id"`
	ItemNumber          string    `json:"item_number"`
	Description         *string   `json:"description"`
	CategoryCode        *string   `json:"category_code"`
	StandardTimeMinutes *float64  `json:"standard_time_minutes"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Joined server-side when requested.
	Category *Category `json:"category,omitempty"`
}

type CreateProduct struct {
	ItemNumber          string   `json:"item_number"`
	Description         *string  `json:"description,omitempty"`
	CategoryCode        *string  `json:"category_code,omitempty"`
	StandardTimeMinutes *float64 `json:"standard_time_minutes,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

type UpdateProduct struct {
	ItemNumber          *string  `json:"item_number,omitempty"`
	Description         *string  `json:"description,omitempty"`
	CategoryCode        *string  `json:"category_code,omitempty"`
	StandardTimeMinutes *float64 `json:"standard_time_minutes,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
