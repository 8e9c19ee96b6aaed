package api

import (
	"net/url"
	"strconv"
)

// List is the shared list-response shape: one page of items plus the
// server's pagination echo.
type List[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// TotalPages is ceil(total / page_size); 0 when the page size is unknown.
func (l List[T]) TotalPages() int {
	if l.PageSize <= 0 {
		return 0
	}
	return (l.Total + l.PageSize - 1) / l.PageSize
}

// PageParams is skip/limit pagination, passed through verbatim.
type PageParams struct {
	Skip  int
	Limit int
}

// PageToSkip converts a 1-based page number to its skip offset.
func PageToSkip(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

func (p PageParams) apply(q url.Values) {
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
}

func setStr(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setInt(q url.Values, key string, val int) {
	if val != 0 {
		q.Set(key, strconv.Itoa(val))
	}
}

func setBool(q url.Values, key string, val *bool) {
	if val != nil {
		q.Set(key, strconv.FormatBool(*val))
	}
}
