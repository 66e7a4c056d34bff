package types

import "math"

// ListResponse represents an unpaged collection response
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse creates a list response over items
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// PageResponse is one page of a filtered collection
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// TotalPages is ceil(total/pageSize), never less than one
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return max(1, int(math.Ceil(float64(total)/float64(pageSize))))
}

// NewPageResponse slices page out of all, clamping page into [1, TotalPages]
func NewPageResponse[T any](all []T, page, pageSize int) PageResponse[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := TotalPages(len(all), pageSize)
	page = min(max(page, 1), totalPages)

	start := min((page-1)*pageSize, len(all))
	end := min(start+pageSize, len(all))

	items := make([]T, end-start)
	copy(items, all[start:end])

	return PageResponse[T]{
		Items:      items,
		Total:      len(all),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
