package shared

// Filter captures the list-query options accepted by repositories.
// Page is 1-based; Search applies a free-text match where the
// repository supports one.
type Filter struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps the filter to usable bounds: a page below 1 becomes
// 1, a non-positive limit falls back to defaultLimit, and anything
// above maxLimit is capped at maxLimit.
func (f Filter) Normalize(defaultLimit, maxLimit int) Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return f
}

// Offset returns the row offset corresponding to the filter's page.
// Call Normalize first; a zero page would otherwise go negative.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Paginated wraps one page of results together with totals.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// NewPaginated assembles a page of items with the total row count.
func NewPaginated[T any](items []T, total int64, page, limit int) Paginated[T] {
	var totalPages int64
	if limit > 0 {
		totalPages = total / int64(limit)
		if total%int64(limit) > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
