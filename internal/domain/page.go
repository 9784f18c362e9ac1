package domain

// PageQuery is the caller-facing pagination request. Page is 1-based.
type PageQuery struct {
	Page  int
	Limit int
}

// RowRange is an inclusive offset window: rows From..To.
type RowRange struct {
	From int
	To   int
}

// PageMeta accompanies every list response.
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasPrevPage bool `json:"has_prev_page"`
	HasNextPage bool `json:"has_next_page"`
}
