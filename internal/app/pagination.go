package app

import "github.com/Mujammil-ios/Stayhook-sub002/internal/domain"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// clampPage normalizes a caller-supplied page query: page >= 1,
// limit within [1, MaxPageLimit], zero limit replaced by the default.
func clampPage(pg domain.PageQuery) domain.PageQuery {
	if pg.Page < 1 {
		pg.Page = 1
	}
	if pg.Limit == 0 {
		pg.Limit = DefaultPageLimit
	}
	if pg.Limit < 1 {
		pg.Limit = 1
	}
	if pg.Limit > MaxPageLimit {
		pg.Limit = MaxPageLimit
	}
	return pg
}

// PageToRange converts a 1-based (page, limit) pair to an inclusive row
// window: (1, 20) -> {0, 19}.
func PageToRange(page, limit int) domain.RowRange {
	pg := clampPage(domain.PageQuery{Page: page, Limit: limit})
	from := (pg.Page - 1) * pg.Limit
	return domain.RowRange{From: from, To: from + pg.Limit - 1}
}

// PageMeta computes list-response metadata. Total pages is a ceiling
// division; prev/next are plain comparisons against the page count.
func PageMeta(page, limit, total int) domain.PageMeta {
	pg := clampPage(domain.PageQuery{Page: page, Limit: limit})
	pages := (total + pg.Limit - 1) / pg.Limit
	return domain.PageMeta{
		CurrentPage: pg.Page,
		PageSize:    pg.Limit,
		TotalCount:  total,
		TotalPages:  pages,
		HasPrevPage: pg.Page > 1,
		HasNextPage: pg.Page < pages,
	}
}
