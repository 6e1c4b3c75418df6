// Package pagination holds the paging contract shared by every list
// endpoint: request normalization and response metadata.
package pagination

const (
	// MaxPageSize caps pageSize; larger requests are clamped, not rejected.
	MaxPageSize = 100
)

// Params are normalized paging inputs.
type Params struct {
	Page    int
	PerPage int
}

// Meta describes one page of results. From/To are 1-based inclusive
// display bounds; both are 0 when the page holds nothing.
type Meta struct {
	Total       int `json:"total"`
	LastPage    int `json:"lastPage"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Normalize clamps raw paging values to safe defaults. page < 1 becomes 1,
// pageSize < 1 becomes def, pageSize > MaxPageSize becomes MaxPageSize.
// Out-of-range pages are never an error; a page past the end simply
// yields an empty list.
func Normalize(page, pageSize, def int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = def
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PerPage: pageSize}
}

// Offset is the LIMIT/OFFSET skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewMeta computes page metadata for a known total. Idempotent: same
// inputs, same output.
func NewMeta(total int, p Params) Meta {
	if total < 0 {
		total = 0
	}
	m := Meta{
		Total:       total,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}
	if total == 0 {
		return m
	}
	m.LastPage = (total + p.PerPage - 1) / p.PerPage
	from := (p.Page-1)*p.PerPage + 1
	if from > total {
		// page past the end: empty window, true total kept
		return m
	}
	m.From = from
	m.To = p.Page * p.PerPage
	if m.To > total {
		m.To = total
	}
	return m
}
