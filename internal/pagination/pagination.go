package pagination

// DefaultPageSize is used when the request does not specify page_size.
// The request layer bounds page_size to [1,100]; this package trusts it.
const DefaultPageSize = 20

// Params carries the requested page and page size.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps non-positive pages to 1 and fills in the default page
// size. Out-of-range input never errors.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the record offset for the normalized page. It can never
// be negative.
func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// Limit returns the record limit for the normalized page.
func (p Params) Limit() int {
	return p.Normalize().PageSize
}

// PaginatedResponse wraps a page of results with metadata derived from the
// total match count. It is computed fresh per query and never persisted.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewPaginatedResponse computes page metadata for data matching total
// records overall. An empty result set still reports one page.
func NewPaginatedResponse[T any](data []T, total int64, params Params) PaginatedResponse[T] {
	params = params.Normalize()

	totalPages := 1
	if total > 0 {
		totalPages = int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	}

	if data == nil {
		data = []T{}
	}

	return PaginatedResponse[T]{
		Data:       data,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}
