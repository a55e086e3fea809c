package ports

const (
	defaultLimit = 10
	maxLimit     = 100
)

// PageRequest is the 1-based paging input carried from the HTTP layer down to
// the repositories.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request to sane values: page >= 1, limit defaulting to
// 10 and capped at 100.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Skip converts the 1-based page to the store's 0-based offset.
func (p PageRequest) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Page is the pagination envelope returned by every list endpoint. The wire
// shape follows the envelope the historical frontend already consumes:
// prevPage/nextPage hold the adjacent 1-based page numbers and are null when
// there is no such page.
type Page[T any] struct {
	Docs          []T   `json:"docs"`
	TotalDocs     int64 `json:"totalDocs"`
	Limit         int   `json:"limit"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	PagingCounter int   `json:"pagingCounter"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	HasNextPage   bool  `json:"hasNextPage"`
	PrevPage      *int  `json:"prevPage"`
	NextPage      *int  `json:"nextPage"`
}

// NewPage assembles the envelope for one page of docs. PagingCounter is the
// 1-based ordinal of the first item on this page.
func NewPage[T any](docs []T, total int64, req PageRequest) Page[T] {
	req = req.Normalize()
	if docs == nil {
		docs = []T{}
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	p := Page[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         req.Limit,
		Page:          req.Page,
		TotalPages:    totalPages,
		PagingCounter: (req.Page-1)*req.Limit + 1,
		HasPrevPage:   req.Page > 1,
		HasNextPage:   req.Page < totalPages,
	}
	if p.HasPrevPage {
		prev := req.Page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := req.Page + 1
		p.NextPage = &next
	}
	return p
}
