package dto

// PaginationQuery is bound from ?page=&limit= on list endpoints.
type PaginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Pagination is the metadata block returned alongside paged data.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Clamp normalizes page to >=1 and limit to [1,100], defaulting limit to 10.
func (q PaginationQuery) Clamp() (page, limit int) {
	page = q.Page
	if page < 1 {
		page = 1
	}

	limit = q.Limit
	switch {
	case limit == 0:
		limit = defaultLimit
	case limit < 1:
		limit = 1
	case limit > maxLimit:
		limit = maxLimit
	}

	return page, limit
}

// NewPagination computes the metadata for a page of total rows.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
