package entity

// ActionStatus tells the caller why a mutation did or did not happen.
// Infrastructure failures are reported as errors, never as a status.
type ActionStatus string

const (
	StatusSuccess      ActionStatus = "success"
	StatusUnauthorized ActionStatus = "unauthorized"
	StatusNotFound     ActionStatus = "not_found"
)

func (s ActionStatus) OK() bool {
	return s == StatusSuccess
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPage fills in the derived paging fields.
func NewPage[T any](items []T, total int64, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Page[T]{
		Items:       items,
		TotalItems:  total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
