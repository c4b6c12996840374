package contract

import "math"

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Skip returns the number of documents before the requested page. It
// saturates instead of wrapping for page numbers past any real collection.
func (p Pagination) Skip() int64 {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	before, size := int64(p.Page-1), int64(p.PageSize)
	if before > math.MaxInt64/size {
		return math.MaxInt64
	}
	return before * size
}
