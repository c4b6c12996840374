package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationSkip(t *testing.T) {
	tests := []struct {
		name string
		p    Pagination
		want int64
	}{
		{"first page", Pagination{Page: 1, PageSize: 10}, 0},
		{"third page", Pagination{Page: 3, PageSize: 10}, 20},
		{"zero page", Pagination{Page: 0, PageSize: 10}, 0},
		{"negative page", Pagination{Page: -4, PageSize: 10}, 0},
		{"no page size", Pagination{Page: 5, PageSize: 0}, 0},
		{"huge page saturates", Pagination{Page: 922337203685477581, PageSize: 10}, math.MaxInt64},
		{"max int page", Pagination{Page: math.MaxInt, PageSize: 10}, math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Skip()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}
