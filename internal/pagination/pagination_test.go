package pagination_test

import (
	"net/url"
	"testing"

	"professionals-api/internal/pagination"

	"github.com/stretchr/testify/assert"
)

var cfg = pagination.Config{DefaultPageSize: 15, MaxPageSize: 100}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"defaults", "", 1, 15, 0},
		{"page 3", "page=3", 3, 15, 30},
		{"custom size", "page=2&per_page=10", 2, 10, 10},
		{"capped size", "per_page=500", 1, 100, 0},
		{"garbage", "page=abc&per_page=-4", 1, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.FromQuery(values, cfg)
			assert.Equal(t, tt.page, req.Page)
			assert.Equal(t, tt.pageSize, req.PageSize)
			assert.Equal(t, tt.offset, req.Offset())
		})
	}
}

func TestNewPageResult(t *testing.T) {
	req := pagination.PageRequest{Page: 2, PageSize: 15}

	res := pagination.NewPageResult([]int{1, 2, 3}, 31, req)
	assert.Equal(t, 3, res.Meta.LastPage)
	assert.Equal(t, 2, res.Meta.CurrentPage)
	assert.Equal(t, 31, res.Meta.Total)

	empty := pagination.NewPageResult[int](nil, 0, req)
	assert.NotNil(t, empty.Data)
	assert.Equal(t, 1, empty.Meta.LastPage)
}

func TestMap(t *testing.T) {
	res := pagination.NewPageResult([]int{1, 2}, 2, pagination.PageRequest{Page: 1, PageSize: 15})
	out := pagination.Map(res, func(i int) string { return string(rune('a' + i - 1)) })
	assert.Equal(t, []string{"a", "b"}, out.Data)
	assert.Equal(t, res.Meta, out.Meta)
}
