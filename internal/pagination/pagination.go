// Package pagination provides page requests and page results for list endpoints.
package pagination

import (
	"net/url"
	"strconv"
)

// Config holds default and maximum page sizes.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// PageRequest is a normalized request for one page of data.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"per_page"`
}

// Normalize adjusts the request to valid values for cfg.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset is the number of rows to skip.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Limit is the number of rows to fetch.
func (r PageRequest) Limit() int {
	return r.PageSize
}

// FromQuery parses page and per_page from URL query values.
func FromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	perPage, _ := strconv.Atoi(values.Get("per_page"))

	req := PageRequest{Page: page, PageSize: perPage}
	req.Normalize(cfg)
	return req
}

// Meta describes the position of a page within the whole result set.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

// NewPageResult creates a PageResult with calculated last page.
func NewPageResult[T any](data []T, total int, req PageRequest) PageResult[T] {
	lastPage := 1
	if req.PageSize > 0 {
		lastPage = total / req.PageSize
		if total%req.PageSize != 0 {
			lastPage++
		}
		if lastPage < 1 {
			lastPage = 1
		}
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data: data,
		Meta: Meta{
			CurrentPage: req.Page,
			LastPage:    lastPage,
			PerPage:     req.PageSize,
			Total:       total,
		},
	}
}

// Map converts the page items with fn, keeping the metadata.
func Map[T, U any](p PageResult[T], fn func(T) U) PageResult[U] {
	out := make([]U, len(p.Data))
	for i, item := range p.Data {
		out[i] = fn(item)
	}
	return PageResult[U]{Data: out, Meta: p.Meta}
}
