package repository

import (
	"strings"
	"time"
)

// ListParams is the shared page/limit/search/sort envelope accepted by every
// list endpoint.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize applies the API defaults (page 1, limit 10, newest first).
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortBy == "" {
		p.SortBy = "createdAt"
	}
	if p.SortOrder == "" {
		p.SortOrder = "desc"
	}
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause maps the caller-facing sort key through an allowlist of columns.
// Unknown keys fall back to created_at so user input never reaches the SQL.
func (p ListParams) OrderClause(columns map[string]string) string {
	col, ok := columns[p.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(p.SortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// Pagination is the metadata block returned alongside list data.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

func NewPagination(p ListParams, total int64) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{Current: p.Page, Pages: pages, Total: total, Limit: p.Limit}
}

// DateRange bounds createdAt filters on list/stats endpoints.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}
