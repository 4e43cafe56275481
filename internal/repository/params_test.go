package repository

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	var p ListParams
	p.Normalize()
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("unexpected defaults: page=%d limit=%d", p.Page, p.Limit)
	}
	if p.SortBy != "createdAt" || p.SortOrder != "desc" {
		t.Fatalf("unexpected sort defaults: %s %s", p.SortBy, p.SortOrder)
	}
}

func TestNormalizeCapsLimit(t *testing.T) {
	p := ListParams{Page: -3, Limit: 5000}
	p.Normalize()
	if p.Page != 1 {
		t.Fatalf("expected page 1 got %d", p.Page)
	}
	if p.Limit != 100 {
		t.Fatalf("expected limit capped at 100 got %d", p.Limit)
	}
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 10}
	if got := p.Offset(); got != 20 {
		t.Fatalf("expected offset 20 got %d", got)
	}
}

func TestOrderClauseAllowlist(t *testing.T) {
	cols := map[string]string{"name": "name", "createdAt": "created_at"}

	p := ListParams{SortBy: "name", SortOrder: "asc"}
	if got := p.OrderClause(cols); got != "name ASC" {
		t.Fatalf("expected 'name ASC' got %q", got)
	}

	// Unknown keys must not reach the SQL.
	p = ListParams{SortBy: "1; DROP TABLE products", SortOrder: "desc"}
	if got := p.OrderClause(cols); got != "created_at DESC" {
		t.Fatalf("expected fallback got %q", got)
	}
}

func TestNewPagination(t *testing.T) {
	p := ListParams{Page: 2, Limit: 10}
	pg := NewPagination(p, 15)
	if pg.Current != 2 || pg.Pages != 2 || pg.Total != 15 || pg.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", pg)
	}

	pg = NewPagination(ListParams{Page: 1, Limit: 10}, 0)
	if pg.Pages != 0 {
		t.Fatalf("expected 0 pages for empty set got %d", pg.Pages)
	}

	pg = NewPagination(ListParams{Page: 1, Limit: 10}, 10)
	if pg.Pages != 1 {
		t.Fatalf("expected 1 page got %d", pg.Pages)
	}
}
