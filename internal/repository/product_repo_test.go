package repository

import (
	"errors"
	"fmt"
	"testing"

	"go-retail-api/internal/model"
	"go-retail-api/internal/sequence"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Supplier{}, &model.Product{},
		&model.Sale{}, &model.SaleItem{},
		&sequence.Counter{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestProductFindAllPaginates(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	for i := 1; i <= 15; i++ {
		p := &model.Product{
			SKU:      fmt.Sprintf("SKU-%02d", i),
			Name:     fmt.Sprintf("Product %02d", i),
			Category: "Other",
			Price:    float64(i),
			Stock:    10,
			IsActive: true,
		}
		if err := repo.Create(p); err != nil {
			t.Fatalf("create product %d: %v", i, err)
		}
	}

	f := ProductFilter{ListParams: ListParams{Page: 1, Limit: 10, SortBy: "sku", SortOrder: "asc"}}
	page1, total, err := repo.FindAll(f)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if total != 15 {
		t.Fatalf("expected total 15 got %d", total)
	}
	if len(page1) != 10 {
		t.Fatalf("expected 10 on page 1 got %d", len(page1))
	}
	if page1[0].SKU != "SKU-01" {
		t.Fatalf("expected SKU-01 first got %s", page1[0].SKU)
	}

	f.Page = 2
	page2, _, err := repo.FindAll(f)
	if err != nil {
		t.Fatalf("find page 2: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("expected 5 on page 2 got %d", len(page2))
	}
	if page2[0].SKU != "SKU-11" {
		t.Fatalf("expected SKU-11 first on page 2 got %s", page2[0].SKU)
	}

	pg := NewPagination(f.ListParams, total)
	if pg.Pages != 2 {
		t.Fatalf("expected 2 pages got %d", pg.Pages)
	}
}

func TestProductFindAllSearchAndFilters(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	seed := []model.Product{
		{SKU: "MILK-1L", Name: "Full Cream Milk", Category: "Dairy Products", Stock: 50, MinStock: 10, IsActive: true},
		{SKU: "MILK-2L", Name: "Toned Milk", Category: "Dairy Products", Stock: 2, MinStock: 10, IsActive: true},
		{SKU: "PEN-BLUE", Name: "Blue Ballpoint", Category: "Stationary", Stock: 100, MinStock: 20, IsActive: true},
		{SKU: "OLD-ITEM", Name: "Retired Milk Crate", Category: "Other", Stock: 0, MinStock: 0, IsActive: false},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, total, err := repo.FindAll(ProductFilter{ListParams: ListParams{Search: "Milk"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 milk matches got %d", total)
	}

	active := true
	got, total, err = repo.FindAll(ProductFilter{
		ListParams: ListParams{Search: "Milk"},
		IsActive:   &active,
	})
	if err != nil {
		t.Fatalf("search active: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 active milk matches got %d", total)
	}

	got, total, err = repo.FindAll(ProductFilter{Category: "Dairy Products", LowStock: true})
	if err != nil {
		t.Fatalf("low stock filter: %v", err)
	}
	if total != 1 || got[0].SKU != "MILK-2L" {
		t.Fatalf("expected only MILK-2L, got total=%d", total)
	}
}

func TestCreateStoresExplicitInactive(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	p := &model.Product{SKU: "RETIRED", Name: "Retired Item", Category: "Other", IsActive: false}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	reloaded, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Fatalf("explicit inactive flag was lost on insert")
	}
}

func TestDecrementStockGuard(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	p := &model.Product{SKU: "GUARD", Name: "Guarded", Category: "Other", Stock: 5, IsActive: true}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DecrementStock(db, p.ID, 4); err != nil {
		t.Fatalf("first decrement: %v", err)
	}
	// Only 1 left; a second decrement of 4 must lose against the predicate and
	// leave the row untouched.
	if err := repo.DecrementStock(db, p.ID, 4); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound got %v", err)
	}

	reloaded, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Stock != 1 {
		t.Fatalf("expected stock 1 got %d", reloaded.Stock)
	}

	// Taking stock exactly to zero is allowed.
	if err := repo.DecrementStock(db, p.ID, 1); err != nil {
		t.Fatalf("decrement to zero: %v", err)
	}
	reloaded, err = repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Stock != 0 {
		t.Fatalf("expected stock 0 got %d", reloaded.Stock)
	}
}

func TestAdjustStockIsRelative(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	p := &model.Product{SKU: "ADJ", Name: "Adjustable", Category: "Other", Stock: 10, IsActive: true}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.AdjustStock(db, p.ID, -3); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if err := repo.AdjustStock(db, p.ID, 5); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	reloaded, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Stock != 12 {
		t.Fatalf("expected stock 12 got %d", reloaded.Stock)
	}
}

func TestCategoriesAreDistinctSorted(t *testing.T) {
	db := setupTestDB(t, t.Name())
	repo := NewProductRepo(db)

	for i, cat := range []string{"Sports", "Groceries", "Sports", "Electronics"} {
		p := &model.Product{SKU: fmt.Sprintf("C-%d", i), Name: "X", Category: cat, IsActive: true}
		if err := repo.Create(p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	cats, err := repo.Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"Electronics", "Groceries", "Sports"}
	if len(cats) != len(want) {
		t.Fatalf("expected %v got %v", want, cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("expected %v got %v", want, cats)
		}
	}
}
