package service

import (
	"errors"
	"testing"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
)

func TestSupplierCreateDefaults(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	supplier, err := svc.Create(&model.Supplier{
		Name:     "FreshFarm Dairy Co",
		Contact:  "orders@freshfarm.example",
		Phone:    "+91-98100-11223",
		IsActive: true,
		Address: model.SupplierAddress{
			Street: "14 Dairy Lane", City: "Pune", State: "Maharashtra",
			ZipCode: "411001", Country: "India",
		},
	})
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	if supplier.Rating != 3 {
		t.Fatalf("expected default rating 3 got %d", supplier.Rating)
	}
	if supplier.PaymentTerms != "Net 30" {
		t.Fatalf("expected default Net 30 got %q", supplier.PaymentTerms)
	}
	if supplier.FullAddress != "14 Dairy Lane, Pune, Maharashtra, 411001, India" {
		t.Fatalf("unexpected fullAddress %q", supplier.FullAddress)
	}
}

func TestSupplierCreateRejectsBadPaymentTerms(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	_, err := svc.Create(&model.Supplier{
		Name:         "Bad Terms",
		Contact:      "x@example.com",
		Phone:        "1",
		PaymentTerms: "Net 90",
	})
	if err == nil {
		t.Fatalf("expected validation error for Net 90")
	}
}

func TestSupplierDeleteDeactivates(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))
	supplier := seedSupplier(t, db, "ToDeactivate")

	if err := svc.Delete(supplier.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded model.Supplier
	if err := db.First(&reloaded, "id = ?", supplier.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Fatalf("expected inactive supplier")
	}
}

func TestSupplierListFiltersActive(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	seedSupplier(t, db, "Active One")
	seedSupplier(t, db, "Active Two")
	inactive := seedSupplier(t, db, "Inactive")
	if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active := true
	got, pg, err := svc.List(repository.SupplierFilter{IsActive: &active})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if pg.Total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 active suppliers got %d", pg.Total)
	}

	_, pg, err = svc.List(repository.SupplierFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if pg.Total != 3 {
		t.Fatalf("expected 3 suppliers got %d", pg.Total)
	}
}

func TestSupplierStatsKeepCountsAndRating(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	a := seedSupplier(t, db, "Rated Four")
	if err := db.Model(a).Update("rating", 4).Error; err != nil {
		t.Fatalf("rate: %v", err)
	}
	b := seedSupplier(t, db, "Rated Two")
	if err := db.Model(b).Update("rating", 2).Error; err != nil {
		t.Fatalf("rate: %v", err)
	}
	inactive := seedSupplier(t, db, "Inactive Five")
	if err := db.Model(inactive).Updates(map[string]interface{}{"rating": 5, "is_active": false}).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	// Counts and the rating average come from different queries; both must
	// survive in the same payload.
	if stats.TotalSuppliers != 3 || stats.ActiveSuppliers != 2 {
		t.Fatalf("counts wrong: total=%d active=%d", stats.TotalSuppliers, stats.ActiveSuppliers)
	}
	if stats.AverageRating != 3 {
		t.Fatalf("expected average rating 3 got %v", stats.AverageRating)
	}
}

func TestSupplierGetUnknown(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSupplierService(repository.NewSupplierRepo(db))
	p := seedProduct(t, db, "NOT-A-SUPPLIER", 1, 1, 1)

	if _, err := svc.Get(p.ID); !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound got %v", err)
	}
}
