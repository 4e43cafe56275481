package service

import (
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
		&model.Role{}, &model.User{},
		&model.Supplier{}, &model.Product{}, &model.Staff{},
		&model.Sale{}, &model.SaleItem{},
		&model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.Expense{},
		&sequence.Counter{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku string, price float64, stock, minStock int) *model.Product {
	t.Helper()
	p := &model.Product{
		SKU:      sku,
		Name:     "Product " + sku,
		Category: "Groceries",
		Price:    price,
		Cost:     price / 2,
		Stock:    stock,
		MinStock: minStock,
		IsActive: true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product %s: %v", sku, err)
	}
	return p
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *model.Supplier {
	t.Helper()
	s := &model.Supplier{
		Name:     name,
		Contact:  name + "@example.com",
		Phone:    "+1-555-0100",
		IsActive: true,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed supplier %s: %v", name, err)
	}
	return s
}

func productStock(t *testing.T, db *gorm.DB, id interface{}) int {
	t.Helper()
	var p model.Product
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return p.Stock
}
