package sequence

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Counter{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNextIsMonotonic(t *testing.T) {
	db := setupDB(t)

	for want := int64(1); want <= 5; want++ {
		got, err := Next(db, Sales)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d got %d", want, got)
		}
	}
}

func TestNextIsIndependentPerName(t *testing.T) {
	db := setupDB(t)

	if _, err := Next(db, Sales); err != nil {
		t.Fatalf("next sales: %v", err)
	}
	if _, err := Next(db, Sales); err != nil {
		t.Fatalf("next sales: %v", err)
	}

	got, err := Next(db, Expenses)
	if err != nil {
		t.Fatalf("next expenses: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected independent counter to start at 1, got %d", got)
	}
}

func TestNextRollsBackWithTransaction(t *testing.T) {
	db := setupDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := Next(tx, PurchaseOrders); err != nil {
			return err
		}
		return gorm.ErrInvalidData // force rollback
	})
	if err == nil {
		t.Fatalf("expected transaction error")
	}

	got, err := Next(db, PurchaseOrders)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 after rollback got %d", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("S", 7); got != "S-0007" {
		t.Fatalf("expected S-0007 got %s", got)
	}
	if got := Format("PO", 123); got != "PO-0123" {
		t.Fatalf("expected PO-0123 got %s", got)
	}
	if got := Format("E", 10001); got != "E-10001" {
		t.Fatalf("expected E-10001 got %s", got)
	}
}
