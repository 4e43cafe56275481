package service

import (
	"errors"
	"testing"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
)

func TestPurchaseOrderCreateComputesTotals(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	supplier := seedSupplier(t, db, "FreshFarm")
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	po, err := svc.Create(&model.PurchaseOrder{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 40, UnitCost: 50}},
		Tax:        100,
		Shipping:   250,
	}, "")
	if err != nil {
		t.Fatalf("create po: %v", err)
	}

	if po.PONumber != "PO-0001" {
		t.Fatalf("expected PO-0001 got %s", po.PONumber)
	}
	if po.Status != model.POStatusDraft {
		t.Fatalf("expected draft got %s", po.Status)
	}
	if po.Subtotal != 2000 {
		t.Fatalf("expected subtotal 2000 got %v", po.Subtotal)
	}
	// total = subtotal + tax + shipping
	if po.Total != 2350 {
		t.Fatalf("expected total 2350 got %v", po.Total)
	}
	// Ordering never moves stock; only receiving does.
	if got := productStock(t, db, p.ID); got != 10 {
		t.Fatalf("expected stock 10 got %d", got)
	}
}

func TestPurchaseOrderReceiveRequiresConfirmedOrShipped(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	supplier := seedSupplier(t, db, "FreshFarm")
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	po, err := svc.Create(&model.PurchaseOrder{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 40, UnitCost: 50}},
	}, "")
	if err != nil {
		t.Fatalf("create po: %v", err)
	}

	if _, err := svc.Receive(po.ID); !errors.Is(err, ErrNotReceivable) {
		t.Fatalf("expected ErrNotReceivable got %v", err)
	}
	if got := productStock(t, db, p.ID); got != 10 {
		t.Fatalf("stock moved on failed receive: %d", got)
	}
}

func TestPurchaseOrderApproveThenReceive(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	supplier := seedSupplier(t, db, "FreshFarm")
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	po, err := svc.Create(&model.PurchaseOrder{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 40, UnitCost: 50}},
	}, "")
	if err != nil {
		t.Fatalf("create po: %v", err)
	}

	approved, err := svc.Approve(po.ID, "")
	if err != nil {
		t.Fatalf("approve po: %v", err)
	}
	if approved.Status != model.POStatusConfirmed {
		t.Fatalf("expected confirmed got %s", approved.Status)
	}
	if approved.ApprovedAt == nil {
		t.Fatalf("expected approvedAt set")
	}

	received, err := svc.Receive(po.ID)
	if err != nil {
		t.Fatalf("receive po: %v", err)
	}
	if received.Status != model.POStatusReceived {
		t.Fatalf("expected received got %s", received.Status)
	}
	if received.ActualDelivery == nil {
		t.Fatalf("expected actualDelivery set")
	}
	if got := productStock(t, db, p.ID); got != 50 {
		t.Fatalf("expected stock 50 got %d", got)
	}
}

func TestPurchaseOrderReceiveOnlyOnce(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	supplier := seedSupplier(t, db, "FreshFarm")
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	po, err := svc.Create(&model.PurchaseOrder{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 40, UnitCost: 50}},
	}, "")
	if err != nil {
		t.Fatalf("create po: %v", err)
	}
	if _, err := svc.Approve(po.ID, ""); err != nil {
		t.Fatalf("approve po: %v", err)
	}

	if _, err := svc.Receive(po.ID); err != nil {
		t.Fatalf("receive po: %v", err)
	}
	// A second receive loses against the status transition and must not book
	// the quantities into stock again.
	if _, err := svc.Receive(po.ID); !errors.Is(err, ErrNotReceivable) {
		t.Fatalf("expected ErrNotReceivable got %v", err)
	}
	if got := productStock(t, db, p.ID); got != 50 {
		t.Fatalf("stock booked twice: %d", got)
	}
}

func TestPurchaseOrderCreateUnknownSupplier(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	_, err := svc.Create(&model.PurchaseOrder{
		SupplierID: p.ID, // not a supplier
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 1, UnitCost: 50}},
	}, "")
	if err == nil {
		t.Fatalf("expected error for unknown supplier")
	}

	var count int64
	if err := db.Model(&model.PurchaseOrder{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 purchase orders got %d", count)
	}
}

func TestPurchaseOrderDeleteRemovesItems(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewPurchaseOrderService(repository.NewPurchaseOrderRepo(db), repository.NewProductRepo(db), db, nil)
	supplier := seedSupplier(t, db, "FreshFarm")
	p := seedProduct(t, db, "MILK-1L", 68, 10, 30)

	po, err := svc.Create(&model.PurchaseOrder{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseOrderItem{{ProductID: p.ID, Quantity: 4, UnitCost: 50}},
	}, "")
	if err != nil {
		t.Fatalf("create po: %v", err)
	}

	if err := svc.Delete(po.ID); err != nil {
		t.Fatalf("delete po: %v", err)
	}
	if _, err := svc.Get(po.ID); !errors.Is(err, ErrPurchaseOrderNotFound) {
		t.Fatalf("expected ErrPurchaseOrderNotFound got %v", err)
	}
	var items int64
	if err := db.Model(&model.PurchaseOrderItem{}).Count(&items).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items != 0 {
		t.Fatalf("expected 0 orphan items got %d", items)
	}
}
