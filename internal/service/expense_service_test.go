package service

import (
	"errors"
	"testing"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
)

func TestExpenseCreateAssignsNumberAndStatus(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenseService(repository.NewExpenseRepo(db), db)

	e, err := svc.Create(&model.Expense{
		Category:      "Rent",
		Description:   "Store rent",
		Amount:        45000,
		PaymentMethod: "bank_transfer",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if e.ExpenseNumber != "E-0001" {
		t.Fatalf("expected E-0001 got %s", e.ExpenseNumber)
	}
	if e.Status != model.ExpensePending {
		t.Fatalf("expected pending got %s", e.Status)
	}

	second, err := svc.Create(&model.Expense{
		Category:      "Utilities",
		Description:   "Electricity",
		Amount:        6800,
		PaymentMethod: "upi",
	})
	if err != nil {
		t.Fatalf("create second expense: %v", err)
	}
	if second.ExpenseNumber != "E-0002" {
		t.Fatalf("expected E-0002 got %s", second.ExpenseNumber)
	}
}

func TestExpenseCreateRejectsBadCategory(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenseService(repository.NewExpenseRepo(db), db)

	_, err := svc.Create(&model.Expense{
		Category:      "Snacks",
		Description:   "Team snacks",
		Amount:        500,
		PaymentMethod: "cash",
	})
	if err == nil {
		t.Fatalf("expected validation error for bad category")
	}
}

func TestExpenseApprove(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenseService(repository.NewExpenseRepo(db), db)

	e, err := svc.Create(&model.Expense{
		Category:      "Office Supplies",
		Description:   "Toner",
		Amount:        2300,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}

	approved, err := svc.Approve(e.ID, "")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != model.ExpenseApproved {
		t.Fatalf("expected approved got %s", approved.Status)
	}
	if approved.ApprovedAt == nil {
		t.Fatalf("expected approvedAt set")
	}
}

func TestExpenseDeleteIsHard(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenseService(repository.NewExpenseRepo(db), db)

	e, err := svc.Create(&model.Expense{
		Category:      "Other",
		Description:   "One-off",
		Amount:        100,
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}

	if err := svc.Delete(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(e.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound got %v", err)
	}

	var count int64
	if err := db.Unscoped().Model(&model.Expense{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected hard delete, found %d rows", count)
	}
}
