package service

import (
	"errors"
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/sequence"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService interface {
	Create(req *model.Expense) (*model.Expense, error)
	Update(id uuid.UUID, req *model.Expense) (*model.Expense, error)
	Approve(id uuid.UUID, actorID string) (*model.Expense, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Expense, error)
	List(f repository.ExpenseFilter) ([]model.Expense, repository.Pagination, error)
	Stats(r repository.DateRange) (*repository.ExpenseStats, []repository.CategoryStat, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	db          *gorm.DB
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, db *gorm.DB) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, db: db}
}

func (s *expenseService) Create(req *model.Expense) (*model.Expense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}
	if req.Status == "" {
		req.Status = model.ExpensePending
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := sequence.Next(tx, sequence.Expenses)
		if err != nil {
			return err
		}
		req.ExpenseNumber = sequence.Format("E", n)
		return tx.Create(req).Error
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *expenseService) Update(id uuid.UUID, req *model.Expense) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.Description != "" {
		expense.Description = req.Description
	}
	if req.Amount > 0 {
		expense.Amount = req.Amount
	}
	if req.PaymentMethod != "" {
		expense.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		expense.Status = req.Status
	}
	if req.Vendor.Name != "" {
		expense.Vendor = req.Vendor
	}
	if req.Notes != "" {
		expense.Notes = req.Notes
	}
	if req.Recurring.IsRecurring {
		expense.Recurring = req.Recurring
	}

	if errs := validator.ValidateStruct(expense); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Approve(id uuid.UUID, actorID string) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}

	now := time.Now()
	expense.Status = model.ExpenseApproved
	expense.ApprovedAt = &now
	if actor, err := uuid.Parse(actorID); err == nil {
		expense.ApprovedByID = &actor
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Delete(id uuid.UUID) error {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return ErrExpenseNotFound
	}
	return s.db.Unscoped().Delete(expense).Error
}

func (s *expenseService) Get(id uuid.UUID) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(id)
	if err != nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

func (s *expenseService) List(f repository.ExpenseFilter) ([]model.Expense, repository.Pagination, error) {
	f.Normalize()
	expenses, total, err := s.expenseRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return expenses, repository.NewPagination(f.ListParams, total), nil
}

func (s *expenseService) Stats(r repository.DateRange) (*repository.ExpenseStats, []repository.CategoryStat, error) {
	return s.expenseRepo.Stats(r)
}
