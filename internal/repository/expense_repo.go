package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseFilter struct {
	ListParams
	Category string
	Status   string
	Range    DateRange
}

var expenseSortColumns = map[string]string{
	"createdAt":     "created_at",
	"expenseNumber": "expense_number",
	"amount":        "amount",
	"category":      "category",
	"status":        "status",
}

type ExpenseStats struct {
	TotalExpenses  float64 `json:"totalExpenses"`
	TotalCount     int64   `json:"totalCount"`
	AverageExpense float64 `json:"averageExpense"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

type ExpenseRepository interface {
	FindAll(f ExpenseFilter) ([]model.Expense, int64, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Stats(r DateRange) (*ExpenseStats, []CategoryStat, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) FindAll(f ExpenseFilter) ([]model.Expense, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.Expense{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("expense_number LIKE ? OR description LIKE ? OR vendor_name LIKE ?", like, like, like)
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	q = applyDateRange(q, f.Range)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []model.Expense
	err := q.Preload("ApprovedBy").
		Order(f.OrderClause(expenseSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&expenses).Error
	return expenses, total, err
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.Preload("ApprovedBy").First(&expense, "id = ?", id).Error
	return &expense, err
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Stats(rng DateRange) (*ExpenseStats, []CategoryStat, error) {
	var stats ExpenseStats
	q := applyDateRange(r.db.Model(&model.Expense{}), rng)
	err := q.Select(
		"COALESCE(SUM(amount), 0) as total_expenses, COUNT(*) as total_count, COALESCE(AVG(amount), 0) as average_expense",
	).Scan(&stats).Error
	if err != nil {
		return nil, nil, err
	}

	var categories []CategoryStat
	q = applyDateRange(r.db.Model(&model.Expense{}), rng)
	err = q.Select("category, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Group("category").
		Scan(&categories).Error
	return &stats, categories, err
}
