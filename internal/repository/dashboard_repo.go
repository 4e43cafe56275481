package repository

import (
	"sort"
	"time"

	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlySummary is one month of sales/expense totals for the chart endpoint.
type MonthlySummary struct {
	Month    string  `json:"month"`
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
}

// DashboardCounts are the headline counters on the dashboard.
type DashboardCounts struct {
	TotalProducts    int64 `json:"totalProducts"`
	ActiveStaff      int64 `json:"activeStaff"`
	ActiveSuppliers  int64 `json:"activeSuppliers"`
	OpenPOs          int64 `json:"openPurchaseOrders"`
	LowStockProducts int64 `json:"lowStockProducts"`
}

// MonthTotals holds one calendar month of sale/expense aggregates.
type MonthTotals struct {
	Sales    float64
	Orders   int64
	Expenses float64
}

// InventorySlice is one wedge of the inventory status pie.
type InventorySlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Activity is one row in the recent-activity feed.
type Activity struct {
	Type        string    `json:"type"`
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
	MonthTotals(start, end time.Time) (*MonthTotals, error)
	MonthlySummaries(months int, now time.Time) ([]MonthlySummary, error)
	InventoryStatus() ([]InventorySlice, error)
	LowStockProducts() ([]model.Product, error)
	RecentActivities(perType int) ([]Activity, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// expenseSpentStatuses are the statuses counted as money out the door.
var expenseSpentStatuses = []string{model.ExpenseApproved, model.ExpensePaid}

func (r *dashboardRepo) Counts() (*DashboardCounts, error) {
	var c DashboardCounts

	if err := r.db.Model(&model.Product{}).Where("is_active = ?", true).Count(&c.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Staff{}).Where("status = ?", model.StaffActive).Count(&c.ActiveStaff).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Supplier{}).Where("is_active = ?", true).Count(&c.ActiveSuppliers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PurchaseOrder{}).
		Where("status IN ?", []string{model.POStatusDraft, model.POStatusSent, model.POStatusConfirmed, model.POStatusShipped}).
		Count(&c.OpenPOs).Error; err != nil {
		return nil, err
	}
	// Same predicate as Product.IsLowStock.
	if err := r.db.Model(&model.Product{}).
		Where("is_active = ? AND stock <= min_stock", true).
		Count(&c.LowStockProducts).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// MonthTotals aggregates sales and approved/paid expenses over [start, end).
func (r *dashboardRepo) MonthTotals(start, end time.Time) (*MonthTotals, error) {
	var t MonthTotals

	err := r.db.Model(&model.Sale{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total), 0) as sales, COUNT(*) as orders").
		Scan(&t).Error
	if err != nil {
		return nil, err
	}

	// Scan resets its destination, so the expense total needs its own struct.
	var spent struct{ Expenses float64 }
	err = r.db.Model(&model.Expense{}).
		Where("created_at >= ? AND created_at < ? AND status IN ?", start, end, expenseSpentStatuses).
		Select("COALESCE(SUM(amount), 0) as expenses").
		Scan(&spent).Error
	t.Expenses = spent.Expenses
	return &t, err
}

func (r *dashboardRepo) MonthlySummaries(months int, now time.Time) ([]MonthlySummary, error) {
	data := make([]MonthlySummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		totals, err := r.MonthTotals(start, end)
		if err != nil {
			return nil, err
		}
		data = append(data, MonthlySummary{
			Month:    start.Format("Jan"),
			Sales:    totals.Sales,
			Expenses: totals.Expenses,
		})
	}
	return data, nil
}

func (r *dashboardRepo) InventoryStatus() ([]InventorySlice, error) {
	var total, low, out int64

	if err := r.db.Model(&model.Product{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("is_active = ? AND stock <= min_stock AND stock > 0", true).
		Count(&low).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("is_active = ? AND stock = 0", true).
		Count(&out).Error; err != nil {
		return nil, err
	}

	return []InventorySlice{
		{Name: "Products", Value: total - low - out},
		{Name: "Low Stock", Value: low},
		{Name: "Out of Stock", Value: out},
	}, nil
}

func (r *dashboardRepo) LowStockProducts() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").
		Where("is_active = ? AND stock <= min_stock", true).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (r *dashboardRepo) RecentActivities(perType int) ([]Activity, error) {
	var sales []model.Sale
	if err := r.db.Order("created_at DESC").Limit(perType).Find(&sales).Error; err != nil {
		return nil, err
	}
	var expenses []model.Expense
	if err := r.db.Order("created_at DESC").Limit(perType).Find(&expenses).Error; err != nil {
		return nil, err
	}
	var orders []model.PurchaseOrder
	if err := r.db.Preload("Supplier").Order("created_at DESC").Limit(perType).Find(&orders).Error; err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, 3*perType)
	for _, s := range sales {
		activities = append(activities, Activity{
			Type:        "sale",
			ID:          s.ID,
			Description: "Sale " + s.SaleNumber,
			Timestamp:   s.CreatedAt,
		})
	}
	for _, e := range expenses {
		activities = append(activities, Activity{
			Type:        "expense",
			ID:          e.ID,
			Description: e.Category + " expense " + e.ExpenseNumber,
			Timestamp:   e.CreatedAt,
		})
	}
	for _, po := range orders {
		desc := "PO " + po.PONumber
		if po.Supplier != nil {
			desc += " - " + po.Supplier.Name
		}
		activities = append(activities, Activity{
			Type:        "purchase_order",
			ID:          po.ID,
			Description: desc,
			Timestamp:   po.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}
	return activities, nil
}
