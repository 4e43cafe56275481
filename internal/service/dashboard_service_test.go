package service

import (
	"testing"
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
)

func TestGrowthZeroPrevious(t *testing.T) {
	if g := growth(500, 0); g != 0 {
		t.Fatalf("expected 0 growth with empty prior month got %v", g)
	}
	if g := growth(150, 100); g != 50 {
		t.Fatalf("expected 50 got %v", g)
	}
	if g := growth(50, 100); g != -50 {
		t.Fatalf("expected -50 got %v", g)
	}
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewDashboardService(repository.NewDashboardRepo(db))

	seedProduct(t, db, "A", 10, 50, 5)
	seedProduct(t, db, "B", 10, 2, 5) // low stock
	seedSupplier(t, db, "FreshFarm")

	saleSvc := NewSaleService(repository.NewSaleRepo(db), repository.NewProductRepo(db), db, nil)
	var first model.Product
	if err := db.First(&first, "sku = ?", "A").Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	if _, err := saleSvc.Create(&model.Sale{
		Customer:      model.SaleCustomer{Name: "Walk-in"},
		Items:         []model.SaleItem{{ProductID: first.ID, Quantity: 2, UnitPrice: 100}},
		PaymentMethod: "cash",
		Channel:       "POS",
	}, ""); err != nil {
		t.Fatalf("seed sale: %v", err)
	}

	expSvc := NewExpenseService(repository.NewExpenseRepo(db), db)
	if _, err := expSvc.Create(&model.Expense{
		Category: "Rent", Description: "Rent", Amount: 50,
		PaymentMethod: "cash", Status: model.ExpenseApproved,
	}); err != nil {
		t.Fatalf("seed approved expense: %v", err)
	}
	// Pending spend does not count against profit.
	if _, err := expSvc.Create(&model.Expense{
		Category: "Other", Description: "Pending", Amount: 999,
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("seed pending expense: %v", err)
	}

	stats, err := svc.Stats(time.Now())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Counts.TotalProducts != 2 {
		t.Fatalf("expected 2 products got %d", stats.Counts.TotalProducts)
	}
	if stats.Counts.LowStockProducts != 1 {
		t.Fatalf("expected 1 low-stock product got %d", stats.Counts.LowStockProducts)
	}
	if stats.Counts.ActiveSuppliers != 1 {
		t.Fatalf("expected 1 supplier got %d", stats.Counts.ActiveSuppliers)
	}
	if stats.MonthlyData.Sales != 200 {
		t.Fatalf("expected monthly sales 200 got %v", stats.MonthlyData.Sales)
	}
	if stats.MonthlyData.Expenses != 50 {
		t.Fatalf("expected monthly expenses 50 got %v", stats.MonthlyData.Expenses)
	}
	if stats.MonthlyData.Profit != 150 {
		t.Fatalf("expected profit 150 got %v", stats.MonthlyData.Profit)
	}
	if stats.MonthlyData.Orders != 1 {
		t.Fatalf("expected 1 order got %d", stats.MonthlyData.Orders)
	}
	// No prior month data: growth pinned at zero.
	if stats.Growth.Sales != 0 || stats.Growth.Orders != 0 {
		t.Fatalf("expected zero growth got %+v", stats.Growth)
	}
}

func TestChartDataClampsMonths(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewDashboardService(repository.NewDashboardRepo(db))

	data, err := svc.ChartData(0, time.Now())
	if err != nil {
		t.Fatalf("chart data: %v", err)
	}
	if len(data) != 12 {
		t.Fatalf("expected 12 months by default got %d", len(data))
	}

	data, err = svc.ChartData(6, time.Now())
	if err != nil {
		t.Fatalf("chart data: %v", err)
	}
	if len(data) != 6 {
		t.Fatalf("expected 6 months got %d", len(data))
	}
}

func TestInventoryStatusSlices(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewDashboardService(repository.NewDashboardRepo(db))

	seedProduct(t, db, "FULL", 10, 40, 5)
	seedProduct(t, db, "LOW", 10, 3, 5)
	seedProduct(t, db, "OUT", 10, 0, 5)

	slices, err := svc.InventoryStatus()
	if err != nil {
		t.Fatalf("inventory status: %v", err)
	}
	byName := map[string]int64{}
	for _, s := range slices {
		byName[s.Name] = s.Value
	}
	if byName["Products"] != 1 || byName["Low Stock"] != 1 || byName["Out of Stock"] != 1 {
		t.Fatalf("unexpected slices: %+v", byName)
	}
}

func TestLowStockAlertPriorities(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewDashboardService(repository.NewDashboardRepo(db))

	seedProduct(t, db, "WARN", 10, 2, 5)
	seedProduct(t, db, "CRIT", 10, 0, 5)

	alerts, err := svc.LowStockAlerts()
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts got %d", len(alerts))
	}
	priorities := map[string]string{}
	for _, a := range alerts {
		priorities[a.ProductName] = a.Priority
	}
	if priorities["Product WARN"] != "warning" {
		t.Fatalf("expected warning got %q", priorities["Product WARN"])
	}
	if priorities["Product CRIT"] != "critical" {
		t.Fatalf("expected critical got %q", priorities["Product CRIT"])
	}
}
