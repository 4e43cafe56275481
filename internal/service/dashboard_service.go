package service

import (
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
)

// DashboardStats is the headline payload for the dashboard overview.
type DashboardStats struct {
	Counts      repository.DashboardCounts `json:"counts"`
	MonthlyData MonthlyData                `json:"monthlyData"`
	Growth      Growth                     `json:"growth"`
}

type MonthlyData struct {
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Orders   int64   `json:"orders"`
}

type Growth struct {
	Sales  float64 `json:"sales"`
	Orders float64 `json:"orders"`
}

// LowStockAlert is one entry on the dashboard alert feed.
type LowStockAlert struct {
	ProductID    interface{}     `json:"productId"`
	ProductName  string          `json:"productName"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"currentStock"`
	MinStock     int             `json:"minStock"`
	Priority     string          `json:"priority"`
	Supplier     *model.Supplier `json:"supplier,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

type DashboardService interface {
	Stats(now time.Time) (*DashboardStats, error)
	ChartData(months int, now time.Time) ([]repository.MonthlySummary, error)
	InventoryStatus() ([]repository.InventorySlice, error)
	LowStockAlerts() ([]LowStockAlert, error)
	RecentActivities() ([]repository.Activity, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// growth returns the month-over-month change in percent, 0 when the prior
// period had nothing to compare against.
func growth(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func (s *dashboardService) Stats(now time.Time) (*DashboardStats, error) {
	counts, err := s.repo.Counts()
	if err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	current, err := s.repo.MonthTotals(startOfMonth, startOfMonth.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	previous, err := s.repo.MonthTotals(startOfLastMonth, startOfMonth)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Counts: *counts,
		MonthlyData: MonthlyData{
			Sales:    current.Sales,
			Expenses: current.Expenses,
			Profit:   current.Sales - current.Expenses,
			Orders:   current.Orders,
		},
		Growth: Growth{
			Sales:  growth(current.Sales, previous.Sales),
			Orders: growth(float64(current.Orders), float64(previous.Orders)),
		},
	}, nil
}

func (s *dashboardService) ChartData(months int, now time.Time) ([]repository.MonthlySummary, error) {
	if months < 1 || months > 36 {
		months = 12
	}
	return s.repo.MonthlySummaries(months, now)
}

func (s *dashboardService) InventoryStatus() ([]repository.InventorySlice, error) {
	return s.repo.InventoryStatus()
}

func (s *dashboardService) LowStockAlerts() ([]LowStockAlert, error) {
	products, err := s.repo.LowStockProducts()
	if err != nil {
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(products))
	now := time.Now()
	for _, p := range products {
		priority := "warning"
		if p.Stock == 0 {
			priority = "critical"
		}
		alerts = append(alerts, LowStockAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Category:     p.Category,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
			Priority:     priority,
			Supplier:     p.Supplier,
			Timestamp:    now,
		})
	}
	return alerts, nil
}

func (s *dashboardService) RecentActivities() ([]repository.Activity, error) {
	return s.repo.RecentActivities(5)
}
