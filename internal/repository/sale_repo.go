package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleFilter struct {
	ListParams
	Status        string
	PaymentStatus string
	Channel       string
	Range         DateRange
}

var saleSortColumns = map[string]string{
	"createdAt":  "created_at",
	"saleNumber": "sale_number",
	"total":      "total",
	"status":     "status",
}

// SaleStats aggregates sale totals over an optional date range.
type SaleStats struct {
	TotalSales        float64 `json:"totalSales"`
	TotalOrders       int64   `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type ChannelStat struct {
	Channel string  `json:"channel"`
	Count   int64   `json:"count"`
	Total   float64 `json:"total"`
}

type SaleRepository interface {
	FindAll(f SaleFilter) ([]model.Sale, int64, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	Update(sale *model.Sale) error
	Stats(r DateRange) (*SaleStats, []ChannelStat, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func applyDateRange(q *gorm.DB, r DateRange) *gorm.DB {
	if r.Start != nil {
		q = q.Where("created_at >= ?", *r.Start)
	}
	if r.End != nil {
		q = q.Where("created_at <= ?", *r.End)
	}
	return q
}

func (r *saleRepo) FindAll(f SaleFilter) ([]model.Sale, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.Sale{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("sale_number LIKE ? OR customer_name LIKE ? OR customer_email LIKE ?", like, like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.Channel != "" {
		q = q.Where("channel = ?", f.Channel)
	}
	q = applyDateRange(q, f.Range)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	err := q.Preload("Items.Product").Preload("ProcessedBy").
		Order(f.OrderClause(saleSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Items.Product").Preload("ProcessedBy").
		First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Omit("Items").Save(sale).Error
}

func (r *saleRepo) Stats(rng DateRange) (*SaleStats, []ChannelStat, error) {
	var stats SaleStats
	q := applyDateRange(r.db.Model(&model.Sale{}), rng)
	err := q.Select(
		"COALESCE(SUM(total), 0) as total_sales, COUNT(*) as total_orders, COALESCE(AVG(total), 0) as average_order_value",
	).Scan(&stats).Error
	if err != nil {
		return nil, nil, err
	}

	var channels []ChannelStat
	q = applyDateRange(r.db.Model(&model.Sale{}), rng)
	err = q.Select("channel, COUNT(*) as count, COALESCE(SUM(total), 0) as total").
		Group("channel").
		Scan(&channels).Error
	return &stats, channels, err
}
