package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrderFilter struct {
	ListParams
	Status   string
	Supplier string
	Range    DateRange
}

var poSortColumns = map[string]string{
	"createdAt": "created_at",
	"poNumber":  "po_number",
	"total":     "total",
	"status":    "status",
}

type PurchaseOrderRepository interface {
	FindAll(f PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error)
	FindByID(id uuid.UUID) (*model.PurchaseOrder, error)
	Update(po *model.PurchaseOrder) error
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) FindAll(f PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.PurchaseOrder{})
	if f.Search != "" {
		q = q.Where("po_number LIKE ?", "%"+f.Search+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Supplier != "" {
		q = q.Where("supplier_id = ?", f.Supplier)
	}
	q = applyDateRange(q, f.Range)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.PurchaseOrder
	err := q.Preload("Supplier").Preload("Items.Product").
		Preload("CreatedBy").Preload("ApprovedBy").
		Order(f.OrderClause(poSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *purchaseOrderRepo) FindByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.Preload("Supplier").Preload("Items.Product").
		Preload("CreatedBy").Preload("ApprovedBy").
		First(&po, "id = ?", id).Error
	return &po, err
}

func (r *purchaseOrderRepo) Update(po *model.PurchaseOrder) error {
	return r.db.Omit("Items").Save(po).Error
}
