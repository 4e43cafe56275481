package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierFilter struct {
	ListParams
	IsActive *bool
}

var supplierSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"rating":    "rating",
}

type SupplierStats struct {
	TotalSuppliers  int64   `json:"totalSuppliers"`
	ActiveSuppliers int64   `json:"activeSuppliers"`
	AverageRating   float64 `json:"averageRating"`
}

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(f SupplierFilter) ([]model.Supplier, int64, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Deactivate(id uuid.UUID) error
	Stats() (*SupplierStats, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(f SupplierFilter) ([]model.Supplier, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.Supplier{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR contact LIKE ?", like, like)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []model.Supplier
	err := q.Order(f.OrderClause(supplierSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&suppliers).Error
	return suppliers, total, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&model.Supplier{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *supplierRepo) Stats() (*SupplierStats, error) {
	var stats SupplierStats
	if err := r.db.Model(&model.Supplier{}).Count(&stats.TotalSuppliers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Supplier{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveSuppliers).Error; err != nil {
		return nil, err
	}
	// Scan resets its destination; keep the counts out of its way.
	var rating struct{ AverageRating float64 }
	err := r.db.Model(&model.Supplier{}).
		Where("is_active = ?", true).
		Select("COALESCE(AVG(rating), 0) as average_rating").
		Scan(&rating).Error
	stats.AverageRating = rating.AverageRating
	return &stats, err
}
