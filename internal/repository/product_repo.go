package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	ListParams
	Category string
	Supplier string
	IsActive *bool
	LowStock bool
}

var productSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"sku":       "sku",
	"price":     "price",
	"stock":     "stock",
	"category":  "category",
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(f ProductFilter) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Deactivate(id uuid.UUID) error
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int) error
	AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error
	DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error
	LowStock() ([]model.Product, error)
	Categories() ([]string, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(f ProductFilter) ([]model.Product, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.Product{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ? OR description LIKE ?", like, like, like)
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Supplier != "" {
		q = q.Where("supplier_id = ?", f.Supplier)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.LowStock {
		q = q.Where("stock <= min_stock")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := q.Preload("Supplier").
		Order(f.OrderClause(productSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Supplier").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Deactivate is the delete operation for products: the row survives for sale
// and purchase-order history, it just stops showing up as sellable.
func (r *productRepo) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&model.Product{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStock takes *gorm.DB so it can run inside the caller's transaction.
func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", newStock).Error
}

// AdjustStock applies a relative stock delta in a single statement.
func (r *productRepo) AdjustStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

// DecrementStock subtracts qty only while enough stock remains. The predicate
// in the UPDATE is the concurrency guard: two concurrent decrements cannot
// both win on the same units, the loser affects zero rows and gets
// gorm.ErrRecordNotFound.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LowStock uses the same predicate as Product.IsLowStock; keep the two in sync.
func (r *productRepo) LowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Supplier").
		Where("is_active = ? AND stock <= min_stock", true).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
