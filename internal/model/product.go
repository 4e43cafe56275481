package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories accepted by the API.
var ProductCategories = []string{"Sports", "Groceries", "Dairy Products", "Stationary", "Electronics", "Other"}

type Product struct {
	BaseModel
	SKU         string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Description string  `gorm:"type:text" json:"description" validate:"max=1000"`
	Category    string  `gorm:"type:varchar(50);not null;index" json:"category" validate:"required,oneof=Sports Groceries 'Dairy Products' Stationary Electronics Other"`
	Variant     string  `gorm:"type:varchar(100)" json:"variant" validate:"max=100"`
	Price       float64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Cost        float64 `gorm:"default:0" json:"cost" validate:"gte=0"`
	Stock       int     `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	MinStock    int     `gorm:"default:0" json:"minStock" validate:"gte=0"`
	MaxStock    int     `json:"maxStock" validate:"gte=0"`
	Unit        string  `gorm:"type:varchar(20);default:piece" json:"unit"`
	Barcode     *string `gorm:"type:varchar(100);uniqueIndex" json:"barcode,omitempty"`
	Tags        string  `gorm:"type:text" json:"tags"`
	IsActive    bool    `gorm:"index" json:"isActive"`

	ExpiryDate *time.Time `json:"expiryDate,omitempty"`

	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplierId,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`

	// Derived fields, recomputed on every read. The dashboard queries use the
	// matching SQL predicate (stock <= min_stock); the two must stay identical.
	IsLowStock   bool    `gorm:"-" json:"isLowStock"`
	ProfitMargin float64 `gorm:"-" json:"profitMargin"`
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.ComputeVirtuals()
	return nil
}

// ComputeVirtuals refreshes the derived fields from the stored columns.
func (p *Product) ComputeVirtuals() {
	p.IsLowStock = p.Stock <= p.MinStock
	if p.Cost > 0 {
		p.ProfitMargin = (p.Price - p.Cost) / p.Cost * 100
	} else {
		p.ProfitMargin = 0
	}
}
