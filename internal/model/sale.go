package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale status values
const (
	SalePending   = "pending"
	SaleConfirmed = "confirmed"
	SaleShipped   = "shipped"
	SaleDelivered = "delivered"
	SaleCancelled = "cancelled"
)

// Payment status values shared by sales
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentPartial  = "partial"
	PaymentRefunded = "refunded"
)

type SaleCustomer struct {
	Name    string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Address string `gorm:"type:varchar(500)" json:"address"`
}

// SaleItem is one product/quantity/price line within a sale.
type SaleItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"productId" validate:"uuid_required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice float64   `gorm:"not null" json:"unitPrice" validate:"gte=0"`
	Total     float64   `gorm:"not null" json:"total"`
}

type Sale struct {
	BaseModel
	// Human-readable display identifier (S-0001), distinct from the UUID.
	SaleNumber string       `gorm:"type:varchar(20);uniqueIndex" json:"saleNumber"`
	Customer   SaleCustomer `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items      []SaleItem   `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`

	Subtotal float64 `gorm:"not null" json:"subtotal"`
	Tax      float64 `gorm:"default:0" json:"tax" validate:"gte=0"`
	Discount float64 `gorm:"default:0" json:"discount" validate:"gte=0"`
	Total    float64 `gorm:"not null" json:"total"`

	PaymentMethod string `gorm:"type:varchar(20);not null" json:"paymentMethod" validate:"required,oneof=cash card upi bank_transfer cheque other"`
	PaymentStatus string `gorm:"type:varchar(20);default:pending;index" json:"paymentStatus" validate:"omitempty,oneof=pending paid partial refunded"`
	Channel       string `gorm:"type:varchar(20);not null;index" json:"channel" validate:"required,oneof=POS Online Phone Walk-in Other"`
	Status        string `gorm:"type:varchar(20);default:pending;index" json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Notes         string `gorm:"type:text" json:"notes" validate:"max=1000"`

	ProcessedByID *uuid.UUID `gorm:"type:uuid" json:"processedById,omitempty"`
	ProcessedBy   *User      `gorm:"foreignKey:ProcessedByID" json:"processedBy,omitempty" validate:"-"`

	ItemCount int `gorm:"-" json:"itemCount"`
}

func (s *Sale) AfterFind(tx *gorm.DB) error {
	s.ComputeVirtuals()
	return nil
}

func (s *Sale) ComputeVirtuals() {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	s.ItemCount = count
}
