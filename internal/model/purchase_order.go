package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase order lifecycle: draft -> sent -> confirmed -> shipped -> received,
// with cancelled reachable from any non-terminal state. Only the receive step
// guards the current status.
const (
	POStatusDraft     = "draft"
	POStatusSent      = "sent"
	POStatusConfirmed = "confirmed"
	POStatusShipped   = "shipped"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

type PurchaseOrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null" json:"productId" validate:"uuid_required"`
	Product         *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity        int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitCost        float64   `gorm:"not null" json:"unitCost" validate:"gte=0"`
	Total           float64   `gorm:"not null" json:"total"`
}

type PurchaseOrder struct {
	BaseModel
	PONumber string `gorm:"column:po_number;type:varchar(20);uniqueIndex" json:"poNumber"`

	SupplierID uuid.UUID `gorm:"type:uuid;not null;index" json:"supplierId" validate:"uuid_required"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`

	Items []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`

	Subtotal float64 `gorm:"not null" json:"subtotal"`
	Tax      float64 `gorm:"default:0" json:"tax" validate:"gte=0"`
	Shipping float64 `gorm:"default:0" json:"shipping" validate:"gte=0"`
	Total    float64 `gorm:"not null" json:"total"`

	Status string `gorm:"type:varchar(20);default:draft;index" json:"status" validate:"omitempty,oneof=draft sent confirmed shipped received cancelled"`

	ExpectedDelivery *time.Time `json:"expectedDelivery,omitempty"`
	ActualDelivery   *time.Time `json:"actualDelivery,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes" validate:"max=1000"`

	CreatedByID  *uuid.UUID `gorm:"type:uuid" json:"createdById,omitempty"`
	CreatedBy    *User      `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty" validate:"-"`
	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approvedById,omitempty"`
	ApprovedBy   *User      `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty" validate:"-"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	ItemCount int `gorm:"-" json:"itemCount"`
}

func (po *PurchaseOrder) AfterFind(tx *gorm.DB) error {
	po.ComputeVirtuals()
	return nil
}

func (po *PurchaseOrder) ComputeVirtuals() {
	count := 0
	for _, item := range po.Items {
		count += item.Quantity
	}
	po.ItemCount = count
}

// Receivable reports whether stock may be booked in for this order.
func (po *PurchaseOrder) Receivable() bool {
	return po.Status == POStatusConfirmed || po.Status == POStatusShipped
}
