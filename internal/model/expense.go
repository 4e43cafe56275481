package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense lifecycle: pending -> approved/rejected -> paid.
const (
	ExpensePending  = "pending"
	ExpenseApproved = "approved"
	ExpenseRejected = "rejected"
	ExpensePaid     = "paid"
)

var ExpenseCategories = []string{"Rent", "Utilities", "Logistics", "Marketing", "Office Supplies", "Maintenance", "Insurance", "Other"}

type ExpenseVendor struct {
	Name    string `gorm:"type:varchar(200)" json:"name"`
	Contact string `gorm:"type:varchar(255)" json:"contact"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
}

type ExpenseRecurrence struct {
	IsRecurring bool       `gorm:"default:false" json:"isRecurring"`
	Frequency   string     `gorm:"type:varchar(20)" json:"frequency" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	NextDue     *time.Time `json:"nextDue,omitempty"`
}

type Expense struct {
	BaseModel
	ExpenseNumber string `gorm:"type:varchar(20);uniqueIndex" json:"expenseNumber"`

	Category    string  `gorm:"type:varchar(50);not null;index" json:"category" validate:"required,oneof=Rent Utilities Logistics Marketing 'Office Supplies' Maintenance Insurance Other"`
	Description string  `gorm:"type:varchar(500);not null" json:"description" validate:"required,max=500"`
	Amount      float64 `gorm:"not null" json:"amount" validate:"gte=0"`

	PaymentMethod string        `gorm:"type:varchar(20);not null" json:"paymentMethod" validate:"required,oneof=cash card bank_transfer cheque upi other"`
	Vendor        ExpenseVendor `gorm:"embedded;embeddedPrefix:vendor_" json:"vendor"`
	Receipt       string        `gorm:"type:varchar(500)" json:"receipt"`

	Status string `gorm:"type:varchar(20);default:pending;index" json:"status" validate:"omitempty,oneof=pending approved rejected paid"`

	ApprovedByID *uuid.UUID `gorm:"type:uuid" json:"approvedById,omitempty"`
	ApprovedBy   *User      `gorm:"foreignKey:ApprovedByID" json:"approvedBy,omitempty" validate:"-"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	Notes     string            `gorm:"type:text" json:"notes" validate:"max=1000"`
	Recurring ExpenseRecurrence `gorm:"embedded;embeddedPrefix:recurring_" json:"recurring"`
}
