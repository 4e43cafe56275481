package model

import (
	"strings"

	"gorm.io/gorm"
)

// SupplierAddress is stored inline on the suppliers table.
type SupplierAddress struct {
	Street  string `gorm:"type:varchar(200)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zipCode"`
	Country string `gorm:"type:varchar(100);default:India" json:"country"`
}

type ContactPerson struct {
	Name     string `gorm:"type:varchar(100)" json:"name"`
	Position string `gorm:"type:varchar(100)" json:"position"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}

type Supplier struct {
	BaseModel
	Name          string          `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Contact       string          `gorm:"type:varchar(255);not null" json:"contact" validate:"required,email"`
	Phone         string          `gorm:"type:varchar(20);not null" json:"phone" validate:"required"`
	Address       SupplierAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	ContactPerson ContactPerson   `gorm:"embedded;embeddedPrefix:contact_person_" json:"contactPerson"`
	PaymentTerms  string          `gorm:"type:varchar(20);default:Net 30" json:"paymentTerms" validate:"omitempty,oneof='Net 15' 'Net 30' 'Net 45' 'Net 60' COD Prepaid"`
	CreditLimit   float64         `gorm:"default:0" json:"creditLimit" validate:"gte=0"`
	Rating        int             `gorm:"default:3" json:"rating" validate:"omitempty,min=1,max=5"`
	IsActive      bool            `gorm:"index" json:"isActive"`
	Notes         string          `gorm:"type:text" json:"notes" validate:"max=1000"`

	FullAddress string `gorm:"-" json:"fullAddress"`
}

func (s *Supplier) AfterFind(tx *gorm.DB) error {
	s.ComputeVirtuals()
	return nil
}

func (s *Supplier) ComputeVirtuals() {
	parts := []string{}
	for _, p := range []string{s.Address.Street, s.Address.City, s.Address.State, s.Address.ZipCode, s.Address.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	s.FullAddress = strings.Join(parts, ", ")
}
