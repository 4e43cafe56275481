package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StaffActive     = "active"
	StaffInactive   = "inactive"
	StaffTerminated = "terminated"
)

var StaffDepartments = []string{"Management", "Sales", "Inventory", "Finance", "HR", "Operations", "Staff"}

type EmergencyContact struct {
	Name         string `gorm:"type:varchar(100)" json:"name"`
	Relationship string `gorm:"type:varchar(50)" json:"relationship"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
}

type Staff struct {
	BaseModel
	Name       string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Position   string    `gorm:"type:varchar(100);not null" json:"position" validate:"required,max=100"`
	Department string    `gorm:"type:varchar(50);not null;default:Staff;index" json:"department" validate:"required,oneof=Management Sales Inventory Finance HR Operations Staff"`
	Salary     float64   `gorm:"not null" json:"salary" validate:"gte=0"`
	Address    string    `gorm:"type:varchar(500);not null" json:"address" validate:"required,max=500"`
	JoinDate   time.Time `gorm:"not null" json:"joinDate"`
	Experience string    `gorm:"type:varchar(50);not null" json:"experience" validate:"required,max=50"`
	Contact    string    `gorm:"type:varchar(20);not null" json:"contact" validate:"required"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Status     string    `gorm:"type:varchar(20);default:active;index" json:"status" validate:"omitempty,oneof=active inactive terminated"`

	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergencyContact"`
	Notes            string           `gorm:"type:text" json:"notes" validate:"max=1000"`

	YearsOfService int `gorm:"-" json:"yearsOfService"`
}

func (s *Staff) AfterFind(tx *gorm.DB) error {
	s.ComputeVirtuals()
	return nil
}

func (s *Staff) ComputeVirtuals() {
	if s.JoinDate.IsZero() {
		s.YearsOfService = 0
		return
	}
	days := int(time.Since(s.JoinDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	s.YearsOfService = days / 365
}
