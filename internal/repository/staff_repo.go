package repository

import (
	"go-retail-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffFilter struct {
	ListParams
	Department string
	Status     string
}

var staffSortColumns = map[string]string{
	"createdAt":  "created_at",
	"name":       "name",
	"department": "department",
	"salary":     "salary",
	"joinDate":   "join_date",
}

type StaffStats struct {
	TotalStaff    int64   `json:"totalStaff"`
	ActiveStaff   int64   `json:"activeStaff"`
	TotalSalary   float64 `json:"totalSalary"`
	AverageSalary float64 `json:"averageSalary"`
}

type DepartmentStat struct {
	Department  string  `json:"department"`
	Count       int64   `json:"count"`
	TotalSalary float64 `json:"totalSalary"`
}

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindAll(f StaffFilter) ([]model.Staff, int64, error)
	FindByID(id uuid.UUID) (*model.Staff, error)
	FindByEmail(email string) (*model.Staff, error)
	Update(staff *model.Staff) error
	Deactivate(id uuid.UUID) error
	Departments() ([]string, error)
	Stats() (*StaffStats, []DepartmentStat, error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepo) FindAll(f StaffFilter) ([]model.Staff, int64, error) {
	f.Normalize()

	q := r.db.Model(&model.Staff{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR position LIKE ? OR email LIKE ?", like, like, like)
	}
	if f.Department != "" && f.Department != "all" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var staff []model.Staff
	err := q.Order(f.OrderClause(staffSortColumns)).
		Offset(f.Offset()).Limit(f.Limit).
		Find(&staff).Error
	return staff, total, err
}

func (r *staffRepo) FindByID(id uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	return &staff, err
}

func (r *staffRepo) FindByEmail(email string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.First(&staff, "email = ?", email).Error
	return &staff, err
}

func (r *staffRepo) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

// Deactivate is the delete operation for staff: status flips to inactive, the
// record stays for payroll and audit history.
func (r *staffRepo) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&model.Staff{}).Where("id = ?", id).Update("status", model.StaffInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *staffRepo) Departments() ([]string, error) {
	var departments []string
	err := r.db.Model(&model.Staff{}).
		Distinct("department").
		Order("department ASC").
		Pluck("department", &departments).Error
	return departments, err
}

func (r *staffRepo) Stats() (*StaffStats, []DepartmentStat, error) {
	var stats StaffStats
	if err := r.db.Model(&model.Staff{}).Count(&stats.TotalStaff).Error; err != nil {
		return nil, nil, err
	}
	if err := r.db.Model(&model.Staff{}).
		Where("status = ?", model.StaffActive).
		Count(&stats.ActiveStaff).Error; err != nil {
		return nil, nil, err
	}
	// Scan resets its destination; keep the counts out of its way.
	var salary struct {
		TotalSalary   float64
		AverageSalary float64
	}
	err := r.db.Model(&model.Staff{}).
		Where("status = ?", model.StaffActive).
		Select("COALESCE(SUM(salary), 0) as total_salary, COALESCE(AVG(salary), 0) as average_salary").
		Scan(&salary).Error
	if err != nil {
		return nil, nil, err
	}
	stats.TotalSalary = salary.TotalSalary
	stats.AverageSalary = salary.AverageSalary

	var departments []DepartmentStat
	err = r.db.Model(&model.Staff{}).
		Select("department, COUNT(*) as count, COALESCE(SUM(salary), 0) as total_salary").
		Group("department").
		Scan(&departments).Error
	return &stats, departments, err
}
