package service

import (
	"errors"
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound  = errors.New("staff member not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type StaffService interface {
	Create(req *model.Staff) (*model.Staff, error)
	Update(id uuid.UUID, req *model.Staff) (*model.Staff, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Staff, error)
	List(f repository.StaffFilter) ([]model.Staff, repository.Pagination, error)
	Departments() ([]string, error)
	Stats() (*repository.StaffStats, []repository.DepartmentStat, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) Create(req *model.Staff) (*model.Staff, error) {
	if req.JoinDate.IsZero() {
		req.JoinDate = time.Now()
	}
	if req.Status == "" {
		req.Status = model.StaffActive
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	existing, _ := s.staffRepo.FindByEmail(req.Email)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrDuplicateEmail
	}

	if err := s.staffRepo.Create(req); err != nil {
		return nil, err
	}
	req.ComputeVirtuals()
	return req, nil
}

func (s *staffService) Update(id uuid.UUID, req *model.Staff) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByID(id)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	if req.Name != "" {
		staff.Name = req.Name
	}
	if req.Position != "" {
		staff.Position = req.Position
	}
	if req.Department != "" {
		staff.Department = req.Department
	}
	if req.Salary > 0 {
		staff.Salary = req.Salary
	}
	if req.Address != "" {
		staff.Address = req.Address
	}
	if !req.JoinDate.IsZero() {
		staff.JoinDate = req.JoinDate
	}
	if req.Experience != "" {
		staff.Experience = req.Experience
	}
	if req.Contact != "" {
		staff.Contact = req.Contact
	}
	if req.Email != "" && req.Email != staff.Email {
		other, _ := s.staffRepo.FindByEmail(req.Email)
		if other != nil && other.ID != uuid.Nil {
			return nil, ErrDuplicateEmail
		}
		staff.Email = req.Email
	}
	if req.Status != "" {
		staff.Status = req.Status
	}
	if req.EmergencyContact.Name != "" {
		staff.EmergencyContact = req.EmergencyContact
	}
	if req.Notes != "" {
		staff.Notes = req.Notes
	}

	if errs := validator.ValidateStruct(staff); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.staffRepo.Update(staff); err != nil {
		return nil, err
	}
	staff.ComputeVirtuals()
	return staff, nil
}

// Delete deactivates the staff member; the record is kept.
func (s *staffService) Delete(id uuid.UUID) error {
	if err := s.staffRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return err
	}
	return nil
}

func (s *staffService) Get(id uuid.UUID) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByID(id)
	if err != nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (s *staffService) List(f repository.StaffFilter) ([]model.Staff, repository.Pagination, error) {
	f.Normalize()
	staff, total, err := s.staffRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return staff, repository.NewPagination(f.ListParams, total), nil
}

func (s *staffService) Departments() ([]string, error) {
	return s.staffRepo.Departments()
}

func (s *staffService) Stats() (*repository.StaffStats, []repository.DepartmentStat, error) {
	return s.staffRepo.Stats()
}
