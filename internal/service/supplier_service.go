package service

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SupplierService interface {
	Create(req *model.Supplier) (*model.Supplier, error)
	Update(id uuid.UUID, req *model.Supplier) (*model.Supplier, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Supplier, error)
	List(f repository.SupplierFilter) ([]model.Supplier, repository.Pagination, error)
	Stats() (*repository.SupplierStats, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(req *model.Supplier) (*model.Supplier, error) {
	if req.Rating == 0 {
		req.Rating = 3
	}
	if req.PaymentTerms == "" {
		req.PaymentTerms = "Net 30"
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.supplierRepo.Create(req); err != nil {
		return nil, err
	}
	req.ComputeVirtuals()
	return req, nil
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	if req.Name != "" {
		supplier.Name = req.Name
	}
	if req.Contact != "" {
		supplier.Contact = req.Contact
	}
	if req.Phone != "" {
		supplier.Phone = req.Phone
	}
	if req.Address != (model.SupplierAddress{}) {
		supplier.Address = req.Address
	}
	if req.ContactPerson != (model.ContactPerson{}) {
		supplier.ContactPerson = req.ContactPerson
	}
	if req.PaymentTerms != "" {
		supplier.PaymentTerms = req.PaymentTerms
	}
	if req.CreditLimit > 0 {
		supplier.CreditLimit = req.CreditLimit
	}
	if req.Rating > 0 {
		supplier.Rating = req.Rating
	}
	// A partial body must not deactivate; deactivation goes through Delete.
	if req.IsActive {
		supplier.IsActive = true
	}
	if req.Notes != "" {
		supplier.Notes = req.Notes
	}

	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	supplier.ComputeVirtuals()
	return supplier, nil
}

func (s *supplierService) Delete(id uuid.UUID) error {
	if err := s.supplierRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return nil
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) List(f repository.SupplierFilter) ([]model.Supplier, repository.Pagination, error) {
	f.Normalize()
	suppliers, total, err := s.supplierRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return suppliers, repository.NewPagination(f.ListParams, total), nil
}

func (s *supplierService) Stats() (*repository.SupplierStats, error) {
	return s.supplierRepo.Stats()
}
