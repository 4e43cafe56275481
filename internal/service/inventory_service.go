package service

import (
	"errors"
	"strings"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/ws"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("SKU already exists")
	ErrStockBelowZero  = errors.New("stock cannot go below zero")
	ErrUnknownStockOp  = errors.New("unknown stock operation, use set, add or subtract")
)

// Stock patch operations
const (
	StockOpSet      = "set"
	StockOpAdd      = "add"
	StockOpSubtract = "subtract"
)

type InventoryService interface {
	CreateProduct(req *model.Product) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	UpdateStock(id uuid.UUID, operation string, quantity int) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(f repository.ProductFilter) ([]model.Product, repository.Pagination, error)
	LowStock() ([]model.Product, error)
	Categories() ([]string, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewInventoryService(productRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: productRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product) (*model.Product, error) {
	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	// Duplicate check before insert gives a clean error instead of a raw
	// unique-index failure.
	existing, _ := s.productRepo.FindBySKU(req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrDuplicateSKU
	}

	if req.Unit == "" {
		req.Unit = "piece"
	}

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	req.ComputeVirtuals()

	s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":    req.ID,
			"sku":   req.SKU,
			"name":  req.Name,
			"stock": req.Stock,
		},
	})

	return req, nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		if req.SKU != "" {
			sku := strings.ToUpper(strings.TrimSpace(req.SKU))
			if sku != existing.SKU {
				other, _ := s.productRepo.FindBySKU(sku)
				if other != nil && other.ID != uuid.Nil {
					return ErrDuplicateSKU
				}
			}
			existing.SKU = sku
		}
		// Zero values mean "not supplied"; a partial body leaves the other
		// columns alone. Stock has its own endpoint for absolute writes and
		// deactivation goes through delete.
		if req.Name != "" {
			existing.Name = req.Name
		}
		if req.Category != "" {
			existing.Category = req.Category
		}
		if req.Description != "" {
			existing.Description = req.Description
		}
		if req.Variant != "" {
			existing.Variant = req.Variant
		}
		if req.Price > 0 {
			existing.Price = req.Price
		}
		if req.Cost > 0 {
			existing.Cost = req.Cost
		}
		if req.Stock > 0 {
			existing.Stock = req.Stock
		}
		if req.MinStock > 0 {
			existing.MinStock = req.MinStock
		}
		if req.MaxStock > 0 {
			existing.MaxStock = req.MaxStock
		}
		if req.Unit != "" {
			existing.Unit = req.Unit
		}
		if req.Barcode != nil {
			existing.Barcode = req.Barcode
		}
		if req.Tags != "" {
			existing.Tags = req.Tags
		}
		if req.IsActive {
			existing.IsActive = true
		}
		if req.ExpiryDate != nil {
			existing.ExpiryDate = req.ExpiryDate
		}
		if req.SupplierID != nil {
			existing.SupplierID = req.SupplierID
		}

		if errs := validator.ValidateStruct(&existing); len(errs) > 0 {
			return errors.New(validator.Describe(errs))
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.ComputeVirtuals()

	s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":    updated.ID,
			"sku":   updated.SKU,
			"name":  updated.Name,
			"stock": updated.Stock,
		},
	})

	return updated, nil
}

// UpdateStock applies a set/add/subtract stock patch. Subtracting below zero
// is rejected; stock never goes negative through this path.
func (s *inventoryService) UpdateStock(id uuid.UUID, operation string, quantity int) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		switch operation {
		case StockOpSet:
			if quantity < 0 {
				return ErrStockBelowZero
			}
			if err := s.productRepo.UpdateStock(tx, product.ID, quantity); err != nil {
				return err
			}
		case StockOpAdd:
			if err := s.productRepo.AdjustStock(tx, product.ID, quantity); err != nil {
				return err
			}
		case StockOpSubtract:
			// Guarded decrement: the stock >= qty predicate runs in the UPDATE
			// itself, so a concurrent subtract cannot take it negative.
			if err := s.productRepo.DecrementStock(tx, product.ID, quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStockBelowZero
				}
				return err
			}
		default:
			return ErrUnknownStockOp
		}

		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		updated = &product
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.ComputeVirtuals()

	s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "stock_adjusted",
		"product": map[string]interface{}{
			"id":    updated.ID,
			"sku":   updated.SKU,
			"name":  updated.Name,
			"stock": updated.Stock,
		},
	})

	return updated, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *inventoryService) ListProducts(f repository.ProductFilter) ([]model.Product, repository.Pagination, error) {
	f.Normalize()
	products, total, err := s.productRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return products, repository.NewPagination(f.ListParams, total), nil
}

func (s *inventoryService) LowStock() ([]model.Product, error) {
	return s.productRepo.LowStock()
}

func (s *inventoryService) Categories() ([]string, error) {
	return s.productRepo.Categories()
}
