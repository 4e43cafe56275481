package service

import (
	"errors"
	"fmt"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/sequence"
	"go-retail-api/internal/ws"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type SaleService interface {
	Create(req *model.Sale, actorID string) (*model.Sale, error)
	Update(id uuid.UUID, req *model.Sale) (*model.Sale, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Sale, error)
	List(f repository.SaleFilter) ([]model.Sale, repository.Pagination, error)
	Stats(r repository.DateRange) (*repository.SaleStats, []repository.ChannelStat, error)
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		db:          db,
		wsHub:       hub,
	}
}

// Create validates every line item against current stock, computes the totals
// and applies the inventory decrements. Everything runs in one transaction:
// either the sale exists and stock moved, or neither happened.
func (s *saleService) Create(req *model.Sale, actorID string) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if actor, err := uuid.Parse(actorID); err == nil {
		req.ProcessedByID = &actor
	}

	type stockEvent struct {
		productID uuid.UUID
		name      string
		sku       string
		newStock  int
	}
	var events []stockEvent

	err := s.db.Transaction(func(tx *gorm.DB) error {
		subtotal := 0.0
		for i := range req.Items {
			item := &req.Items[i]

			var product model.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return fmt.Errorf("product with ID %s not found", item.ProductID)
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for product %s. Available: %d", ErrInsufficientStock, product.Name, product.Stock)
			}

			// Caller-supplied price is the source of truth for the line total.
			item.Total = item.UnitPrice * float64(item.Quantity)
			item.Product = nil
			subtotal += item.Total

			events = append(events, stockEvent{
				productID: product.ID,
				name:      product.Name,
				sku:       product.SKU,
				newStock:  product.Stock - item.Quantity,
			})
		}

		req.Subtotal = subtotal
		req.Total = subtotal + req.Tax - req.Discount

		n, err := sequence.Next(tx, sequence.Sales)
		if err != nil {
			return err
		}
		req.SaleNumber = sequence.Format("S", n)

		if err := tx.Create(req).Error; err != nil {
			return err
		}

		// The read above gave a friendly error; the guarded decrement is the
		// authoritative check, so a concurrent sale cannot push stock negative.
		for _, item := range req.Items {
			if err := s.productRepo.DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w for product %s", ErrInsufficientStock, item.ProductID)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	req.ComputeVirtuals()

	for _, ev := range events {
		s.wsHub.Publish(map[string]interface{}{
			"type":   "stock_update",
			"action": "sale_created",
			"sale":   req.SaleNumber,
			"product": map[string]interface{}{
				"id":    ev.productID,
				"sku":   ev.sku,
				"name":  ev.name,
				"stock": ev.newStock,
			},
		})
	}

	return s.saleRepo.FindByID(req.ID)
}

func (s *saleService) Update(id uuid.UUID, req *model.Sale) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, ErrSaleNotFound
	}

	// Line items are immutable after creation; only the descriptive and status
	// fields may change.
	if req.Customer.Name != "" {
		sale.Customer = req.Customer
	}
	if req.PaymentStatus != "" {
		sale.PaymentStatus = req.PaymentStatus
	}
	if req.Status != "" {
		sale.Status = req.Status
	}
	if req.PaymentMethod != "" {
		sale.PaymentMethod = req.PaymentMethod
	}
	if req.Notes != "" {
		sale.Notes = req.Notes
	}

	if errs := validator.ValidateStruct(sale); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return s.saleRepo.FindByID(id)
}

// Delete restores each line item's stock and removes the sale, as one unit.
func (s *saleService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sale model.Sale
		if err := tx.Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
			return ErrSaleNotFound
		}

		for _, item := range sale.Items {
			if err := s.productRepo.AdjustStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&sale).Error
	})
}

func (s *saleService) Get(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

func (s *saleService) List(f repository.SaleFilter) ([]model.Sale, repository.Pagination, error) {
	f.Normalize()
	sales, total, err := s.saleRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return sales, repository.NewPagination(f.ListParams, total), nil
}

func (s *saleService) Stats(r repository.DateRange) (*repository.SaleStats, []repository.ChannelStat, error) {
	return s.saleRepo.Stats(r)
}
