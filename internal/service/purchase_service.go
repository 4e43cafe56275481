package service

import (
	"errors"
	"fmt"
	"time"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/sequence"
	"go-retail-api/internal/ws"
	"go-retail-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrNotReceivable         = errors.New("purchase order must be confirmed or shipped to be received")
)

type PurchaseOrderService interface {
	Create(req *model.PurchaseOrder, actorID string) (*model.PurchaseOrder, error)
	Update(id uuid.UUID, req *model.PurchaseOrder) (*model.PurchaseOrder, error)
	Approve(id uuid.UUID, actorID string) (*model.PurchaseOrder, error)
	Receive(id uuid.UUID) (*model.PurchaseOrder, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.PurchaseOrder, error)
	List(f repository.PurchaseOrderFilter) ([]model.PurchaseOrder, repository.Pagination, error)
}

type purchaseOrderService struct {
	poRepo      repository.PurchaseOrderRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewPurchaseOrderService(poRepo repository.PurchaseOrderRepository, productRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:      poRepo,
		productRepo: productRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *purchaseOrderService) Create(req *model.PurchaseOrder, actorID string) (*model.PurchaseOrder, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if actor, err := uuid.Parse(actorID); err == nil {
		req.CreatedByID = &actor
	}
	req.Status = model.POStatusDraft

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier model.Supplier
		if err := tx.First(&supplier, "id = ?", req.SupplierID).Error; err != nil {
			return errors.New("supplier not found")
		}

		subtotal := 0.0
		for i := range req.Items {
			item := &req.Items[i]

			var product model.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return fmt.Errorf("product with ID %s not found", item.ProductID)
			}

			item.Total = item.UnitCost * float64(item.Quantity)
			item.Product = nil
			subtotal += item.Total
		}

		req.Subtotal = subtotal
		req.Total = subtotal + req.Tax + req.Shipping

		n, err := sequence.Next(tx, sequence.PurchaseOrders)
		if err != nil {
			return err
		}
		req.PONumber = sequence.Format("PO", n)

		return tx.Create(req).Error
	})
	if err != nil {
		return nil, err
	}

	return s.poRepo.FindByID(req.ID)
}

func (s *purchaseOrderService) Update(id uuid.UUID, req *model.PurchaseOrder) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(id)
	if err != nil {
		return nil, ErrPurchaseOrderNotFound
	}

	if req.Status != "" {
		po.Status = req.Status
	}
	if req.ExpectedDelivery != nil {
		po.ExpectedDelivery = req.ExpectedDelivery
	}
	if req.Notes != "" {
		po.Notes = req.Notes
	}

	if errs := validator.ValidateStruct(po); len(errs) > 0 {
		return nil, errors.New(validator.Describe(errs))
	}

	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	return s.poRepo.FindByID(id)
}

// Approve stamps the approver and moves the order to confirmed. There is
// deliberately no guard on the current status; only receiving is guarded.
func (s *purchaseOrderService) Approve(id uuid.UUID, actorID string) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(id)
	if err != nil {
		return nil, ErrPurchaseOrderNotFound
	}

	now := time.Now()
	po.Status = model.POStatusConfirmed
	po.ApprovedAt = &now
	if actor, err := uuid.Parse(actorID); err == nil {
		po.ApprovedByID = &actor
	}

	if err := s.poRepo.Update(po); err != nil {
		return nil, err
	}
	return s.poRepo.FindByID(id)
}

// Receive books every ordered quantity into stock and closes the order, in one
// transaction. Only confirmed or shipped orders may be received.
func (s *purchaseOrderService) Receive(id uuid.UUID) (*model.PurchaseOrder, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var po model.PurchaseOrder
		if err := tx.Preload("Items").First(&po, "id = ?", id).Error; err != nil {
			return ErrPurchaseOrderNotFound
		}

		if !po.Receivable() {
			return ErrNotReceivable
		}

		// The status predicate in the UPDATE is what makes a double receive
		// impossible: only the transition that still sees a receivable order
		// wins, the loser affects zero rows and books nothing into stock.
		now := time.Now()
		res := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND status IN ?", po.ID, []string{model.POStatusConfirmed, model.POStatusShipped}).
			Updates(map[string]interface{}{
				"status":          model.POStatusReceived,
				"actual_delivery": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotReceivable
		}

		for _, item := range po.Items {
			if err := s.productRepo.AdjustStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	po, err := s.poRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":           "stock_update",
		"action":         "purchase_order_received",
		"purchase_order": po.PONumber,
	})

	return po, nil
}

// Delete hard-deletes the order. Received stock is intentionally not walked
// back; deleting a received PO is an accounting correction, not a return.
func (s *purchaseOrderService) Delete(id uuid.UUID) error {
	po, err := s.poRepo.FindByID(id)
	if err != nil {
		return ErrPurchaseOrderNotFound
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purchase_order_id = ?", po.ID).Delete(&model.PurchaseOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(po).Error
	})
}

func (s *purchaseOrderService) Get(id uuid.UUID) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(id)
	if err != nil {
		return nil, ErrPurchaseOrderNotFound
	}
	return po, nil
}

func (s *purchaseOrderService) List(f repository.PurchaseOrderFilter) ([]model.PurchaseOrder, repository.Pagination, error) {
	f.Normalize()
	orders, total, err := s.poRepo.FindAll(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return orders, repository.NewPagination(f.ListParams, total), nil
}
