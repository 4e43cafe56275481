package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
}

func NewPurchaseOrderHandler(s service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: s}
}

func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	f := repository.PurchaseOrderFilter{
		ListParams: listParams(c),
		Status:     c.Query("status"),
		Supplier:   c.Query("supplier"),
		Range:      dateRange(c),
	}

	orders, pagination, err := h.service.List(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch purchase orders", err)
	}
	return paged(c, orders, pagination)
}

func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid purchase order ID")
	}

	po, err := h.service.Get(id)
	if err != nil {
		return fail(c, 404, "Purchase order not found")
	}
	return ok(c, po)
}

func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var po model.PurchaseOrder
	if err := c.BodyParser(&po); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdPO, err := h.service.Create(&po, getUserID(c))
	if err != nil {
		return failErr(c, 400, "Failed to create purchase order", err)
	}
	return created(c, "Purchase order created successfully", createdPO)
}

func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid purchase order ID")
	}

	var po model.PurchaseOrder
	if err := c.BodyParser(&po); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &po)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			return fail(c, 404, "Purchase order not found")
		}
		return failErr(c, 400, "Failed to update purchase order", err)
	}
	return okMessage(c, "Purchase order updated successfully", updated)
}

func (h *PurchaseOrderHandler) Approve(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid purchase order ID")
	}

	po, err := h.service.Approve(id, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			return fail(c, 404, "Purchase order not found")
		}
		return failErr(c, 400, "Failed to approve purchase order", err)
	}
	return okMessage(c, "Purchase order approved successfully", po)
}

func (h *PurchaseOrderHandler) Receive(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid purchase order ID")
	}

	po, err := h.service.Receive(id)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			return fail(c, 404, "Purchase order not found")
		}
		return failErr(c, 400, "Failed to receive purchase order", err)
	}
	return okMessage(c, "Purchase order received successfully", po)
}

func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid purchase order ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrPurchaseOrderNotFound) {
			return fail(c, 404, "Purchase order not found")
		}
		return failErr(c, 500, "Failed to delete purchase order", err)
	}
	return okMessage(c, "Purchase order deleted successfully", nil)
}
