package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	f := repository.SaleFilter{
		ListParams:    listParams(c),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		Channel:       c.Query("channel"),
		Range:         dateRange(c),
	}

	sales, pagination, err := h.service.List(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch sales", err)
	}
	return paged(c, sales, pagination)
}

func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	sale, err := h.service.Get(id)
	if err != nil {
		return fail(c, 404, "Sale not found")
	}
	return ok(c, sale)
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdSale, err := h.service.Create(&sale, getUserID(c))
	if err != nil {
		return failErr(c, 400, "Failed to create sale", err)
	}
	return created(c, "Sale created successfully", createdSale)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &sale)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return fail(c, 404, "Sale not found")
		}
		return failErr(c, 400, "Failed to update sale", err)
	}
	return okMessage(c, "Sale updated successfully", updated)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid sale ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return fail(c, 404, "Sale not found")
		}
		return failErr(c, 500, "Failed to delete sale", err)
	}
	return okMessage(c, "Sale deleted successfully", nil)
}

func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	stats, channels, err := h.service.Stats(dateRange(c))
	if err != nil {
		return failErr(c, 500, "Failed to fetch sales statistics", err)
	}
	return ok(c, fiber.Map{
		"totalSales":        stats.TotalSales,
		"totalOrders":       stats.TotalOrders,
		"averageOrderValue": stats.AverageOrderValue,
		"channelBreakdown":  channels,
	})
}
