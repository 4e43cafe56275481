package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	f := repository.SupplierFilter{
		ListParams: listParams(c),
	}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		f.IsActive = &active
	}

	suppliers, pagination, err := h.service.List(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch suppliers", err)
	}
	return paged(c, suppliers, pagination)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	supplier, err := h.service.Get(id)
	if err != nil {
		return fail(c, 404, "Supplier not found")
	}
	return ok(c, supplier)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	// Seeded before the parse: an omitted isActive means active, an explicit
	// false in the body survives.
	supplier := model.Supplier{IsActive: true}
	if err := c.BodyParser(&supplier); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdSupplier, err := h.service.Create(&supplier)
	if err != nil {
		return failErr(c, 400, "Failed to create supplier", err)
	}
	return created(c, "Supplier created successfully", createdSupplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &supplier)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			return fail(c, 404, "Supplier not found")
		}
		return failErr(c, 400, "Failed to update supplier", err)
	}
	return okMessage(c, "Supplier updated successfully", updated)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid supplier ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			return fail(c, 404, "Supplier not found")
		}
		return failErr(c, 500, "Failed to delete supplier", err)
	}
	return okMessage(c, "Supplier deactivated successfully", nil)
}

func (h *SupplierHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return failErr(c, 500, "Failed to fetch supplier statistics", err)
	}
	return ok(c, stats)
}
