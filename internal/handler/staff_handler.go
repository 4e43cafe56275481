package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	service service.StaffService
}

func NewStaffHandler(s service.StaffService) *StaffHandler {
	return &StaffHandler{service: s}
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	f := repository.StaffFilter{
		ListParams: listParams(c),
		Department: c.Query("department"),
		Status:     c.Query("status", model.StaffActive),
	}
	if f.Status == "all" {
		f.Status = ""
	}

	staff, pagination, err := h.service.List(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch staff", err)
	}
	return paged(c, staff, pagination)
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid staff ID")
	}

	staff, err := h.service.Get(id)
	if err != nil {
		return fail(c, 404, "Staff member not found")
	}
	return ok(c, staff)
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var staff model.Staff
	if err := c.BodyParser(&staff); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdStaff, err := h.service.Create(&staff)
	if err != nil {
		return failErr(c, 400, "Failed to create staff member", err)
	}
	return created(c, "Staff member created successfully", createdStaff)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid staff ID")
	}

	var staff model.Staff
	if err := c.BodyParser(&staff); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &staff)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			return fail(c, 404, "Staff member not found")
		}
		return failErr(c, 400, "Failed to update staff member", err)
	}
	return okMessage(c, "Staff member updated successfully", updated)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid staff ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			return fail(c, 404, "Staff member not found")
		}
		return failErr(c, 500, "Failed to delete staff member", err)
	}
	return okMessage(c, "Staff member deactivated successfully", nil)
}

func (h *StaffHandler) Departments(c *fiber.Ctx) error {
	departments, err := h.service.Departments()
	if err != nil {
		return failErr(c, 500, "Failed to fetch departments", err)
	}
	return ok(c, departments)
}

func (h *StaffHandler) Stats(c *fiber.Ctx) error {
	stats, departments, err := h.service.Stats()
	if err != nil {
		return failErr(c, 500, "Failed to fetch staff statistics", err)
	}
	return ok(c, fiber.Map{
		"totalStaff":          stats.TotalStaff,
		"activeStaff":         stats.ActiveStaff,
		"totalSalary":         stats.TotalSalary,
		"averageSalary":       stats.AverageSalary,
		"departmentBreakdown": departments,
	})
}
