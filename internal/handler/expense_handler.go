package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	f := repository.ExpenseFilter{
		ListParams: listParams(c),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
		Range:      dateRange(c),
	}

	expenses, pagination, err := h.service.List(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch expenses", err)
	}
	return paged(c, expenses, pagination)
}

func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid expense ID")
	}

	expense, err := h.service.Get(id)
	if err != nil {
		return fail(c, 404, "Expense not found")
	}
	return ok(c, expense)
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdExpense, err := h.service.Create(&expense)
	if err != nil {
		return failErr(c, 400, "Failed to create expense", err)
	}
	return created(c, "Expense created successfully", createdExpense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid expense ID")
	}

	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.Update(id, &expense)
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return fail(c, 404, "Expense not found")
		}
		return failErr(c, 400, "Failed to update expense", err)
	}
	return okMessage(c, "Expense updated successfully", updated)
}

func (h *ExpenseHandler) Approve(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid expense ID")
	}

	expense, err := h.service.Approve(id, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return fail(c, 404, "Expense not found")
		}
		return failErr(c, 400, "Failed to approve expense", err)
	}
	return okMessage(c, "Expense approved successfully", expense)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid expense ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return fail(c, 404, "Expense not found")
		}
		return failErr(c, 500, "Failed to delete expense", err)
	}
	return okMessage(c, "Expense deleted successfully", nil)
}

func (h *ExpenseHandler) Stats(c *fiber.Ctx) error {
	stats, categories, err := h.service.Stats(dateRange(c))
	if err != nil {
		return failErr(c, 500, "Failed to fetch expense statistics", err)
	}
	return ok(c, fiber.Map{
		"totalExpenses":     stats.TotalExpenses,
		"totalCount":        stats.TotalCount,
		"averageExpense":    stats.AverageExpense,
		"categoryBreakdown": categories,
	})
}
