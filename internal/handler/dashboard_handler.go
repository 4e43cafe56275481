package handler

import (
	"time"

	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(time.Now())
	if err != nil {
		return failErr(c, 500, "Failed to fetch dashboard statistics", err)
	}
	return ok(c, stats)
}

func (h *DashboardHandler) ChartData(c *fiber.Ctx) error {
	months := c.QueryInt("months", 12)
	data, err := h.service.ChartData(months, time.Now())
	if err != nil {
		return failErr(c, 500, "Failed to fetch chart data", err)
	}
	return ok(c, data)
}

func (h *DashboardHandler) InventoryStatus(c *fiber.Ctx) error {
	data, err := h.service.InventoryStatus()
	if err != nil {
		return failErr(c, 500, "Failed to fetch inventory status", err)
	}
	return ok(c, data)
}

func (h *DashboardHandler) LowStockAlerts(c *fiber.Ctx) error {
	alerts, err := h.service.LowStockAlerts()
	if err != nil {
		return failErr(c, 500, "Failed to fetch low stock alerts", err)
	}
	return ok(c, alerts)
}

func (h *DashboardHandler) RecentActivities(c *fiber.Ctx) error {
	activities, err := h.service.RecentActivities()
	if err != nil {
		return failErr(c, 500, "Failed to fetch recent activities", err)
	}
	return ok(c, activities)
}
