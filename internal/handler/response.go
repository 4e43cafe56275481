package handler

import (
	"time"

	"go-retail-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every endpoint answers with the same envelope:
// { success, data?, message?, error?, pagination? }

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func paged(c *fiber.Ctx, data interface{}, p repository.Pagination) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "pagination": p})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func failErr(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message, "error": err.Error()})
}

// Helpers for user info from the JWT context (set by the auth middleware).

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// listParams reads the shared page/limit/search/sort query contract.
func listParams(c *fiber.Ctx) repository.ListParams {
	return repository.ListParams{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}
}

// dateRange reads optional startDate/endDate query params, accepting both
// date-only and RFC3339 values.
func dateRange(c *fiber.Ctx) repository.DateRange {
	var r repository.DateRange
	if t, ok := parseDate(c.Query("startDate")); ok {
		r.Start = &t
	}
	if t, ok := parseDate(c.Query("endDate")); ok {
		r.End = &t
	}
	return r
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
