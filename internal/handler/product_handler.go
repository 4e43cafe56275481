package handler

import (
	"errors"

	"go-retail-api/internal/model"
	"go-retail-api/internal/repository"
	"go-retail-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := repository.ProductFilter{
		ListParams: listParams(c),
		Category:   c.Query("category"),
		Supplier:   c.Query("supplier"),
	}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		f.IsActive = &active
	}
	if c.Query("lowStock") == "true" {
		f.LowStock = true
	}

	products, pagination, err := h.service.ListProducts(f)
	if err != nil {
		return failErr(c, 500, "Failed to fetch products", err)
	}
	return paged(c, products, pagination)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return fail(c, 404, "Product not found")
	}
	return ok(c, product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	// Seeded before the parse: an omitted isActive means active, an explicit
	// false in the body survives.
	product := model.Product{IsActive: true}
	if err := c.BodyParser(&product); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	createdProduct, err := h.service.CreateProduct(&product)
	if err != nil {
		return failErr(c, 400, "Failed to create product", err)
	}
	return created(c, "Product created successfully", createdProduct)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.UpdateProduct(id, &product)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fail(c, 404, "Product not found")
		}
		return failErr(c, 400, "Failed to update product", err)
	}
	return okMessage(c, "Product updated successfully", updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fail(c, 404, "Product not found")
		}
		return failErr(c, 500, "Failed to delete product", err)
	}
	return okMessage(c, "Product deactivated successfully", nil)
}

// UpdateStock handles PATCH /products/:id/stock with {operation, quantity}.
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	var body struct {
		Operation string `json:"operation"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, 400, "Invalid JSON")
	}
	if body.Operation == "" {
		body.Operation = service.StockOpSet
	}

	product, err := h.service.UpdateStock(id, body.Operation, body.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fail(c, 404, "Product not found")
		}
		return failErr(c, 400, "Failed to update stock", err)
	}
	return okMessage(c, "Stock updated successfully", product)
}

func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock()
	if err != nil {
		return failErr(c, 500, "Failed to fetch low stock products", err)
	}
	return ok(c, products)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return failErr(c, 500, "Failed to fetch categories", err)
	}
	return ok(c, categories)
}
