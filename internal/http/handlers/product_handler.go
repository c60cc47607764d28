package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fixpos/internal/imagegen"
	applog "fixpos/internal/log"
	"fixpos/internal/services"
	"fixpos/internal/validate"
)

type ProductHandler struct {
	Inv    *services.InventoryService
	Images *imagegen.Client
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Inv.ListProducts()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

type addProductBody struct {
	Name          string  `json:"name"`
	Barcode       string  `json:"barcode"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchasePrice"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body addProductBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	name, ok := validate.Name(body.Name)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return jsonError(c, fiber.StatusBadRequest, "invalid name")
	}
	barcode, ok := validate.Barcode(body.Barcode)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "barcode"})
		return jsonError(c, fiber.StatusBadRequest, "invalid barcode")
	}
	category, ok := validate.Category(body.Category)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return jsonError(c, fiber.StatusBadRequest, "invalid category")
	}
	if body.Price < 0 || body.PurchasePrice < 0 {
		return jsonError(c, fiber.StatusBadRequest, "prices must be non-negative")
	}
	if body.Quantity < 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid quantity")
	}

	p, err := h.Inv.AddProduct(services.AddProductInput{
		Name:          name,
		Barcode:       barcode,
		Description:   strings.TrimSpace(body.Description),
		Quantity:      body.Quantity,
		Price:         body.Price,
		PurchasePrice: body.PurchasePrice,
		Category:      category,
		Image:         strings.TrimSpace(body.Image),
	})
	if err != nil {
		applog.Error(c, "products.create.fail", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not save product")
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID, "barcode": p.Barcode})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GET /api/v1/products/lookup?term= — where the barcode scanner's decoded
// string (or a typed search) lands.
func (h *ProductHandler) Lookup(c *fiber.Ctx) error {
	term, ok := validate.Term(c.Query("term"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "term"})
		return jsonError(c, fiber.StatusBadRequest, "enter a valid search term")
	}
	p, err := h.Inv.FindProduct(term)
	if err != nil {
		applog.Error(c, "products.lookup.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "lookup failed")
	}
	if p == nil {
		return jsonError(c, fiber.StatusNotFound, "no product matches")
	}
	return c.JSON(p)
}

// GET /api/v1/products/low-stock
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.Inv.LowStock()
	if err != nil {
		applog.Error(c, "products.lowstock.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

// POST /api/v1/products/:id/image — calls the external image generator and
// stores the returned reference. Service failures surface as 502, unlike the
// silent no-ops elsewhere in the core.
func (h *ProductHandler) GenerateImage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Inv.GetProduct(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}

	ref, err := h.Images.Generate(c.UserContext(), p.Name, p.Description)
	if err != nil {
		applog.Error(c, "products.image.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusBadGateway, "image generation failed")
	}
	if err := h.Inv.AttachImage(id, ref); err != nil {
		applog.Error(c, "products.image.save.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not save image")
	}
	applog.Audit(c, "products.image", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"image": ref})
}
