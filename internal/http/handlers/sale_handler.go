package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
)

type SaleHandler struct {
	Sales *services.SaleService
}

type saleBody struct {
	Items []services.CartLine `json:"items"`
}

// POST /api/v1/sales — commit a sale from explicit cart lines.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var body saleBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	sale, events, err := h.Sales.Process(body.Items)
	if errors.Is(err, services.ErrEmptyCart) {
		return jsonError(c, fiber.StatusBadRequest, "cart is empty")
	}
	if err != nil {
		applog.Error(c, "sale.process.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not process sale")
	}
	applog.Audit(c, "sale.process", map[string]any{"sale_id": sale.ID, "total": sale.Total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": sale, "events": emitEvents(c, events)})
}

// POST /api/v1/cart/checkout — commit a sale from the session cart.
func (h *SaleHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	sale, events, err := h.Sales.ProcessCart(sid)
	if errors.Is(err, services.ErrEmptyCart) {
		return jsonError(c, fiber.StatusBadRequest, "cart is empty")
	}
	if err != nil {
		applog.Error(c, "sale.checkout.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not process sale")
	}
	applog.Audit(c, "sale.checkout", map[string]any{"sale_id": sale.ID, "total": sale.Total})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale": sale, "events": emitEvents(c, events)})
}

// GET /api/v1/sales?limit=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.Sales.Latest(c.QueryInt("limit", 20))
	if err != nil {
		applog.Error(c, "sales.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load sales")
	}
	return c.JSON(fiber.Map{"sales": sales, "count": len(sales)})
}
