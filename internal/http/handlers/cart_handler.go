package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
	"fixpos/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartItemBody struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// POST /api/v1/cart — add units of a product to the session cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartItemBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	if err := h.Cart.Add(sid, id, body.Qty); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusBadRequest, "could not add to cart")
	}
	cv, err := h.Cart.View(sid)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return c.JSON(cv)
}

// PUT /api/v1/cart — pin a line to an exact quantity (0 removes it).
func (h *CartHandler) SetQty(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var body cartItemBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	if err := h.Cart.SetQty(sid, id, body.Qty); err != nil {
		applog.Error(c, "cart.set.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusBadRequest, "could not update cart")
	}
	cv, err := h.Cart.View(sid)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return c.JSON(cv)
}

// GET /api/v1/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		applog.Error(c, "cart.view.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return c.JSON(cv)
}
