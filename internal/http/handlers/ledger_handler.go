package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
)

type LedgerHandler struct {
	Ledger *services.LedgerService
}

type amountBody struct {
	Amount float64 `json:"amount"`
}

// POST /api/v1/funds — non-positive amounts are silently ignored: the store
// stays consistent and the response is 200 regardless.
func (h *LedgerHandler) AddFunds(c *fiber.Ctx) error {
	var body amountBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := h.Ledger.AddFunds(body.Amount); err != nil {
		applog.Error(c, "funds.add.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not record funds")
	}
	applog.Audit(c, "funds.add", map[string]any{"amount": body.Amount})
	return c.JSON(fiber.Map{"ok": true})
}

// POST /api/v1/losses — same silent no-op policy as funds.
func (h *LedgerHandler) AddLoss(c *fiber.Ctx) error {
	var body amountBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := h.Ledger.AddLoss(body.Amount); err != nil {
		applog.Error(c, "losses.add.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not record loss")
	}
	applog.Audit(c, "losses.add", map[string]any{"amount": body.Amount})
	return c.JSON(fiber.Map{"ok": true})
}
