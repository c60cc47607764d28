package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fixpos/internal/domain"
	applog "fixpos/internal/log"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// ensureSID gives every POS station a stable cart session via cookie.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// emitEvents logs each domain event and serializes them for the response, so
// the frontend can toast them without the core knowing about toasts.
func emitEvents(c *fiber.Ctx, events []domain.Event) []fiber.Map {
	out := make([]fiber.Map, 0, len(events))
	for _, ev := range events {
		m := fiber.Map{"kind": ev.Kind()}
		switch e := ev.(type) {
		case domain.SaleCompleted:
			m["saleId"] = e.SaleID
			m["total"] = e.Total
			applog.Event(c, e.Kind(), map[string]any{"sale_id": e.SaleID, "total": e.Total})
		case domain.LowStock:
			m["products"] = e.Products
			applog.Event(c, e.Kind(), map[string]any{"products": e.Products})
		case domain.RepairCompleted:
			m["repairId"] = e.RepairID
			m["cost"] = e.Cost
			applog.Event(c, e.Kind(), map[string]any{"repair_id": e.RepairID, "cost": e.Cost})
		case domain.PrintJobAdded:
			m["profit"] = e.Profit
			applog.Event(c, e.Kind(), map[string]any{"profit": e.Profit})
		default:
			applog.Event(c, ev.Kind(), nil)
		}
		out = append(out, m)
	}
	return out
}
