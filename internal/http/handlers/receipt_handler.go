package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
	"fixpos/internal/validate"
)

// ReceiptHandler renders the printable pages: the sale receipt and the
// wanted-products (restock) list. The core only supplies the records; the
// actual printing happens on the client.
type ReceiptHandler struct {
	Sales *services.SaleService
	Inv   *services.InventoryService
}

// GET /receipt/:id
func (h *ReceiptHandler) Receipt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Receipt not found"})
	}
	sale, err := h.Sales.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Receipt not found"})
	}
	return c.Render("receipt", fiber.Map{"Sale": sale})
}

// GET /wanted
func (h *ReceiptHandler) Wanted(c *fiber.Ctx) error {
	products, err := h.Inv.LowStock()
	if err != nil {
		applog.Error(c, "wanted.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return c.Render("wanted", fiber.Map{"Products": products})
}
