package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
)

type PrintHandler struct {
	Prints *services.PrintService
}

type printJobBody struct {
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}

// POST /api/v1/print-jobs
func (h *PrintHandler) Create(c *fiber.Ctx) error {
	var body printJobBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if body.Price < 0 || body.Cost < 0 {
		return jsonError(c, fiber.StatusBadRequest, "price and cost must be non-negative")
	}

	job, events, err := h.Prints.Add(body.Price, body.Cost)
	if err != nil {
		applog.Error(c, "prints.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not save print job")
	}
	applog.Audit(c, "prints.create", map[string]any{"print_id": job.ID, "profit": job.Profit})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"printJob": job, "events": emitEvents(c, events)})
}

// GET /api/v1/print-jobs
func (h *PrintHandler) List(c *fiber.Ctx) error {
	jobs, err := h.Prints.List()
	if err != nil {
		applog.Error(c, "prints.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load print jobs")
	}
	return c.JSON(fiber.Map{"printJobs": jobs, "count": len(jobs)})
}
