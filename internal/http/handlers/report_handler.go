package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// GET /api/v1/summary — every figure is recomputed from the full event
// history at request time.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.Reports.Summary(time.Now())
	if err != nil {
		applog.Error(c, "report.summary.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not compute summary")
	}
	return c.JSON(summary)
}
