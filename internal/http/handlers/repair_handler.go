package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "fixpos/internal/log"
	"fixpos/internal/services"
	"fixpos/internal/validate"
)

type RepairHandler struct {
	Repairs *services.RepairService
}

type addRepairBody struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Device        string  `json:"device"`
	Issue         string  `json:"issueDescription"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
}

// POST /api/v1/repairs
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	var body addRepairBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	name, ok := validate.Name(body.CustomerName)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "customerName"})
		return jsonError(c, fiber.StatusBadRequest, "invalid customer name")
	}
	phone, ok := validate.Phone(body.CustomerPhone)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "customerPhone"})
		return jsonError(c, fiber.StatusBadRequest, "invalid phone")
	}
	device, ok := validate.Name(body.Device)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid device")
	}
	status, ok := validate.RepairStatus(body.Status)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid status")
	}
	if body.Cost < 0 {
		return jsonError(c, fiber.StatusBadRequest, "cost must be non-negative")
	}

	r, err := h.Repairs.Add(services.AddRepairInput{
		CustomerName:  name,
		CustomerPhone: phone,
		Device:        device,
		Issue:         body.Issue,
		Cost:          body.Cost,
		Status:        status,
	})
	if err != nil {
		applog.Error(c, "repairs.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not save repair")
	}
	applog.Audit(c, "repairs.create", map[string]any{"repair_id": r.ID})
	return c.Status(fiber.StatusCreated).JSON(r)
}

// GET /api/v1/repairs
func (h *RepairHandler) List(c *fiber.Ctx) error {
	repairs, err := h.Repairs.List()
	if err != nil {
		applog.Error(c, "repairs.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load repairs")
	}
	return c.JSON(fiber.Map{"repairs": repairs, "count": len(repairs)})
}

type statusBody struct {
	Status string `json:"status"`
}

// POST /api/v1/repairs/:id/status — unknown ids are a silent no-op by design;
// the response is 200 either way.
func (h *RepairHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid repair id")
	}
	var body statusBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	status, ok := validate.RepairStatus(body.Status)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid status")
	}

	events, err := h.Repairs.UpdateStatus(id, status)
	if err != nil {
		applog.Error(c, "repairs.status.fail", err, map[string]any{"repair_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not update repair")
	}
	applog.Audit(c, "repairs.status", map[string]any{"repair_id": id, "status": string(status)})
	return c.JSON(fiber.Map{"events": emitEvents(c, events)})
}
