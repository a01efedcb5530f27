package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/services"
)

type CandidateHandler struct {
	session *services.Session
}

func NewCandidateHandler(session *services.Session) *CandidateHandler {
	return &CandidateHandler{session: session}
}

// HandleList handles GET /candidates?status=&q=
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	list, err := h.session.List(models.CandidateStatus(c.Query("status")), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// HandleGet handles GET /candidates/:id and selects the candidate.
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	detail, err := h.session.Select(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// HandleUpdateStatus handles PATCH /candidates/:id/status
func (h *CandidateHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	id := c.Params("id")
	next, err := h.session.UpdateStatus(id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(models.StatusResponse{
		ID:         id,
		Status:     req.Status,
		SelectedID: next,
	})
}

// HandleDelete handles DELETE /candidates/:id
func (h *CandidateHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.session.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
