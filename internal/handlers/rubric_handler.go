package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/services"
)

type RubricHandler struct {
	session *services.Session
}

func NewRubricHandler(session *services.Session) *RubricHandler {
	return &RubricHandler{session: session}
}

// HandleGetRubric handles GET /rubric
func (h *RubricHandler) HandleGetRubric(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"rubric":           h.session.Rubric(),
		"education_levels": models.EducationLevels,
	})
}

// HandleUpdateRubric handles PUT /rubric. The rubric is only accepted when
// its weights add up to 100%; every candidate is then re-scored.
func (h *RubricHandler) HandleUpdateRubric(c *fiber.Ctx) error {
	var form models.RubricForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := h.session.UpdateRubric(form); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"rubric": h.session.Rubric(),
	})
}
