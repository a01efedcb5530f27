package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/repositories"
	"alfredoptarigan/hr-helper/internal/services"
)

// ErrorHandler renders every error as {"error", "code"} and maps domain
// errors to client status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, repositories.ErrCandidateNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidRubric),
		errors.Is(err, services.ErrInvalidStatus):
		code = fiber.StatusBadRequest
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
