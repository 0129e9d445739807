package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/models"
	"learnmate/validator"
)

// queryUsername reads the username query parameter, falling back to the
// guest account. There is no authentication layer; callers name
// themselves.
func queryUsername(c *fiber.Ctx) string {
	if username := c.Query("username"); username != "" {
		return username
	}
	return models.GuestUsername
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database not available"})
}

func validationError(c *fiber.Ctx, err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verrs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// notify appends an audit notification after a successful primary write.
// The two writes are independent and non-transactional; a failure here is
// logged and swallowed, never surfaced to the caller.
func notify(a *app.App, c *fiber.Ctx, message string) {
	if err := a.Repo.CreateNotification(c.Context(), models.NewNotification(message)); err != nil {
		a.Logger.Error("failed to write notification",
			"path", c.Path(),
			"message", message,
			"error", err,
		)
	}
}
