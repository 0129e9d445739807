package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/models"
	"learnmate/services"
)

// StartPractice records today's practice for the user. The insert is
// keyed on (username, date), so a second call on the same calendar day is
// an idempotent no-op that writes no notification.
func StartPractice(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		practice := &models.Practice{
			Username: queryUsername(c),
			Date:     time.Now().UTC().Format("2006-01-02"),
			Status:   "completed",
		}

		err := a.Repo.CreatePracticeIfAbsent(c.Context(), practice)
		if errors.Is(err, services.ErrPracticeExists) {
			return c.JSON(fiber.Map{"message": "You have completed today's practice, try again tomorrow"})
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save practice", err)
		}

		notify(a, c, "Start today's practice")

		return c.JSON(fiber.Map{"message": "Practice saved successfully"})
	}
}

// PracticeHistory returns the user's {date, status} pairs in storage
// order, not sorted by date.
func PracticeHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		entries, err := a.Repo.GetPracticeHistory(c.Context(), queryUsername(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch practice history", err)
		}

		return c.JSON(entries)
	}
}
