package handlers

import (
	"github.com/gofiber/fiber/v2"

	"learnmate/app"
)

// GetNotifications lists records addressed to the username plus the
// "guest" broadcast channel. Strictly append/list: there is no delete or
// mark-read.
func GetNotifications(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		notifications, err := a.Repo.GetNotifications(c.Context(), queryUsername(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notifications", err)
		}

		return c.JSON(notifications)
	}
}
