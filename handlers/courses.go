package handlers

import (
	"github.com/gofiber/fiber/v2"

	"learnmate/app"
)

// ListCourses returns the whole catalog. No pagination or filtering, the
// catalog is five rows.
func ListCourses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		courses, err := a.Repo.ListCourses(c.Context())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch courses", err)
		}

		return c.JSON(courses)
	}
}
