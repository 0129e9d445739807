package handlers

import (
	"github.com/gofiber/fiber/v2"

	"learnmate/app"
)

// Root and Health stay up regardless of store availability.

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "LearnMate Backend is running"})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Loading…"})
}

// TestDatabase reports store connectivity and the visible collections.
func TestDatabase(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := fiber.Map{
			"backend":           "running",
			"database":          "not available",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if !a.StoreAvailable() {
			return c.JSON(response)
		}

		collections, err := a.Repo.ListCollections(c.Context())
		if err != nil {
			response["database"] = "available but not responding"
			return c.JSON(response)
		}

		if len(collections) > 10 {
			collections = collections[:10]
		}
		response["database"] = "connected"
		response["connection_status"] = "Connected"
		response["collections"] = collections
		return c.JSON(response)
	}
}

// Seed inserts the fixed course rows once, guarded by an empty-collection
// check.
func Seed(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		if _, err := a.Catalog.Seed(c.Context()); err != nil {
			return serverErrorWithDetails(c, "Failed to seed courses", err)
		}

		return c.JSON(fiber.Map{"status": "ok"})
	}
}
