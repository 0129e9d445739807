package handlers

import (
	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/models"
)

// GetProfile looks up a profile by username. A first read for an unknown
// username creates and persists the default profile, so this read has a
// write side effect.
func GetProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		username := queryUsername(c)

		profile, err := a.Repo.GetProfile(c.Context(), username)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch profile", err)
		}

		if profile == nil {
			profile = models.DefaultProfile(username)
			if err := a.Repo.CreateProfile(c.Context(), profile); err != nil {
				return serverErrorWithDetails(c, "Failed to create profile", err)
			}
		}

		return c.JSON(profile)
	}
}

// UpdateProfile merge-upserts only the fields explicitly present in the
// body. Absent or null fields stay untouched; declared defaults are not
// applied on this path.
func UpdateProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		username := req.Username
		if username == "" {
			username = models.GuestUsername
		}

		fields := map[string]any{}
		if req.FullName != nil {
			fields["full_name"] = *req.FullName
		}
		if req.Language != nil {
			fields["language"] = *req.Language
		}
		if req.PushNotifications != nil {
			fields["push_notifications"] = *req.PushNotifications
		}

		if err := a.Repo.MergeProfile(c.Context(), username, fields); err != nil {
			return serverErrorWithDetails(c, "Failed to save profile", err)
		}

		notify(a, c, "Profile updated")

		return c.JSON(fiber.Map{"message": "Saved successfully"})
	}
}
