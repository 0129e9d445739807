package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/models"
	"learnmate/services"
)

// GetNotes retrieves all notes owned by the requested username.
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		notes, err := a.Repo.GetNotes(c.Context(), queryUsername(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return c.JSON(notes)
	}
}

// CreateNote inserts a note unconditionally. Duplicate titles for the
// same user are allowed.
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
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

		note := &models.Note{
			Username: username,
			Title:    req.Title,
			Content:  req.Content,
		}

		id, err := a.Repo.CreateNote(c.Context(), note)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to save note", err)
		}

		notify(a, c, "New note saved")

		return c.JSON(fiber.Map{
			"message": "Note saved successfully",
			"id":      id,
		})
	}
}

// DeleteNote removes at most one note matching (username, title) and
// reports 404 when nothing matched.
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := c.Params("title")
		if decoded, err := url.PathUnescape(title); err == nil {
			title = decoded
		}
		if title == "" {
			return badRequest(c, "title is required")
		}

		if !a.StoreAvailable() {
			return storeUnavailable(c)
		}

		err := a.Repo.DeleteNote(c.Context(), queryUsername(c), title)
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, "Note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		notify(a, c, "Note deleted successfully")

		return c.JSON(fiber.Map{"message": "Note deleted successfully"})
	}
}
