package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/models"
)

// GetQuizQuestions serves the static question bank. The subject query
// parameter is accepted but not applied; the full bank is always
// returned.
func GetQuizQuestions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(a.Quiz.Questions(c.Query("subject", "General")))
	}
}

// SubmitQuiz scores the answers against the bank, logs the result, and
// reports the tally.
func SubmitQuiz(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SubmitQuizRequest
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
		subject := req.Subject
		if subject == "" {
			subject = "General"
		}

		correct, total := a.Quiz.Score(req.Answers)

		result := &models.QuizResult{
			Username:  username,
			Subject:   subject,
			Total:     total,
			Correct:   correct,
			CreatedAt: time.Now().UTC(),
		}
		if err := a.Repo.CreateQuizResult(c.Context(), result); err != nil {
			return serverErrorWithDetails(c, "Failed to save quiz result", err)
		}

		notify(a, c, fmt.Sprintf("Your quiz score: %d/%d", correct, total))

		return c.JSON(fiber.Map{
			"message": "You have completed the quiz!",
			"correct": correct,
			"total":   total,
		})
	}
}
