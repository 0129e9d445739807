package setup

import (
	"github.com/gofiber/fiber/v2"

	"learnmate/app"
	"learnmate/handlers"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Diagnostics; these answer even when the store is down
	fiberApp.Get("/", handlers.Root)
	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/test", handlers.TestDatabase(application))
	fiberApp.Post("/seed", handlers.Seed(application))

	fiberApp.Get("/courses", handlers.ListCourses(application))

	fiberApp.Get("/notes", handlers.GetNotes(application))
	fiberApp.Post("/notes", handlers.CreateNote(application))
	fiberApp.Delete("/notes/:title", handlers.DeleteNote(application))

	fiberApp.Post("/practice/start", handlers.StartPractice(application))
	fiberApp.Get("/practice/history", handlers.PracticeHistory(application))

	fiberApp.Get("/quiz/questions", handlers.GetQuizQuestions(application))
	fiberApp.Post("/quiz/submit", handlers.SubmitQuiz(application))

	fiberApp.Get("/profile", handlers.GetProfile(application))
	fiberApp.Post("/profile", handlers.UpdateProfile(application))

	fiberApp.Get("/notifications", handlers.GetNotifications(application))
}
