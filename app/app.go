package app

import (
	"log/slog"

	"learnmate/services"
	"learnmate/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	// Repo is nil when the store was unreachable at startup. The
	// connection is attempted once and never retried; data-dependent
	// handlers fail uniformly until restart.
	Repo      services.Repository
	Quiz      *services.QuizService
	Catalog   *services.CatalogService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo services.Repository, logger *slog.Logger) *App {
	a := &App{
		Repo:      repo,
		Quiz:      services.NewQuizService(),
		Validator: validator.New(),
		Logger:    logger,
	}
	if repo != nil {
		a.Catalog = services.NewCatalogService(repo, repo)
	}
	return a
}

// StoreAvailable reports whether the database connection was established
// at startup.
func (a *App) StoreAvailable() bool {
	return a.Repo != nil
}
