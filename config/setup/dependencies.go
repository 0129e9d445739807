package setup

import (
	"context"
	"log/slog"

	"learnmate/app"
	"learnmate/config"
	"learnmate/database"
)

// InitDatabase connects to SurrealDB using the loaded configuration.
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(ctx, cfg.SurrealDBURL, cfg.SurrealDBNS, cfg.SurrealDBDatabase, cfg.SurrealDBUser, cfg.SurrealDBPass)
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized",
		"url", cfg.SurrealDBURL,
		"namespace", cfg.SurrealDBNS,
		"database", cfg.SurrealDBDatabase,
	)
	return db, nil
}

// InitApp initializes the application with all dependencies. A nil db is
// allowed: the server then runs with the store marked unavailable and
// only the root and health endpoints keep answering with data.
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	if db == nil {
		logger.Warn("starting without a database connection")
		return app.New(nil, logger)
	}

	repo := database.NewRepository(db)
	application := app.New(repo, logger)
	logger.Info("application initialized with dependency injection")
	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(ctx context.Context, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(ctx); err != nil {
			logger.Error("failed to close database", "error", err)
		} else {
			logger.Info("database closed")
		}
	}
}
