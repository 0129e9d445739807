package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"learnmate/models"
)

// CreateQuizResult appends one scored submission to the quizresult log.
// time.Time must go over the wire as CustomDateTime or SurrealDB rejects
// the datetime.
func (r *Repository) CreateQuizResult(ctx context.Context, result *models.QuizResult) error {
	content := map[string]any{
		"username":   result.Username,
		"subject":    result.Subject,
		"total":      result.Total,
		"correct":    result.Correct,
		"created_at": surrealmodels.CustomDateTime{Time: result.CreatedAt},
	}

	if _, err := surrealdb.Create[struct{}](ctx, r.db.DB, "quizresult", content); err != nil {
		return fmt.Errorf("failed to create quiz result: %w", err)
	}
	return nil
}
