package database

import (
	"context"
	"fmt"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"learnmate/models"
	"learnmate/services"
)

// CreatePracticeIfAbsent inserts a practice record with a deterministic
// record ID keyed on (username, date). CREATE fails on an existing ID, so
// the one-record-per-day rule holds even for concurrent callers: exactly
// one insert wins and the rest see ErrPracticeExists.
func (r *Repository) CreatePracticeIfAbsent(ctx context.Context, practice *models.Practice) error {
	_, err := surrealdb.Query[[]models.Practice](ctx, r.db.DB,
		"CREATE type::thing('practice', [$username, $date]) CONTENT $content",
		map[string]any{
			"username": practice.Username,
			"date":     practice.Date,
			"content":  practice,
		})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return services.ErrPracticeExists
		}
		return fmt.Errorf("failed to create practice: %w", err)
	}
	return nil
}

// GetPracticeHistory returns {date, status} pairs in storage order.
func (r *Repository) GetPracticeHistory(ctx context.Context, username string) ([]models.PracticeEntry, error) {
	entries, err := queryRows[models.PracticeEntry](ctx, r.db,
		"SELECT date, status FROM practice WHERE username = $username",
		map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to list practice history: %w", err)
	}
	if entries == nil {
		entries = make([]models.PracticeEntry, 0)
	}
	return entries, nil
}
