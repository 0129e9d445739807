package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"learnmate/models"
)

// Profiles use the username itself as the record ID, so lazy creation
// cannot produce duplicates and merge updates are a single statement.

func (r *Repository) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	rows, err := queryRows[models.Profile](ctx, r.db,
		"SELECT username, full_name, language, push_notifications FROM type::thing('profile', $username)",
		map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	profile := rows[0]
	return &profile, nil
}

func (r *Repository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	_, err := surrealdb.Query[[]models.Profile](ctx, r.db.DB,
		"CREATE type::thing('profile', $username) CONTENT $content",
		map[string]any{
			"username": profile.Username,
			"content":  profile,
		})
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// MergeProfile upserts only the supplied fields into the stored document.
// Schema defaults are not applied on this path: a profile created here
// contains the username plus whatever the caller sent, nothing else.
func (r *Repository) MergeProfile(ctx context.Context, username string, fields map[string]any) error {
	merged := map[string]any{"username": username}
	for k, v := range fields {
		merged[k] = v
	}

	_, err := surrealdb.Query[[]models.Profile](ctx, r.db.DB,
		"UPSERT type::thing('profile', $username) MERGE $fields",
		map[string]any{
			"username": username,
			"fields":   merged,
		})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
