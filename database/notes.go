package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"learnmate/models"
	"learnmate/services"
)

func (r *Repository) GetNotes(ctx context.Context, username string) ([]models.Note, error) {
	notes, err := queryRows[models.Note](ctx, r.db,
		"SELECT username, title, content FROM note WHERE username = $username",
		map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = make([]models.Note, 0)
	}
	return notes, nil
}

// CreateNote inserts the note unconditionally. There is no uniqueness
// check on (username, title); duplicates produce separate records.
func (r *Repository) CreateNote(ctx context.Context, note *models.Note) (string, error) {
	type noteRecord struct {
		ID       *surrealmodels.RecordID `json:"id,omitempty"`
		Username string                  `json:"username"`
		Title    string                  `json:"title"`
		Content  string                  `json:"content"`
	}

	created, err := surrealdb.Create[noteRecord](ctx, r.db.DB, "note", note)
	if err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}
	if created == nil || created.ID == nil {
		return "", nil
	}
	return created.ID.String(), nil
}

// DeleteNote removes at most one record matching (username, title). With
// duplicate titles only one of them goes, in storage order.
func (r *Repository) DeleteNote(ctx context.Context, username, title string) error {
	type idRow struct {
		ID *surrealmodels.RecordID `json:"id"`
	}

	rows, err := queryRows[idRow](ctx, r.db,
		"SELECT id FROM note WHERE username = $username AND title = $title LIMIT 1",
		map[string]any{"username": username, "title": title})
	if err != nil {
		return fmt.Errorf("failed to find note: %w", err)
	}
	if len(rows) == 0 || rows[0].ID == nil {
		return services.ErrNoteNotFound
	}

	if _, err := surrealdb.Delete[models.Note](ctx, r.db.DB, *rows[0].ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
