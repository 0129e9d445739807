package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"learnmate/models"
)

// ListCourses returns every course with fields projected to the declared
// schema; anything else persisted on the documents is dropped here.
func (r *Repository) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := queryRows[models.Course](ctx, r.db,
		"SELECT title, subject, description FROM course", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	if courses == nil {
		courses = make([]models.Course, 0)
	}
	return courses, nil
}

func (r *Repository) CountCourses(ctx context.Context) (int, error) {
	type countRow struct {
		Count int `json:"count"`
	}

	rows, err := queryRows[countRow](ctx, r.db,
		"SELECT count() AS count FROM course GROUP ALL", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Count, nil
}

func (r *Repository) CreateCourse(ctx context.Context, course *models.Course) error {
	if _, err := surrealdb.Create[models.Course](ctx, r.db.DB, "course", course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}
