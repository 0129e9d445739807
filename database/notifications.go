package database

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"learnmate/models"
)

func (r *Repository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if _, err := surrealdb.Create[models.Notification](ctx, r.db.DB, "notification", notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetNotifications returns records addressed to the username or to the
// "guest" broadcast channel, in storage order.
func (r *Repository) GetNotifications(ctx context.Context, username string) ([]models.Notification, error) {
	notifications, err := queryRows[models.Notification](ctx, r.db,
		"SELECT username, message, kind FROM notification WHERE username IN [$username, $guest]",
		map[string]any{"username": username, "guest": models.GuestUsername})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = make([]models.Notification, 0)
	}
	return notifications, nil
}
