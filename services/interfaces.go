package services

import (
	"context"

	"learnmate/models"
)

// CourseRepository defines the interface for course catalog data access
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	CountCourses(ctx context.Context) (int, error)
	CreateCourse(ctx context.Context, course *models.Course) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	GetNotes(ctx context.Context, username string) ([]models.Note, error)
	// CreateNote inserts unconditionally and returns the new record ID.
	// Duplicate (username, title) pairs are allowed.
	CreateNote(ctx context.Context, note *models.Note) (string, error)
	// DeleteNote removes at most one matching record and returns
	// ErrNoteNotFound when nothing matched.
	DeleteNote(ctx context.Context, username, title string) error
}

// PracticeRepository defines the interface for daily practice data access
type PracticeRepository interface {
	// CreatePracticeIfAbsent atomically inserts the record keyed on
	// (username, date) and returns ErrPracticeExists when the user already
	// completed that day. Concurrent callers: exactly one wins.
	CreatePracticeIfAbsent(ctx context.Context, practice *models.Practice) error
	GetPracticeHistory(ctx context.Context, username string) ([]models.PracticeEntry, error)
}

// QuizResultRepository defines the interface for the quiz result log
type QuizResultRepository interface {
	CreateQuizResult(ctx context.Context, result *models.QuizResult) error
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// GetProfile returns nil, nil when no record exists for the username.
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	// MergeProfile upserts the given fields into the stored document,
	// leaving every other field untouched.
	MergeProfile(ctx context.Context, username string, fields map[string]any) error
}

// NotificationRepository defines the interface for the notification log
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	// GetNotifications returns records addressed to the username or to the
	// "guest" broadcast channel.
	GetNotifications(ctx context.Context, username string) ([]models.Notification, error)
}

// Repository aggregates all data access the application needs.
type Repository interface {
	CourseRepository
	NoteRepository
	PracticeRepository
	QuizResultRepository
	ProfileRepository
	NotificationRepository

	// ListCollections reports the store's table names for the diagnostic
	// endpoint.
	ListCollections(ctx context.Context) ([]string, error)
}
