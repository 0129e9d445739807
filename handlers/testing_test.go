package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"learnmate/app"
	"learnmate/config/setup"
	"learnmate/models"
	"learnmate/services"
)

// memRepo is an in-memory services.Repository. The real store is a remote
// SurrealDB instance, so handler tests run against this fake instead of a
// temp database.
type memRepo struct {
	mu            sync.Mutex
	courses       []models.Course
	notes         []models.Note
	practices     map[string]models.Practice
	profiles      map[string]models.Profile
	quizResults   []models.QuizResult
	notifications []models.Notification
}

var _ services.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		practices: make(map[string]models.Practice),
		profiles:  make(map[string]models.Profile),
	}
}

func (m *memRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Course{}, m.courses...), nil
}

func (m *memRepo) CountCourses(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.courses), nil
}

func (m *memRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses = append(m.courses, *course)
	return nil
}

func (m *memRepo) GetNotes(ctx context.Context, username string) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	notes := make([]models.Note, 0)
	for _, n := range m.notes {
		if n.Username == username {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (m *memRepo) CreateNote(ctx context.Context, note *models.Note) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, *note)
	return fmt.Sprintf("note:%d", len(m.notes)), nil
}

func (m *memRepo) DeleteNote(ctx context.Context, username, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.notes {
		if n.Username == username && n.Title == title {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return services.ErrNoteNotFound
}

func (m *memRepo) CreatePracticeIfAbsent(ctx context.Context, practice *models.Practice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := practice.Username + "|" + practice.Date
	if _, ok := m.practices[key]; ok {
		return services.ErrPracticeExists
	}
	m.practices[key] = *practice
	return nil
}

func (m *memRepo) GetPracticeHistory(ctx context.Context, username string) ([]models.PracticeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]models.PracticeEntry, 0)
	for _, p := range m.practices {
		if p.Username == username {
			entries = append(entries, models.PracticeEntry{Date: p.Date, Status: p.Status})
		}
	}
	return entries, nil
}

func (m *memRepo) CreateQuizResult(ctx context.Context, result *models.QuizResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizResults = append(m.quizResults, *result)
	return nil
}

func (m *memRepo) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.profiles[username]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memRepo) CreateProfile(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.Username] = *profile
	return nil
}

func (m *memRepo) MergeProfile(ctx context.Context, username string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[username]
	if !ok {
		p = models.Profile{Username: username}
	}
	if v, ok := fields["full_name"].(string); ok {
		p.FullName = v
	}
	if v, ok := fields["language"].(string); ok {
		p.Language = v
	}
	if v, ok := fields["push_notifications"].(bool); ok {
		p.PushNotifications = v
	}
	m.profiles[username] = p
	return nil
}

func (m *memRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *memRepo) GetNotifications(ctx context.Context, username string) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	notifications := make([]models.Notification, 0)
	for _, n := range m.notifications {
		if n.Username == username || n.Username == models.GuestUsername {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (m *memRepo) ListCollections(ctx context.Context) ([]string, error) {
	return []string{"course", "note", "notification", "practice", "profile", "quizresult"}, nil
}

func (m *memRepo) notificationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notifications)
}

// setupTestApp builds a Fiber app with the full route table and the given
// repository (nil simulates a store that never came up).
func setupTestApp(repo services.Repository) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(repo, logger)

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: setup.CustomErrorHandler(logger),
	})
	setup.RegisterRoutes(fiberApp, application)
	return fiberApp
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func doRequestList(t *testing.T, fiberApp *fiber.App, target string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := fiberApp.Test(req)
	require.NoError(t, err)

	var parsed []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}
