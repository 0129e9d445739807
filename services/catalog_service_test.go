package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"learnmate/models"
)

// ==================== MOCKS ====================

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

var _ CourseRepository = (*MockCourseRepository)(nil)

func (m *MockCourseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseRepository) CountCourses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

var _ NotificationRepository = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetNotifications(ctx context.Context, username string) ([]models.Notification, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

// ==================== TESTS ====================

func TestCatalogService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty collection - inserts fixed rows and a notification", func(t *testing.T) {
		courses := new(MockCourseRepository)
		notifications := new(MockNotificationRepository)

		courses.On("CountCourses", ctx).Return(0, nil)
		courses.On("CreateCourse", ctx, mock.AnythingOfType("*models.Course")).Return(nil).Times(5)
		notifications.On("CreateNotification", ctx, mock.AnythingOfType("*models.Notification")).Return(nil).Once()

		cs := NewCatalogService(courses, notifications)
		seeded, err := cs.Seed(ctx)

		require.NoError(t, err)
		assert.True(t, seeded)
		courses.AssertExpectations(t)
		notifications.AssertExpectations(t)
	})

	t.Run("Non-empty collection - no-op", func(t *testing.T) {
		courses := new(MockCourseRepository)
		notifications := new(MockNotificationRepository)

		courses.On("CountCourses", ctx).Return(5, nil)

		cs := NewCatalogService(courses, notifications)
		seeded, err := cs.Seed(ctx)

		require.NoError(t, err)
		assert.False(t, seeded)
		courses.AssertNotCalled(t, "CreateCourse", mock.Anything, mock.Anything)
		notifications.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	})

	t.Run("Count error propagates", func(t *testing.T) {
		courses := new(MockCourseRepository)
		notifications := new(MockNotificationRepository)

		countErr := errors.New("store down")
		courses.On("CountCourses", ctx).Return(0, countErr)

		cs := NewCatalogService(courses, notifications)
		seeded, err := cs.Seed(ctx)

		assert.ErrorIs(t, err, countErr)
		assert.False(t, seeded)
	})

	t.Run("Seeded subjects carry descriptions", func(t *testing.T) {
		courses := new(MockCourseRepository)
		notifications := new(MockNotificationRepository)

		var created []models.Course
		courses.On("CountCourses", ctx).Return(0, nil)
		courses.On("CreateCourse", ctx, mock.AnythingOfType("*models.Course")).
			Run(func(args mock.Arguments) {
				created = append(created, *args.Get(1).(*models.Course))
			}).Return(nil)
		notifications.On("CreateNotification", ctx, mock.Anything).Return(nil)

		cs := NewCatalogService(courses, notifications)
		_, err := cs.Seed(ctx)
		require.NoError(t, err)

		require.Len(t, created, 5)
		assert.Equal(t, "Mathematics", created[0].Title)
		assert.Equal(t, "Intro to Mathematics", created[0].Description)
		assert.Equal(t, "Social Studies", created[4].Subject)
	})
}
