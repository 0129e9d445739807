package services

import (
	"context"
	"fmt"

	"learnmate/models"
)

// seedSubjects are the fixed subject rows inserted by the seeding routine.
var seedSubjects = []string{
	"Mathematics",
	"Science",
	"English",
	"Computer/ICT",
	"Social Studies",
}

// CatalogService handles the course catalog seeding routine.
type CatalogService struct {
	courses       CourseRepository
	notifications NotificationRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courses CourseRepository, notifications NotificationRepository) *CatalogService {
	return &CatalogService{
		courses:       courses,
		notifications: notifications,
	}
}

// Seed inserts the fixed course rows, guarded by "only if the collection
// is currently empty". Returns whether anything was inserted.
func (cs *CatalogService) Seed(ctx context.Context) (bool, error) {
	count, err := cs.courses.CountCourses(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, subject := range seedSubjects {
		course := &models.Course{
			Title:       subject,
			Subject:     subject,
			Description: fmt.Sprintf("Intro to %s", subject),
		}
		if err := cs.courses.CreateCourse(ctx, course); err != nil {
			return false, err
		}
	}

	if err := cs.notifications.CreateNotification(ctx, models.NewNotification("New course added!")); err != nil {
		return false, err
	}

	return true, nil
}
