package services

import "errors"

// Common service-level errors
var (
	// Note errors
	ErrNoteNotFound = errors.New("note not found")

	// Practice errors
	ErrPracticeExists = errors.New("practice already completed today")
)
