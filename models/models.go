package models

import "time"

// GuestUsername is the fallback owner for records created without an
// explicit username. It doubles as the broadcast channel for
// notifications: every user sees notifications addressed to "guest".
const GuestUsername = "guest"

// Profile holds a user's account settings. One record per username.
type Profile struct {
	Username          string `json:"username"`
	FullName          string `json:"full_name,omitempty"`
	Language          string `json:"language"`
	PushNotifications bool   `json:"push_notifications"`
}

// DefaultProfile returns the profile persisted on first read for an
// unknown username.
func DefaultProfile(username string) *Profile {
	return &Profile{
		Username:          username,
		Language:          "en",
		PushNotifications: true,
	}
}

// Course is a catalog entry. Read-only for clients; rows come from the
// seeding routine.
type Course struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
}

type Note struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// Practice records one completed practice session per user per calendar
// day. Date is a YYYY-MM-DD string, status is always "completed".
type Practice struct {
	Username string `json:"username"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// PracticeEntry is the trimmed shape returned by the history endpoint.
type PracticeEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// QuizQuestion is served from the static in-memory bank, never stored.
type QuizQuestion struct {
	Subject      string   `json:"subject"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// QuizResult is an append-only log entry of a scored submission.
type QuizResult struct {
	Username  string    `json:"username"`
	Subject   string    `json:"subject"`
	Total     int       `json:"total"`
	Correct   int       `json:"correct"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Kind     string `json:"kind"`
}

// NewNotification builds an info notification on the broadcast channel.
func NewNotification(message string) *Notification {
	return &Notification{
		Username: GuestUsername,
		Message:  message,
		Kind:     "info",
	}
}

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content"`
	Username string `json:"username" validate:"omitempty,username"`
}

// SubmitQuizRequest is the body of POST /quiz/submit. Answers holds the
// picked option index per question, positionally.
type SubmitQuizRequest struct {
	Answers  []int  `json:"answers" validate:"required"`
	Subject  string `json:"subject"`
	Username string `json:"username" validate:"omitempty,username"`
}

// UpdateProfileRequest is the body of POST /profile. Pointer fields
// distinguish "not sent" from zero values: only non-nil fields are merged
// into the stored profile.
type UpdateProfileRequest struct {
	Username          string  `json:"username" validate:"omitempty,username"`
	FullName          *string `json:"full_name" validate:"omitempty,max=200"`
	Language          *string `json:"language" validate:"omitempty,min=2,max=35"`
	PushNotifications *bool   `json:"push_notifications"`
}
