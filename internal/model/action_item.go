package model

import "time"

// ActionItem represents a persisted commitment detected in a meeting transcript.
type ActionItem struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DueDate        *time.Time
	ID             string
	MeetingID      string
	Title          string
	SourceSentence string // Original sentence text, kept verbatim for audit and reminder notes
	ReminderID     string // External reminder identifier once synced, empty otherwise
	Confidence     float64
	Included       bool
	Done           bool
}

// DetectedAction is the transient result of classifying one sentence.
// It carries no identity; the store assigns one when the action is persisted.
type DetectedAction struct {
	DueDate        *time.Time
	Title          string
	SourceSentence string
	Confidence     float64
}
