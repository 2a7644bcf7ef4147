// Package model defines the core domain models used throughout the application.
package model

import "time"

// Meeting represents a single recorded meeting and its transcript.
type Meeting struct {
	RecordedAt time.Time
	CreatedAt  time.Time
	ID         string
	Title      string
	Transcript string // Full transcript text, chunks joined with ". " by the transcriber
	Duration   time.Duration
}
