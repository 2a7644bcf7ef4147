// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Jpcostan/pulse/internal/model"
)

// ActionItemFilter defines filtering options for action item queries.
type ActionItemFilter struct {
	MeetingID    string
	IncludedOnly bool
	Limit        int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Meeting operations
	CreateMeeting(ctx context.Context, meeting *model.Meeting) error
	GetMeeting(ctx context.Context, id string) (*model.Meeting, error)
	ListMeetings(ctx context.Context, limit int) ([]model.Meeting, error)

	// Action item operations
	CreateActionItem(ctx context.Context, item *model.ActionItem) error
	GetActionItem(ctx context.Context, id string) (*model.ActionItem, error)
	GetActionItems(ctx context.Context, filter ActionItemFilter) ([]model.ActionItem, error)
	UpdateActionItemInclusion(ctx context.Context, id string, included bool) error
	UpdateActionItemDone(ctx context.Context, id string, done bool) error
	UpdateActionItemDueDate(ctx context.Context, id string, dueDate *time.Time) error
	SetActionItemReminderID(ctx context.Context, id string, reminderID string) error
	DeleteActionItem(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ProgressFunc reports coarse completion fractions in [0, 1] during detection.
// Implementations must be fast and must not block.
type ProgressFunc func(fraction float64, stage string)

// DetectionStats shows the results of a detection run.
type DetectionStats struct {
	Sentences int
	Detected  int
	WithDue   int
	Included  int
}
