package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jpcostan/pulse/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrInvalidMeeting    = errors.New("invalid meeting")
	ErrInvalidActionItem = errors.New("invalid action item")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMeeting validates a single meeting.
func validateMeeting(meeting *model.Meeting) error {
	if meeting == nil {
		return fmt.Errorf("%w: meeting", ErrNilParameter)
	}
	if strings.TrimSpace(meeting.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidMeeting)
	}
	if strings.TrimSpace(meeting.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidMeeting)
	}
	return nil
}

// validateActionItem validates a single action item.
func validateActionItem(item *model.ActionItem) error {
	if item == nil {
		return fmt.Errorf("%w: item", ErrNilParameter)
	}
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidActionItem)
	}
	if strings.TrimSpace(item.MeetingID) == "" {
		return fmt.Errorf("%w: missing meeting ID", ErrInvalidActionItem)
	}
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidActionItem)
	}
	if item.Confidence < 0 || item.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidActionItem)
	}
	return nil
}
