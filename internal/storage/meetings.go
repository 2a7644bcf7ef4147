package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/model"
)

// CreateMeeting persists a new meeting record.
func (s *SQLiteStorage) CreateMeeting(ctx context.Context, meeting *model.Meeting) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMeeting(meeting); err != nil {
		return err
	}

	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meetings (id, title, transcript, recorded_at, duration_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		meeting.ID,
		meeting.Title,
		meeting.Transcript,
		meeting.RecordedAt,
		int64(meeting.Duration.Seconds()),
		meeting.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("meeting %s: %w", meeting.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// GetMeeting retrieves a meeting by ID.
func (s *SQLiteStorage) GetMeeting(ctx context.Context, id string) (*model.Meeting, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, transcript, recorded_at, duration_seconds, created_at
		FROM meetings WHERE id = ?
	`, id)

	meeting, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meeting %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings returns meetings ordered by recording time, newest first.
func (s *SQLiteStorage) ListMeetings(ctx context.Context, limit int) ([]model.Meeting, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, transcript, recorded_at, duration_seconds, created_at
		FROM meetings ORDER BY recorded_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meetings []model.Meeting
	for rows.Next() {
		meeting, scanErr := scanMeeting(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", scanErr)
		}
		meetings = append(meetings, *meeting)
	}
	return meetings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*model.Meeting, error) {
	var m model.Meeting
	var durationSeconds int64
	if err := row.Scan(&m.ID, &m.Title, &m.Transcript, &m.RecordedAt, &durationSeconds, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Duration = time.Duration(durationSeconds) * time.Second
	return &m, nil
}
