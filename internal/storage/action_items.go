package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

// CreateActionItem persists a new action item as handed over by the
// detection engine. Title, source sentence, confidence, due date, and the
// inclusion flag are stored as given.
func (s *SQLiteStorage) CreateActionItem(ctx context.Context, item *model.ActionItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateActionItem(item); err != nil {
		return err
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO action_items (
			id, meeting_id, title, source_sentence, confidence,
			due_date, included, done, reminder_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		item.ID,
		item.MeetingID,
		item.Title,
		item.SourceSentence,
		item.Confidence,
		item.DueDate,
		item.Included,
		item.Done,
		item.ReminderID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("action item %s: %w", item.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create action item: %w", err)
	}
	return nil
}

// GetActionItem retrieves a single action item by ID.
func (s *SQLiteStorage) GetActionItem(ctx context.Context, id string) (*model.ActionItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, meeting_id, title, source_sentence, confidence,
		       due_date, included, done, reminder_id, created_at, updated_at
		FROM action_items WHERE id = ?
	`, id)

	item, err := scanActionItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("action item %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	return item, nil
}

// GetActionItems returns action items matching the filter, ordered by
// creation time so detection order is preserved.
func (s *SQLiteStorage) GetActionItems(ctx context.Context, filter service.ActionItemFilter) ([]model.ActionItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, meeting_id, title, source_sentence, confidence,
		       due_date, included, done, reminder_id, created_at, updated_at
		FROM action_items`
	var conditions []string
	var args []any

	if filter.MeetingID != "" {
		conditions = append(conditions, "meeting_id = ?")
		args = append(args, filter.MeetingID)
	}
	if filter.IncludedOnly {
		conditions = append(conditions, "included = 1")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query action items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.ActionItem
	for rows.Next() {
		item, scanErr := scanActionItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan action item: %w", scanErr)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// UpdateActionItemInclusion sets the inclusion flag for an action item.
func (s *SQLiteStorage) UpdateActionItemInclusion(ctx context.Context, id string, included bool) error {
	return s.updateActionItemField(ctx, id, "included", included)
}

// UpdateActionItemDone sets the completion flag for an action item.
func (s *SQLiteStorage) UpdateActionItemDone(ctx context.Context, id string, done bool) error {
	return s.updateActionItemField(ctx, id, "done", done)
}

// UpdateActionItemDueDate replaces the due date; a nil dueDate clears it.
func (s *SQLiteStorage) UpdateActionItemDueDate(ctx context.Context, id string, dueDate *time.Time) error {
	return s.updateActionItemField(ctx, id, "due_date", dueDate)
}

// SetActionItemReminderID records the external reminder identifier after a
// sync collaborator has created the reminder.
func (s *SQLiteStorage) SetActionItemReminderID(ctx context.Context, id string, reminderID string) error {
	return s.updateActionItemField(ctx, id, "reminder_id", reminderID)
}

func (s *SQLiteStorage) updateActionItemField(ctx context.Context, id, column string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	// column comes from a fixed set of callers, never user input
	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE action_items SET %s = ?, updated_at = ? WHERE id = ?`, column),
		value, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update action item %s: %w", column, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("action item %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// DeleteActionItem removes an action item.
func (s *SQLiteStorage) DeleteActionItem(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM action_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("action item %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanActionItem(row rowScanner) (*model.ActionItem, error) {
	var item model.ActionItem
	var dueDate sql.NullTime
	if err := row.Scan(
		&item.ID,
		&item.MeetingID,
		&item.Title,
		&item.SourceSentence,
		&item.Confidence,
		&dueDate,
		&item.Included,
		&item.Done,
		&item.ReminderID,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		item.DueDate = &dueDate.Time
	}
	return &item, nil
}
