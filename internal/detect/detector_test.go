package detect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

// mockStorage records created action items in memory.
type mockStorage struct {
	createErr error
	items     []model.ActionItem
}

func (m *mockStorage) CreateMeeting(_ context.Context, _ *model.Meeting) error { return nil }
func (m *mockStorage) GetMeeting(_ context.Context, _ string) (*model.Meeting, error) {
	return nil, errors.New("not implemented")
}
func (m *mockStorage) ListMeetings(_ context.Context, _ int) ([]model.Meeting, error) {
	return nil, nil
}

func (m *mockStorage) CreateActionItem(_ context.Context, item *model.ActionItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockStorage) GetActionItem(_ context.Context, _ string) (*model.ActionItem, error) {
	return nil, errors.New("not implemented")
}

func (m *mockStorage) GetActionItems(_ context.Context, _ service.ActionItemFilter) ([]model.ActionItem, error) {
	return m.items, nil
}

func (m *mockStorage) UpdateActionItemInclusion(_ context.Context, _ string, _ bool) error {
	return nil
}
func (m *mockStorage) UpdateActionItemDone(_ context.Context, _ string, _ bool) error { return nil }
func (m *mockStorage) UpdateActionItemDueDate(_ context.Context, _ string, _ *time.Time) error {
	return nil
}
func (m *mockStorage) SetActionItemReminderID(_ context.Context, _ string, _ string) error {
	return nil
}
func (m *mockStorage) DeleteActionItem(_ context.Context, _ string) error { return nil }
func (m *mockStorage) Migrate(_ context.Context) error                    { return nil }
func (m *mockStorage) Close() error                                       { return nil }

// fixedClock anchors relative dates on Monday 2026-03-02 10:00 UTC.
func fixedClock() time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func TestDetectActions(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantTitles []string
		wantDue    []string // "" means no due date, parallel to wantTitles
		sentences  int
	}{
		{
			name: "transcript with two commitments",
			transcript: "We need to finalize the deck by March 5, 2030. " +
				"The weather is nice. " +
				"Don't forget to email John by April 1, 2030.",
			sentences:  3,
			wantTitles: []string{"Finalize the deck by March 5, 2030", "Email John by April 1, 2030"},
			wantDue:    []string{"2030-03-05", "2030-04-01"},
		},
		{
			name:       "single request without date",
			transcript: "Please send the proposal.",
			sentences:  1,
			wantTitles: []string{"Send the proposal"},
			wantDue:    []string{""},
		},
		{
			name:       "smalltalk produces nothing",
			transcript: "We talked about the weather. It was a nice chat. See you around.",
			sentences:  3,
		},
		{
			name:       "empty transcript",
			transcript: "",
		},
		{
			name:       "relative dates resolve against the clock",
			transcript: "Submit the form by 3pm tomorrow. I'll review the contract next Friday.",
			sentences:  2,
			wantTitles: []string{"Submit the form by 3pm tomorrow", "Review the contract next Friday"},
			wantDue:    []string{"2026-03-03", "2026-03-06"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStorage{}
			detector, err := NewDetector(store, WithClock(fixedClock))
			require.NoError(t, err)

			stats, err := detector.DetectActions(context.Background(), "meeting-1", tt.transcript)
			require.NoError(t, err)

			assert.Equal(t, tt.sentences, stats.Sentences)
			require.Len(t, store.items, len(tt.wantTitles))
			assert.Equal(t, len(tt.wantTitles), stats.Detected)

			for i, item := range store.items {
				assert.Equal(t, tt.wantTitles[i], item.Title)
				assert.Equal(t, "meeting-1", item.MeetingID)
				assert.NotEmpty(t, item.ID)

				if tt.wantDue[i] == "" {
					assert.Nil(t, item.DueDate, "item %d should have no due date", i)
				} else {
					require.NotNil(t, item.DueDate, "item %d should have a due date", i)
					assert.Equal(t, tt.wantDue[i], item.DueDate.Format("2006-01-02"))
				}
			}
		})
	}
}

func TestDetectActionsInclusionThreshold(t *testing.T) {
	store := &mockStorage{}
	// A low-confidence rule below the threshold and a high one above it.
	detector, err := NewDetector(store,
		WithClock(fixedClock),
		WithRules([]Rule{
			{Name: "weak", Regex: `\bmaybe send\b`, Confidence: 0.50},
			{Name: "strong", Regex: `\bsend\b`, Confidence: 0.90},
		}))
	require.NoError(t, err)

	stats, err := detector.DetectActions(context.Background(), "m1",
		"Maybe send the survey sometime. Send the report to finance today.")
	require.NoError(t, err)

	require.Len(t, store.items, 2)
	assert.Equal(t, 2, stats.Detected)
	assert.Equal(t, 1, stats.Included)

	assert.False(t, store.items[0].Included)
	assert.InDelta(t, 0.50, store.items[0].Confidence, 0.0001)
	assert.True(t, store.items[1].Included)
	assert.InDelta(t, 0.90, store.items[1].Confidence, 0.0001)
}

func TestDetectActionsProgress(t *testing.T) {
	store := &mockStorage{}
	var fractions []float64
	detector, err := NewDetector(store,
		WithProgress(func(fraction float64, _ string) {
			fractions = append(fractions, fraction)
		}),
		WithClock(fixedClock))
	require.NoError(t, err)

	_, err = detector.DetectActions(context.Background(), "m1", "Please send the proposal.")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.2, 0.5, 0.7, 0.9, 1.0}, fractions)
}

func TestDetectActionsDeterministic(t *testing.T) {
	transcript := "We need to finalize the deck by March 5, 2030. " +
		"I'll follow up with legal tomorrow. " +
		"Can you send the report by Friday?"

	run := func() []model.ActionItem {
		store := &mockStorage{}
		detector, err := NewDetector(store, WithClock(fixedClock))
		require.NoError(t, err)
		_, err = detector.DetectActions(context.Background(), "m1", transcript)
		require.NoError(t, err)
		return store.items
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].SourceSentence, second[i].SourceSentence)
		assert.Equal(t, first[i].Confidence, second[i].Confidence)
		assert.Equal(t, first[i].DueDate, second[i].DueDate)
	}
}

func TestNewDetectorInvalidRules(t *testing.T) {
	detector, err := NewDetector(&mockStorage{},
		WithRules([]Rule{{Name: "bad", Regex: `[unclosed`, Confidence: 0.5}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile rule")
	assert.Nil(t, detector)
}

func TestDetectActionsStorageError(t *testing.T) {
	wantErr := errors.New("disk full")
	store := &mockStorage{createErr: wantErr}
	detector, err := NewDetector(store, WithClock(fixedClock))
	require.NoError(t, err)

	stats, err := detector.DetectActions(context.Background(), "m1", "Please send the proposal.")
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, stats.Detected)
}
