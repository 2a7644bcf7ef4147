package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

func TestRenderActionItems(t *testing.T) {
	due := time.Date(2030, 3, 5, 15, 0, 0, 0, time.UTC)
	items := []model.ActionItem{
		{
			Title:          "Finalize the deck by March 5, 2030",
			SourceSentence: "We need to finalize the deck by March 5, 2030.",
			Confidence:     0.80,
			DueDate:        &due,
			Included:       true,
		},
		{
			Title:          "Send the proposal",
			SourceSentence: "Maybe send the proposal.",
			Confidence:     0.50,
		},
		{
			Title:          "Email John",
			SourceSentence: "Don't forget to email John.",
			Confidence:     0.90,
			Included:       true,
			Done:           true,
		},
	}

	out := RenderActionItems(items)

	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "[✓]")
	assert.Contains(t, out, "Finalize the deck by March 5, 2030")
	assert.Contains(t, out, "due Tue Mar 5 2030 15:00")
	assert.Contains(t, out, "80% · We need to finalize the deck by March 5, 2030.")
	assert.Contains(t, out, "50% · Maybe send the proposal.")
	assert.NotContains(t, out, "Send the proposal due")
}

func TestRenderActionItemsEmpty(t *testing.T) {
	out := RenderActionItems(nil)
	assert.Contains(t, out, "No action items found.")
}

func TestRenderDetectionSummary(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		stats service.DetectionStats
	}{
		{
			name:  "nothing detected",
			stats: service.DetectionStats{Sentences: 12},
			want:  "No action items detected across 12 sentences.",
		},
		{
			name:  "items detected",
			stats: service.DetectionStats{Sentences: 9, Detected: 3, WithDue: 2, Included: 3},
			want:  "Detected 3 action items (2 with due dates, 3 included) across 9 sentences.",
		},
		{
			name:  "all below inclusion threshold",
			stats: service.DetectionStats{Sentences: 5, Detected: 2, WithDue: 1},
			want:  "Detected 2 action items (1 with due dates) across 5 sentences, but none met the inclusion threshold.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, RenderDetectionSummary(tt.stats), tt.want)
		})
	}
}
