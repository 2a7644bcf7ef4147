package cli

import (
	"fmt"
	"strings"

	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

// RenderActionItems formats action items as an aligned list for terminal
// display, detection order preserved.
func RenderActionItems(items []model.ActionItem) string {
	if len(items) == 0 {
		return SubtleStyle.Render("No action items found.")
	}

	var b strings.Builder
	for i, item := range items {
		marker := ExcludedStyle.Render("[ ]")
		if item.Included {
			marker = IncludedStyle.Render("[x]")
		}
		if item.Done {
			marker = SuccessStyle.Render("[✓]")
		}

		due := ""
		if item.DueDate != nil {
			due = SubtleStyle.Render(" due " + item.DueDate.Format("Mon Jan 2 2006 15:04"))
		}

		fmt.Fprintf(&b, "%s %2d. %s%s\n", marker, i+1, item.Title, due)
		fmt.Fprintf(&b, "       %s\n", SubtleStyle.Render(fmt.Sprintf("%.0f%% · %s", item.Confidence*100, item.SourceSentence)))
	}
	return b.String()
}

// RenderDetectionSummary formats the outcome of a detection run.
func RenderDetectionSummary(stats service.DetectionStats) string {
	if stats.Detected == 0 {
		// No actions is a normal outcome, not a failure.
		return SubtleStyle.Render(fmt.Sprintf(
			"No action items detected across %d sentences.", stats.Sentences))
	}

	if stats.Included == 0 {
		return WarningStyle.Render(fmt.Sprintf(
			"Detected %d action items (%d with due dates) across %d sentences, but none met the inclusion threshold.",
			stats.Detected, stats.WithDue, stats.Sentences))
	}

	return SuccessStyle.Render(fmt.Sprintf(
		"Detected %d action items (%d with due dates, %d included) across %d sentences.",
		stats.Detected, stats.WithDue, stats.Included, stats.Sentences))
}
