package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export included action items as Markdown",
		Long: `Write the included action items as a Markdown checklist, suitable
for pasting into meeting notes or an issue tracker.

Examples:
  pulse export
  pulse export --meeting 4f9d... -o actions.md`,
		RunE: runExport,
	}

	cmd.Flags().StringP("meeting", "m", "", "Only items from this meeting")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	meetingID, _ := cmd.Flags().GetString("meeting")
	output, _ := cmd.Flags().GetString("output")

	store, err := initStorage(ctx)
	if err != nil {
		return common.NewUserError("Could not open the database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	items, err := store.GetActionItems(ctx, service.ActionItemFilter{
		MeetingID:    meetingID,
		IncludedOnly: true,
	})
	if err != nil {
		return fmt.Errorf("failed to load action items: %w", err)
	}

	markdown := renderMarkdown(items)

	if output == "" {
		fmt.Print(markdown)
		return nil
	}
	if err := os.WriteFile(output, []byte(markdown), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	common.LogInfo("Exported action items", common.Fields{"count": len(items), "file": output})
	return nil
}

func renderMarkdown(items []model.ActionItem) string {
	var b strings.Builder
	b.WriteString("# Action items\n\n")

	if len(items) == 0 {
		b.WriteString("_No action items._\n")
		return b.String()
	}

	for _, item := range items {
		check := " "
		if item.Done {
			check = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s", check, item.Title)
		if item.DueDate != nil {
			fmt.Fprintf(&b, " (due %s)", item.DueDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
