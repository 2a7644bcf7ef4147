package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/service"
	"github.com/Jpcostan/pulse/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively review action items",
		Long: `Open an interactive screen to include, exclude, or complete
detected action items before they are handed to the reminders sync.`,
		RunE: runReview,
	}

	cmd.Flags().StringP("meeting", "m", "", "Only items from this meeting")
	return cmd
}

func runReview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	meetingID, _ := cmd.Flags().GetString("meeting")

	store, err := initStorage(ctx)
	if err != nil {
		return common.NewUserError("Could not open the database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	items, err := store.GetActionItems(ctx, service.ActionItemFilter{MeetingID: meetingID})
	if err != nil {
		return fmt.Errorf("failed to load action items: %w", err)
	}

	return tui.Run(store, items)
}
