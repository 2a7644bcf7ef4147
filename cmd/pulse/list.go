package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jpcostan/pulse/internal/cli"
	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/service"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List detected action items",
		Long: `List stored action items, newest meetings first.

Examples:
  pulse list
  pulse list --meeting 4f9d...
  pulse list --included`,
		RunE: runList,
	}

	cmd.Flags().StringP("meeting", "m", "", "Only items from this meeting")
	cmd.Flags().Bool("included", false, "Only items included for sync")
	cmd.Flags().IntP("limit", "n", 0, "Maximum number of items (0 = no limit)")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	meetingID, _ := cmd.Flags().GetString("meeting")
	includedOnly, _ := cmd.Flags().GetBool("included")
	limit, _ := cmd.Flags().GetInt("limit")

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
		IncludedOnly: includedOnly,
		Limit:        limit,
	})
	if err != nil {
		return fmt.Errorf("failed to load action items: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Action items"))
	fmt.Print(cli.RenderActionItems(items))
	return nil
}
