package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Jpcostan/pulse/internal/cli"
	"github.com/Jpcostan/pulse/internal/common"
	"github.com/Jpcostan/pulse/internal/detect"
	"github.com/Jpcostan/pulse/internal/model"
	"github.com/Jpcostan/pulse/internal/service"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [transcript-file]",
		Short: "Detect action items in a meeting transcript",
		Long: `Run the action-detection engine over a transcript and store the results.

The transcript is read from the given file, or from stdin when the
argument is "-" or omitted. Each detected commitment is stored as an
action item with its confidence, source sentence, and any due date
inferred from the surrounding language.

Examples:
  pulse detect standup.txt
  pulse detect standup.txt --title "Monday standup"
  cat transcript.txt | pulse detect -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDetect,
	}

	cmd.Flags().StringP("title", "t", "", "Meeting title (default: transcript file name)")
	return cmd
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	transcript, source, err := readTranscript(args)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = source
	}

	store, err := initStorage(ctx)
	if err != nil {
		return common.NewUserError("Could not open the database", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to close database", nil)
		}
	}()

	meeting := &model.Meeting{
		ID:         uuid.NewString(),
		Title:      title,
		Transcript: transcript,
		RecordedAt: time.Now(),
	}
	if err := store.CreateMeeting(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Detecting action items...[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	detector, err := detect.NewDetector(store, detect.WithProgress(func(fraction float64, _ string) {
		_ = bar.Set(int(fraction * 100))
	}))
	if err != nil {
		return fmt.Errorf("failed to build detector: %w", err)
	}

	stats, err := detector.DetectActions(ctx, meeting.ID, transcript)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	fmt.Println(cli.RenderDetectionSummary(stats))

	if stats.Detected > 0 {
		items, listErr := store.GetActionItems(ctx, service.ActionItemFilter{MeetingID: meeting.ID})
		if listErr != nil {
			return fmt.Errorf("failed to load detected items: %w", listErr)
		}
		fmt.Println()
		fmt.Print(cli.RenderActionItems(items))
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Run `pulse review --meeting %s` to adjust.", meeting.ID)))
	}

	return nil
}

func readTranscript(args []string) (text, source string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", readErr)
		}
		return string(data), fmt.Sprintf("Meeting %s", time.Now().Format("2006-01-02 15:04")), nil
	}

	data, readErr := os.ReadFile(args[0]) // #nosec G304 -- user-supplied path is the point
	if readErr != nil {
		return "", "", fmt.Errorf("failed to read transcript: %w", readErr)
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	return string(data), name, nil
}
