package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"gear-tracker/core/config"
	"gear-tracker/core/database"
	"gear-tracker/core/logger"
	"gear-tracker/core/reconcile"
	"gear-tracker/core/storage"
	"gear-tracker/core/utils"
	"gear-tracker/feature/capture"
	"gear-tracker/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayCharacter string
	replayName      string
	replayFrom      string
	replayTo        string
	replayDryRun    bool
	replayRebuild   bool
	yesConfirm      bool
)

// replayCmd reconciles a window of captures and records the changes found.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay daily captures into the change history",
	Long: `Replay reconciles every day of a window against the captures before it
and records the resulting equipment changes.

The plan is always printed first. Recording requires confirmation.

Examples:
  # Print the plan only
  replay --character ocid --from 2024-03-01 --to 2024-03-31 --dry-run

  # Record with interactive confirmation
  replay --character ocid --from 2024-03-01 --to 2024-03-31

  # Clear the window and record again without prompting
  replay --character ocid --from 2024-03-01 --to 2024-03-31 --rebuild --yes`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayCharacter, "character", "", "Character id (ocid)")
	replayCmd.Flags().StringVar(&replayName, "name", "", "Character display name")
	replayCmd.Flags().StringVar(&replayFrom, "from", "", "First day of the window (YYYY-MM-DD)")
	replayCmd.Flags().StringVar(&replayTo, "to", "", "Last day of the window (YYYY-MM-DD)")
	replayCmd.Flags().BoolVar(&replayDryRun, "dry-run", false, "Print the plan without recording")
	replayCmd.Flags().BoolVar(&replayRebuild, "rebuild", false, "Delete recorded changes of the window before recording")
	replayCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm recording (non-interactive)")
	_ = replayCmd.MarkFlagRequired("character")
	_ = replayCmd.MarkFlagRequired("from")
	_ = replayCmd.MarkFlagRequired("to")

	RootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	opts, err := cfg.Replay.Options(l)
	if err != nil {
		return err
	}

	store := history.NewStore(db)
	svc := history.NewService(store, capture.NewStore(client, cfg.Storage.Bucket), opts, l)

	req := history.ReplayRequest{
		Character: reconcile.Character{ID: replayCharacter, Name: replayName},
		From:      replayFrom,
		To:        replayTo,
		DryRun:    replayDryRun,
		Rebuild:   replayRebuild,
	}

	l.Info("Planning replay", zap.String("character", req.Character.ID))
	plan, err := svc.Plan(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to plan replay: %w", err)
	}

	printReplayReport(l, plan)

	if replayDryRun {
		l.Info("Dry-run mode: No changes were recorded.")
		return nil
	}
	if len(plan.Events) == 0 && !replayRebuild {
		l.Info("No changes to record.")
		return nil
	}

	if !confirmRecording() {
		l.Warn("Operation cancelled by user. No changes were recorded.")
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to prepare history store: %w", err)
	}

	result, err := svc.Apply(ctx, req, plan)
	if err != nil {
		return fmt.Errorf("failed to record changes: %w", err)
	}

	l.Info("Replay recorded",
		zap.Int("deleted", result.Deleted),
		zap.Int("recorded", result.Recorded),
		zap.Int("already_recorded", len(plan.Events)-result.Recorded),
	)
	return nil
}

// printReplayReport prints the plan summary and a sample of its events.
func printReplayReport(l *zap.Logger, plan *reconcile.ReplayPlan) {
	s := plan.Summary

	l.Info("Replay report",
		zap.String("from", plan.From),
		zap.String("to", plan.To),
		zap.Int("seeded_days", s.SeededDays),
		zap.Int("days", s.Days),
		zap.Int("days_with_data", s.DaysWithData),
		zap.Strings("gaps", s.Gaps),
		zap.Int("new_items", s.NewItems),
		zap.Int("replacements", s.Replacements),
		zap.Int("option_changes", s.OptionChanges),
	)

	maxShow := min(10, len(plan.Events))
	for _, ev := range plan.Events[:maxShow] {
		l.Info("Change",
			zap.String("date", utils.FormatDate(ev.Date)),
			zap.String("slot", ev.Slot),
			zap.String("kind", string(ev.Kind)),
			zap.String("summary", ev.Summary),
		)
	}
	if len(plan.Events) > maxShow {
		l.Info("Additional changes not shown", zap.Int("count", len(plan.Events)-maxShow))
	}
}

// confirmRecording prompts the user for confirmation or uses --yes flag.
func confirmRecording() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to record these changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
