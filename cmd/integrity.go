package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gear-tracker/core/config"
	"gear-tracker/core/database"
	"gear-tracker/core/logger"
	"gear-tracker/core/storage"
	"gear-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	fixFlag        bool
	jsonFlag       bool
	checkCharacter string
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the capture store and history database",
	Long:  `Checks that the capture bucket exists and that the history database schema matches the expected models.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the capture bucket",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the history database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

// capturesCmd represents the integrity captures command
var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "Scan the captures of a character",
	Long:  `Downloads and decodes every capture of a character. Outputs metrics by default or a detailed JSON file with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		svc, logg, err := integrityService(false)
		if err != nil {
			return err
		}

		logg.Info("Scanning captures (this might take a while)...", zap.String("character", checkCharacter))
		report, err := svc.CheckCaptures(ctx, checkCharacter)
		if err != nil {
			return fmt.Errorf("capture integrity check failed: %w", err)
		}

		if jsonFlag {
			filename := fmt.Sprintf("integrity_captures_%s_%d.json", checkCharacter, time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("issues", len(report.Issues)))
		}

		fmt.Println("\n=== Capture Integrity Metrics ===")
		fmt.Printf("Objects Checked: %d\n", report.Checked)
		fmt.Printf("Equipment: %d\n", report.Equipment)
		fmt.Printf("Ring Exchange: %d\n", report.RingExchange)
		fmt.Printf("Issues: %d\n", len(report.Issues))
		fmt.Printf("Execution Time: %s\n", report.ExecutionTime)

		for _, issue := range report.Issues {
			logg.Warn("Capture issue",
				zap.String("key", issue.Key),
				zap.String("problem", issue.Problem),
				zap.String("detail", issue.Detail))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCmd, schemaCmd, capturesCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
	capturesCmd.Flags().StringVar(&checkCharacter, "character", "", "Character id (ocid)")
	capturesCmd.Flags().BoolVar(&jsonFlag, "json", false, "Save a detailed JSON report")
	_ = capturesCmd.MarkFlagRequired("character")
}

// integrityService builds the integrity service from the configuration.
// The database is optional unless requireDB is set.
func integrityService(requireDB bool) (*integrity.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	return integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.Region, db, logg), logg, nil
}

func runIntegrityChecks(ctx context.Context, runStorage, runSchema bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, logg, err := integrityService(runSchema && !runStorage)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if runStorage {
		logg.Info("Checking capture bucket...")
		report, err := svc.CheckStorage(ctx, fixFlag)
		if err != nil {
			logg.Fatal("Storage check failed", zap.Error(err))
		}

		switch {
		case report.Created:
			logg.Info("Capture bucket created.", zap.String("bucket", report.Bucket))
		case report.Exists:
			logg.Info("Capture bucket is intact.",
				zap.String("bucket", report.Bucket),
				zap.Int("characters", len(report.Characters)))
		default:
			logg.Warn("Capture bucket is missing. Run 'integrity storage --fix' to create it.", zap.String("bucket", report.Bucket))
		}
	}

	if runSchema {
		logg.Info("Checking history schema integrity...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
			return
		}
		if report.Matched {
			logg.Info("History schema matches expected definition.", zap.String("driver", report.Driver))
			return
		}

		logg.Warn("History schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
}
