package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"substation-reconciler/core/archive"
	"substation-reconciler/core/config"
	"substation-reconciler/core/logger"
	"substation-reconciler/core/storage"
	"substation-reconciler/feature/substation"
)

var (
	// Flags for the reconcile command
	archiveRun bool
	publishRun bool
	dryRun     bool
)

// reconcileCmd performs the full batch pass.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Merge the substation exports and reconcile them against the TLS sheet",
	Long: `Merge the SUB1 and SUB2 CSV exports, deduplicate by OID, normalize column
names to the authoritative schema, match every record against the TLS sheet,
and overwrite mismatched fields with the authoritative values.

Writes four files to the output directory: the merged collection, the same
collection annotated with per-record match status, the updated collection,
and the change-log summary report.

Examples:
  # Full pass, files only
  substation-reconciler reconcile

  # Full pass plus run history in the archive database
  substation-reconciler reconcile --archive

  # Full pass plus upload of the outputs to the report bucket
  substation-reconciler reconcile --publish

  # Compute everything, write nothing
  substation-reconciler reconcile --dry-run`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&archiveRun, "archive", false, "Persist the run and its change log to the archive database")
	reconcileCmd.Flags().BoolVar(&publishRun, "publish", false, "Upload the output files to the report bucket")
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the full pass but write no outputs")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting substation reconciliation")

	opts := substation.Options{
		DryRun:  dryRun,
		Archive: archiveRun,
		Publish: publishRun,
	}
	pipeline := substation.NewPipeline(cfg, l, opts)

	// Optional collaborators, connected only when their flag is set.
	if archiveRun && !dryRun {
		db, err := archive.Connect(cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to connect to archive database: %w", err)
		}
		pipeline.SetArchive(db)
	}

	if publishRun && !dryRun {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to report storage: %w", err)
		}
		pipeline.SetStorage(client)
	}

	report, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	printRunReport(l, report)
	return nil
}

// printRunReport prints a formatted run report using the logger.
func printRunReport(l *zap.Logger, report *substation.Report) {
	l.Info("Reconciliation report",
		zap.String("run_id", report.RunID),
		zap.Int("sub1_rows", report.Sub1Rows),
		zap.Int("sub2_rows", report.Sub2Rows),
		zap.Int("merged_rows", report.MergedRows),
		zap.Int("duplicates_removed", report.DuplicatesRemoved),
		zap.Int("mismatches", report.Annotate.Mismatched),
		zap.Int("not_in_tls", report.Annotate.Unmatched),
		zap.Int("matching", report.Annotate.Matched),
		zap.Int("updated_rows", report.Apply.UpdatedRows),
		zap.Int("field_changes", report.Apply.FieldChanges),
	)

	for _, path := range report.Outputs {
		l.Info("Output written", zap.String("path", path))
	}
}
