package substation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"substation-reconciler/core/archive"
	"substation-reconciler/core/config"
	"substation-reconciler/core/logger"
	"substation-reconciler/core/reconcile"
	"substation-reconciler/core/storage"
	"substation-reconciler/core/table"
)

// Options controls optional pipeline behavior.
type Options struct {
	// DryRun runs the full pass but writes no files, archives nothing
	// and publishes nothing.
	DryRun bool
	// Archive persists the run and its change log to the archive database.
	Archive bool
	// Publish uploads the output files to the report bucket.
	Publish bool
}

// Report summarizes one completed pipeline run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time

	Sub1Rows          int
	Sub2Rows          int
	MergedRows        int
	DuplicatesRemoved int

	Annotate reconcile.Summary
	Apply    reconcile.Summary

	// Outputs lists the files written, in write order. Empty on dry runs.
	Outputs []string
}

// Pipeline drives the full batch pass: load, merge, deduplicate, normalize,
// annotate, apply, and write the four output files.
type Pipeline struct {
	cfg   *config.Config
	log   *zap.Logger
	opts  Options
	db    *gorm.DB
	store storage.Client
}

// NewPipeline creates a pipeline over the given configuration.
func NewPipeline(cfg *config.Config, log *zap.Logger, opts Options) *Pipeline {
	return &Pipeline{cfg: cfg, log: log, opts: opts}
}

// SetArchive provides the run-history database used when Options.Archive
// is set.
func (p *Pipeline) SetArchive(db *gorm.DB) {
	p.db = db
}

// SetStorage provides the report bucket client used when Options.Publish
// is set.
func (p *Pipeline) SetStorage(client storage.Client) {
	p.store = client
}

// Run executes the batch pass. A load failure aborts before any output is
// written; once the inputs are in memory the pass is deterministic and the
// outputs are written at the end.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	l := logger.WithRun(p.log, report.RunID)

	// Step 1: load all inputs up front. Any failure here is fatal.
	sub1, err := table.LoadCSV(p.cfg.Files.Sub1)
	if err != nil {
		return nil, fmt.Errorf("failed to load SUB1: %w", err)
	}
	l.Info("Loaded SUB1", zap.String("path", p.cfg.Files.Sub1), zap.Int("rows", sub1.Len()))

	sub2, err := table.LoadCSV(p.cfg.Files.Sub2)
	if err != nil {
		return nil, fmt.Errorf("failed to load SUB2: %w", err)
	}
	l.Info("Loaded SUB2", zap.String("path", p.cfg.Files.Sub2), zap.Int("rows", sub2.Len()))

	authority, err := table.LoadSheet(p.cfg.Files.Workbook, p.cfg.Files.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS workbook: %w", err)
	}
	l.Info("Loaded TLS sheet",
		zap.String("path", p.cfg.Files.Workbook),
		zap.String("sheet", p.cfg.Files.Sheet),
		zap.Int("rows", authority.Len()),
	)

	report.Sub1Rows = sub1.Len()
	report.Sub2Rows = sub2.Len()

	// Step 2: merge, deduplicate by OID, normalize to the authoritative
	// column superset.
	merged := table.Concat(sub1, sub2)
	merged, removed := reconcile.Deduplicate(merged, ColOID)
	report.MergedRows = merged.Len()
	report.DuplicatesRemoved = removed
	l.Info("Merged CSV exports",
		zap.Int("rows", merged.Len()),
		zap.Int("duplicates_removed", removed),
	)

	normalized := reconcile.NewNormalizer(SchemaConfig()).Apply(merged)

	// Step 3: annotate match status, then apply authoritative values.
	rec := reconcile.NewReconciler(authority, MatchKeys(), l)

	annotated, annotateSummary := rec.Annotate(normalized)
	report.Annotate = annotateSummary

	updated, entries, applySummary := rec.Apply(annotated)
	report.Apply = applySummary

	// Step 4: write the outputs.
	if p.opts.DryRun {
		l.Info("Dry-run mode: no files written")
	} else {
		if err := p.writeOutputs(report, normalized, annotated, updated, entries); err != nil {
			return nil, err
		}
	}

	report.FinishedAt = time.Now()

	// Step 5: optional archive and publish.
	if p.opts.Archive && !p.opts.DryRun {
		if err := p.archiveRun(ctx, report, entries); err != nil {
			return nil, err
		}
		l.Info("Archived run history")
	}

	if p.opts.Publish && !p.opts.DryRun {
		if err := storage.Publish(ctx, p.store, p.cfg.Storage.Bucket, report.RunID, report.Outputs, l); err != nil {
			return nil, fmt.Errorf("failed to publish reports: %w", err)
		}
	}

	return report, nil
}

// Output file paths, derived from the configured base name the way the
// original export pipeline named them.
func (p *Pipeline) mergedPath() string {
	return filepath.Join(p.cfg.Files.OutputDir, p.cfg.Files.BaseName+".csv")
}

func (p *Pipeline) highlightedPath() string {
	return filepath.Join(p.cfg.Files.OutputDir, p.cfg.Files.BaseName+"_highlighted.csv")
}

func (p *Pipeline) updatedPath() string {
	return filepath.Join(p.cfg.Files.OutputDir, p.cfg.Files.BaseName+"_updated.csv")
}

func (p *Pipeline) summaryPath() string {
	return filepath.Join(p.cfg.Files.OutputDir, p.cfg.Files.BaseName+"_summary_report.csv")
}

func (p *Pipeline) writeOutputs(report *Report, normalized, annotated, updated *table.Table, entries []reconcile.ChangeEntry) error {
	if err := os.MkdirAll(p.cfg.Files.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		path string
		t    *table.Table
	}{
		{p.mergedPath(), normalized},
		{p.highlightedPath(), annotated},
		{p.updatedPath(), updated},
		{p.summaryPath(), ChangeLogTable(entries)},
	}

	for _, out := range outputs {
		if err := out.t.SaveCSV(out.path); err != nil {
			return err
		}
		report.Outputs = append(report.Outputs, out.path)
		p.log.Info("Saved output", zap.String("path", out.path))
	}

	return nil
}

// ChangeLogTable renders change entries as the summary report table. With
// no entries it still carries the header columns.
func ChangeLogTable(entries []reconcile.ChangeEntry) *table.Table {
	t := table.New(ColOID, "Column(s) updated", "Old Value", "New Value")
	for _, e := range entries {
		t.Append(table.Record{
			ColOID:              e.OID,
			"Column(s) updated": table.String(e.Column),
			"Old Value":         e.Old,
			"New Value":         e.New,
		})
	}
	return t
}

func (p *Pipeline) archiveRun(ctx context.Context, report *Report, entries []reconcile.ChangeEntry) error {
	if p.db == nil {
		return fmt.Errorf("archive requested but no archive database configured")
	}

	if err := archive.Migrate(p.db); err != nil {
		return err
	}

	run := archive.Run{
		ID:                report.RunID,
		StartedAt:         report.StartedAt,
		FinishedAt:        report.FinishedAt,
		Sub1Rows:          report.Sub1Rows,
		Sub2Rows:          report.Sub2Rows,
		MergedRows:        report.MergedRows,
		DuplicatesRemoved: report.DuplicatesRemoved,
		Mismatched:        report.Annotate.Mismatched,
		Unmatched:         report.Annotate.Unmatched,
		FieldChanges:      report.Apply.FieldChanges,
	}

	changes := make([]archive.Change, 0, len(entries))
	for _, e := range entries {
		changes = append(changes, archive.Change{
			OID:        e.OID.Render(),
			ColumnName: e.Column,
			OldValue:   e.Old.Render(),
			NewValue:   e.New.Render(),
		})
	}

	return archive.SaveRun(ctx, p.db, run, changes)
}
