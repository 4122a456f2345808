package substation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"substation-reconciler/core/archive"
	"substation-reconciler/core/config"
	"substation-reconciler/core/table"
)

func writeFixtureCSV(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeFixtureWorkbook(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

// fixtureConfig writes SUB1/SUB2 exports and a TLS workbook into a temp
// directory and returns a config pointing at them.
//
// The data covers the three terminal states: OID 1 mismatches on High
// Rating and Line Number, OID 2 agrees on everything (and appears in both
// exports, so the merge drops one copy), OID 3 is not in the TLS sheet.
func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	header := "OID,Station Name,Component Description,Additional Information,AMP Rating,High KV\n"
	writeFixtureCSV(t, filepath.Join(dir, "SUB1.csv"),
		header+
			"1,A,Breaker,,600,115\n"+
			"2,A,Transformer,Bank 1,900,115\n")
	writeFixtureCSV(t, filepath.Join(dir, "SUB2.csv"),
		header+
			"2,A,Transformer,Bank 1,900,115\n"+
			"3,C,Switch,,500,115\n")

	writeFixtureWorkbook(t, filepath.Join(dir, "tls.xlsx"), "CAISO Update", [][]any{
		{"OID", "Station Name", "Component Description", "Additional Information", "High Rating", "High kV", "Line Number"},
		{"1", "A", "Breaker", "", "800", "115", "L-100"},
		{"2", "A", "Transformer", "Bank 1", "900", "115", ""},
	})

	return &config.Config{
		Files: config.Files{
			Sub1:      filepath.Join(dir, "SUB1.csv"),
			Sub2:      filepath.Join(dir, "SUB2.csv"),
			Workbook:  filepath.Join(dir, "tls.xlsx"),
			Sheet:     "CAISO Update",
			OutputDir: filepath.Join(dir, "Final"),
			BaseName:  "SUB1-SUB2 115kV",
		},
		Archive: archive.Config{
			Driver: "sqlite",
			Path:   filepath.Join(dir, "history.db"),
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	cfg := fixtureConfig(t)
	p := NewPipeline(cfg, zap.NewNop(), Options{})

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sub1Rows)
	assert.Equal(t, 2, report.Sub2Rows)
	assert.Equal(t, 3, report.MergedRows)
	assert.Equal(t, 1, report.DuplicatesRemoved)
	assert.Equal(t, 1, report.Annotate.Mismatched)
	assert.Equal(t, 1, report.Annotate.Matched)
	assert.Equal(t, 1, report.Annotate.Unmatched)
	assert.Equal(t, 1, report.Apply.UpdatedRows)
	assert.Equal(t, 2, report.Apply.FieldChanges)
	assert.Len(t, report.Outputs, 4)

	// Merged output: normalized column names, duplicate dropped.
	merged, err := table.LoadCSV(filepath.Join(cfg.Files.OutputDir, "SUB1-SUB2 115kV.csv"))
	require.NoError(t, err)
	assert.Equal(t, 3, merged.Len())
	assert.True(t, merged.HasColumn("High Rating"))
	assert.True(t, merged.HasColumn("Line Number"))
	assert.False(t, merged.HasColumn("AMP Rating"))

	// Highlighted output: one row per terminal state.
	highlighted, err := table.LoadCSV(filepath.Join(cfg.Files.OutputDir, "SUB1-SUB2 115kV_highlighted.csv"))
	require.NoError(t, err)
	assert.Equal(t, table.String("Yes"), highlighted.Value(0, "Mismatch"))
	assert.Equal(t, table.String("No"), highlighted.Value(1, "Mismatch"))
	assert.Equal(t, table.String("Not in TLS"), highlighted.Value(2, "Mismatch"))
	// Annotation does not overwrite data.
	assert.Equal(t, table.String("600"), highlighted.Value(0, "High Rating"))

	// Updated output: authoritative values applied, change summary set.
	updated, err := table.LoadCSV(filepath.Join(cfg.Files.OutputDir, "SUB1-SUB2 115kV_updated.csv"))
	require.NoError(t, err)
	assert.Equal(t, table.String("800"), updated.Value(0, "High Rating"))
	assert.Equal(t, table.String("L-100"), updated.Value(0, "Line Number"))
	assert.Equal(t, table.String("Updated: High Rating, Line Number"), updated.Value(0, "Type of Change"))
	// Unmatched row keeps its original values.
	assert.Equal(t, table.String("500"), updated.Value(2, "High Rating"))

	// Summary report: one row per field change, in pass order.
	summary, err := table.LoadCSV(filepath.Join(cfg.Files.OutputDir, "SUB1-SUB2 115kV_summary_report.csv"))
	require.NoError(t, err)
	require.Equal(t, 2, summary.Len())
	assert.Equal(t, table.String("1"), summary.Value(0, "OID"))
	assert.Equal(t, table.String("High Rating"), summary.Value(0, "Column(s) updated"))
	assert.Equal(t, table.String("600"), summary.Value(0, "Old Value"))
	assert.Equal(t, table.String("800"), summary.Value(0, "New Value"))
	assert.Equal(t, table.String("Line Number"), summary.Value(1, "Column(s) updated"))
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	cfg := fixtureConfig(t)
	p := NewPipeline(cfg, zap.NewNop(), Options{DryRun: true})

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Outputs)
	_, statErr := os.Stat(cfg.Files.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_LoadFailureAbortsBeforeOutput(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Files.Sub1 = filepath.Join(t.TempDir(), "missing.csv")
	p := NewPipeline(cfg, zap.NewNop(), Options{})

	_, err := p.Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Files.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_ArchivesRunHistory(t *testing.T) {
	cfg := fixtureConfig(t)

	db, err := archive.Connect(cfg.Archive)
	require.NoError(t, err)

	p := NewPipeline(cfg, zap.NewNop(), Options{Archive: true})
	p.SetArchive(db)

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	var run archive.Run
	require.NoError(t, db.First(&run, "id = ?", report.RunID).Error)
	assert.Equal(t, 3, run.MergedRows)
	assert.Equal(t, 2, run.FieldChanges)

	var count int64
	require.NoError(t, db.Model(&archive.Change{}).Where("run_id = ?", report.RunID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestChangeLogTable_EmptyStillHasHeader(t *testing.T) {
	tab := ChangeLogTable(nil)
	assert.Equal(t, []string{"OID", "Column(s) updated", "Old Value", "New Value"}, tab.Columns())
	assert.Equal(t, 0, tab.Len())
}
