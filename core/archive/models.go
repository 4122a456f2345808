package archive

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Run is one completed reconciliation pass.
type Run struct {
	// ID is the run identifier (a UUID assigned by the pipeline).
	ID string `gorm:"column:id;primaryKey;size:36"`
	// StartedAt is when the pass began loading inputs.
	StartedAt time.Time `gorm:"column:started_at"`
	// FinishedAt is when the last output file was written.
	FinishedAt time.Time `gorm:"column:finished_at"`
	// Sub1Rows and Sub2Rows are the loaded row counts per source.
	Sub1Rows int `gorm:"column:sub1_rows"`
	Sub2Rows int `gorm:"column:sub2_rows"`
	// MergedRows is the row count after merge and deduplication.
	MergedRows int `gorm:"column:merged_rows"`
	// DuplicatesRemoved is the number of duplicate identities dropped.
	DuplicatesRemoved int `gorm:"column:duplicates_removed"`
	// Mismatched, Unmatched and FieldChanges summarize the pass outcome.
	Mismatched   int `gorm:"column:mismatched"`
	Unmatched    int `gorm:"column:unmatched"`
	FieldChanges int `gorm:"column:field_changes"`
}

// TableName overrides the table name for Run.
func (Run) TableName() string {
	return "runs"
}

// Change is one archived field overwrite.
type Change struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID links the change to its run.
	RunID string `gorm:"column:run_id;index;size:36"`
	// OID is the identity of the updated record, empty when it was null.
	OID string `gorm:"column:oid"`
	// ColumnName is the updated column.
	ColumnName string `gorm:"column:column_name"`
	// OldValue and NewValue are the rendered cell values around the
	// overwrite; nulls render as empty strings.
	OldValue string `gorm:"column:old_value"`
	NewValue string `gorm:"column:new_value"`
}

// TableName overrides the table name for Change.
func (Change) TableName() string {
	return "changes"
}

// Migrate creates or updates the archive schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Run{}, &Change{}); err != nil {
		return fmt.Errorf("failed to migrate archive schema: %w", err)
	}
	return nil
}

// SaveRun persists a run and its change entries in a single transaction.
func SaveRun(ctx context.Context, db *gorm.DB, run Run, changes []Change) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		for i := range changes {
			changes[i].RunID = run.ID
		}
		return tx.CreateInBatches(changes, 500).Error
	})
	if err != nil {
		return fmt.Errorf("failed to archive run %s: %w", run.ID, err)
	}
	return nil
}
