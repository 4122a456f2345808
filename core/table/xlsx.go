package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a named sheet from an xlsx workbook into a table.
// The first row is the header. Cells are read as their formatted string
// representation; empty cells load as null and short rows are padded with
// nulls to the header width.
func LoadSheet(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheet, path)
	}

	header := rows[0]
	t := New(header...)
	for _, fields := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) && fields[i] != "" {
				rec[col] = String(fields[i])
			}
		}
		t.Append(rec)
	}

	return t, nil
}
