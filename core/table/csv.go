package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV parses CSV content into a table. The first row is the header and
// becomes the column order. Empty cells load as null; rows shorter than the
// header are padded with nulls.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	// Source exports occasionally carry ragged rows; pad instead of failing.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	t := New(header...)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

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

// LoadCSV reads a CSV file from disk.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes the table as CSV: header row first, then every row in
// order. Nulls are written as empty cells.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	fields := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			fields[i] = row.Get(col).Render()
		}
		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the table to a CSV file, replacing any existing file.
func (t *Table) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
