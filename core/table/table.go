package table

// Record maps column names to cell values. Reading a column that is not
// present yields null, so records from sources with different column sets
// can live in the same table.
type Record map[string]Value

// Get returns the value for a column, or null if the record does not
// carry the column at all.
func (r Record) Get(column string) Value {
	return r[column]
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of records sharing a column list.
// Both column order and row order are stable: rows keep their insertion
// order and columns keep the order they were declared or first seen in.
type Table struct {
	columns []string
	rows    []Record
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{columns: make([]string, len(columns))}
	copy(t.columns, columns)
	return t
}

// Columns returns the column names in order. The returned slice is shared;
// callers must not modify it.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the record at index i. The record is live: writes through it
// are visible in the table.
func (t *Table) Row(i int) Record {
	return t.rows[i]
}

// Append adds a record as the last row.
func (t *Table) Append(rec Record) {
	t.rows = append(t.rows, rec)
}

// Value returns the cell at row i, column name. Missing columns read as null.
func (t *Table) Value(i int, column string) Value {
	return t.rows[i].Get(column)
}

// Set writes the cell at row i, column name.
func (t *Table) Set(i int, column string, v Value) {
	t.rows[i][column] = v
}

// HasColumn reports whether the column is declared on the table.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn declares a new column at the end of the column order. Existing
// rows read as null in it until written. Adding an already-declared column
// is a no-op.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.columns = append(t.columns, name)
}

// Fill writes the same value into a column for every row, declaring the
// column first if needed.
func (t *Table) Fill(column string, v Value) {
	t.AddColumn(column)
	for _, row := range t.rows {
		row[column] = v
	}
}

// RenameColumn renames a column, moving cell values along with it.
// Renaming a column that is not declared is a no-op and returns false.
func (t *Table) RenameColumn(old, canonical string) bool {
	renamed := false
	for i, c := range t.columns {
		if c == old {
			t.columns[i] = canonical
			renamed = true
		}
	}
	if !renamed {
		return false
	}
	for _, row := range t.rows {
		if v, ok := row[old]; ok {
			row[canonical] = v
			delete(row, old)
		}
	}
	return true
}

// Clone returns a deep copy of the table. Mutating the copy never affects
// the original.
func (t *Table) Clone() *Table {
	out := New(t.columns...)
	out.rows = make([]Record, 0, len(t.rows))
	for _, row := range t.rows {
		out.rows = append(out.rows, row.Clone())
	}
	return out
}

// Concat appends the rows of b after the rows of a in a new table.
// The column order is a's columns followed by any columns only b declares.
// Cells for columns a row's source never carried read as null.
func Concat(a, b *Table) *Table {
	out := a.Clone()
	for _, c := range b.columns {
		out.AddColumn(c)
	}
	for _, row := range b.rows {
		out.rows = append(out.rows, row.Clone())
	}
	return out
}
