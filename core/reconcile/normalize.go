package reconcile

import "substation-reconciler/core/table"

// Normalizer aligns a local table with the authoritative column set.
// It is constructed from an explicit immutable Schema rather than package
// globals, so runs against different source layouts can coexist.
type Normalizer struct {
	schema Schema
}

// NewNormalizer creates a normalizer for the given schema. An empty or
// partial schema is valid: unmapped columns keep their local names.
func NewNormalizer(schema Schema) *Normalizer {
	return &Normalizer{schema: schema}
}

// Apply returns a new table with columns renamed per the schema and every
// authoritative-only column present (seeded with nulls where absent).
// Columns named in the rename table but missing from the input are skipped.
//
// Apply is idempotent: rename keys are local names, which no longer exist
// after the first pass, and seeding only adds columns that are missing.
func (n *Normalizer) Apply(t *table.Table) *table.Table {
	out := t.Clone()

	for _, col := range t.Columns() {
		if canonical, ok := n.schema.Renames[col]; ok {
			out.RenameColumn(col, canonical)
		}
	}

	for _, col := range n.schema.AuthorityOnly {
		out.AddColumn(col)
	}

	return out
}
