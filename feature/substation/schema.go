package substation

import "substation-reconciler/core/reconcile"

// Canonical column names of the authoritative sheet. The matcher and
// comparator operate against these.
const (
	// ColOID is the unique object identifier of a component record.
	ColOID = "OID"
	// ColStation is the station name.
	ColStation = "Station Name"
	// ColDescription is the component description.
	ColDescription = "Component Description"
	// ColDetail is the additional information column.
	ColDetail = "Additional Information"
)

// Renames maps the column names of the CSV exports onto the authoritative
// sheet's names. The exports label ratings as AMP and capitalize kV
// differently; everything else already matches.
func Renames() map[string]string {
	return map[string]string{
		"AMP Rating":   "High Rating",
		"AMP Rating.1": "High Rating.1",
		"AMP Rating.2": "High Rating.2",
		"AMP Rating.3": "High Rating.3",
		"High KV":      "High kV",
		"Low KV":       "Low kV",
		"Tertiary KV":  "Tertiary kV",
	}
}

// AuthorityColumns lists the columns only the authoritative sheet carries.
// Local records are seeded with nulls for these before comparison.
func AuthorityColumns() []string {
	return []string{
		"Line Number",
		"Low Rating",
		"Low Rating.1",
		"Low Rating.2",
		"Low Rating.3",
	}
}

// SchemaConfig bundles the rename table and authoritative-only columns for
// the normalizer.
func SchemaConfig() reconcile.Schema {
	return reconcile.Schema{
		Renames:       Renames(),
		AuthorityOnly: AuthorityColumns(),
	}
}

// MatchKeys names the matcher's fallback key columns.
func MatchKeys() reconcile.Keys {
	return reconcile.Keys{
		Identity:    ColOID,
		Station:     ColStation,
		Description: ColDescription,
		Detail:      ColDetail,
	}
}
