package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"substation-reconciler/core/table"
)

func testKeys() Keys {
	return Keys{
		Identity:    "OID",
		Station:     "Station Name",
		Description: "Component Description",
		Detail:      "Additional Information",
	}
}

func authorityRow(oid, station, desc, detail string) table.Record {
	rec := table.Record{}
	if oid != "" {
		rec["OID"] = table.String(oid)
	}
	if station != "" {
		rec["Station Name"] = table.String(station)
	}
	if desc != "" {
		rec["Component Description"] = table.String(desc)
	}
	if detail != "" {
		rec["Additional Information"] = table.String(detail)
	}
	return rec
}

func testAuthority() *table.Table {
	t := table.New("OID", "Station Name", "Component Description", "Additional Information")
	t.Append(authorityRow("10", "Alpha", "Breaker", ""))
	t.Append(authorityRow("11", "Alpha", "Transformer", "Bank 1"))
	t.Append(authorityRow("12", "Alpha", "Transformer", "Bank 2"))
	t.Append(authorityRow("13", "Beta", "Breaker", ""))
	return t
}

func TestMatcher_IdentityMatch(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	got, ok := m.Match(table.Record{"OID": table.String("13")})
	require.True(t, ok)
	assert.Equal(t, table.String("Beta"), got.Get("Station Name"))
}

func TestMatcher_IdentityMissFallsThroughToNaturalKey(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	// OID 99 is unknown, but station + description identify a row.
	got, ok := m.Match(table.Record{
		"OID":                   table.String("99"),
		"Station Name":          table.String("Beta"),
		"Component Description": table.String("Breaker"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("13"), got.Get("OID"))
}

func TestMatcher_NullIdentityUsesNaturalKey(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	got, ok := m.Match(table.Record{
		"Station Name":          table.String("Alpha"),
		"Component Description": table.String("Breaker"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("10"), got.Get("OID"))
}

func TestMatcher_DetailSubFilter(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	got, ok := m.Match(table.Record{
		"Station Name":           table.String("Alpha"),
		"Component Description":  table.String("Transformer"),
		"Additional Information": table.String("Bank 2"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("12"), got.Get("OID"))
}

func TestMatcher_DetailMissFallsBackToFirstDescriptionMatch(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	// Detail matches nothing, so the first description match wins.
	got, ok := m.Match(table.Record{
		"Station Name":           table.String("Alpha"),
		"Component Description":  table.String("Transformer"),
		"Additional Information": table.String("Bank 9"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("11"), got.Get("OID"))
}

func TestMatcher_NullDetailTakesFirstDescriptionMatch(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	got, ok := m.Match(table.Record{
		"Station Name":          table.String("Alpha"),
		"Component Description": table.String("Transformer"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("11"), got.Get("OID"))
}

func TestMatcher_AmbiguityResolvedBySourceOrder(t *testing.T) {
	authority := table.New("OID", "Station Name", "Component Description")
	authority.Append(authorityRow("1", "Alpha", "Breaker", ""))
	authority.Append(authorityRow("2", "Alpha", "Breaker", ""))
	m := NewMatcher(authority, testKeys())

	got, ok := m.Match(table.Record{
		"Station Name":          table.String("Alpha"),
		"Component Description": table.String("Breaker"),
	})
	require.True(t, ok)
	assert.Equal(t, table.String("1"), got.Get("OID"))
}

func TestMatcher_NoMatchIsNotAnError(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())

	_, ok := m.Match(table.Record{
		"OID":          table.String("99"),
		"Station Name": table.String("Gamma"),
	})
	assert.False(t, ok)
}

func TestMatcher_NullKeysNeverMatchNulls(t *testing.T) {
	authority := table.New("OID", "Station Name", "Component Description")
	// Authority row with a null station must not be matched by a record
	// with a null station.
	authority.Append(table.Record{"OID": table.String("1")})
	m := NewMatcher(authority, testKeys())

	_, ok := m.Match(table.Record{})
	assert.False(t, ok)
}

func TestMatcher_Deterministic(t *testing.T) {
	m := NewMatcher(testAuthority(), testKeys())
	rec := table.Record{
		"Station Name":          table.String("Alpha"),
		"Component Description": table.String("Transformer"),
	}

	first, ok1 := m.Match(rec)
	second, ok2 := m.Match(rec)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
