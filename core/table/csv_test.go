package table

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "OID,Station Name,Rating\n1,A,600\n2,,800\n"

	tab, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"OID", "Station Name", "Rating"}, tab.Columns())
	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, String("600"), tab.Value(0, "Rating"))

	// Empty cells load as null.
	assert.True(t, tab.Value(1, "Station Name").IsNull())
}

func TestReadCSV_RaggedRows(t *testing.T) {
	input := "OID,Station Name,Rating\n1,A\n"

	tab, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	// Short rows are padded with nulls instead of failing.
	assert.Equal(t, 1, tab.Len())
	assert.True(t, tab.Value(0, "Rating").IsNull())
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteCSV_NullsAsEmptyCells(t *testing.T) {
	tab := New("OID", "Station Name")
	tab.Append(Record{"OID": String("1")})

	var buf bytes.Buffer
	require.NoError(t, tab.WriteCSV(&buf))

	assert.Equal(t, "OID,Station Name\n1,\n", buf.String())
}

func TestCSV_RoundTrip(t *testing.T) {
	tab := New("OID", "Station Name", "Rating")
	tab.Append(Record{"OID": String("1"), "Station Name": String("A"), "Rating": String("600")})
	tab.Append(Record{"OID": String("2"), "Rating": String("800")})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.SaveCSV(path))

	loaded, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, tab.Columns(), loaded.Columns())
	assert.Equal(t, tab.Len(), loaded.Len())
	assert.Equal(t, String("A"), loaded.Value(0, "Station Name"))
	assert.True(t, loaded.Value(1, "Station Name").IsNull())
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
