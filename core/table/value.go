package table

import "strings"

// Value is a single cell: a string payload plus a validity flag.
// The zero value is null. Using an explicit flag instead of implicit map
// absence keeps the null-handling rules of the comparator auditable.
type Value struct {
	// Str is the raw string payload. Meaningless when Valid is false.
	Str string
	// Valid reports whether the cell holds a value at all.
	Valid bool
}

// Null is the absent value.
var Null = Value{}

// String wraps a string payload in a valid Value.
func String(s string) Value {
	return Value{Str: s, Valid: true}
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool {
	return !v.Valid
}

// Render returns the payload for output purposes. Nulls render as the
// empty string, matching how they round-trip through CSV.
func (v Value) Render() string {
	if !v.Valid {
		return ""
	}
	return v.Str
}

// Equal reports exact equality: two nulls are equal, a null never equals
// a non-null, and payloads are compared byte-for-byte.
func (v Value) Equal(other Value) bool {
	if !v.Valid || !other.Valid {
		return v.Valid == other.Valid
	}
	return v.Str == other.Str
}

// EqualTrimmed compares like Equal but trims surrounding whitespace from
// both payloads first. This is the comparator's equality: `" 600"` and
// `"600"` are the same reading, but `1` and `1.0` are not.
func (v Value) EqualTrimmed(other Value) bool {
	if !v.Valid || !other.Valid {
		return v.Valid == other.Valid
	}
	return strings.TrimSpace(v.Str) == strings.TrimSpace(other.Str)
}
