// Package coerce provides fail-soft numeric conversion for messy spreadsheet input.
// It converts loosely formatted textual values (thousands separators, currency
// glyphs, percent signs, accounting-style negatives) into numeric types without
// ever returning an error: any unparsable value collapses to zero. This is a
// deliberate contract for tolerating real-world inventory exports, not a bug.
package coerce
