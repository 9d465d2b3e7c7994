// Package schema maps arbitrary input column names onto the canonical field
// schemas of the two analysis datasets and builds typed records from raw rows.
//
// Spreadsheet exports rarely agree on column naming ("Part No", "part_number",
// "Material Code"...). Each canonical field declares a prioritized alias list;
// column names are lower-cased, trimmed and have runs of whitespace and
// hyphens collapsed to underscores before comparison. The first alias that
// matches wins; there is no fuzzy matching.
//
// A table missing a required field resolves to a SchemaError and produces
// zero records. Individual rows with an empty or null-sentinel part
// identifier are dropped and counted, never raised as errors.
package schema
