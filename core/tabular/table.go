package tabular

// Row is a single record keyed by the table's original column names.
type Row map[string]string

// Table is a parsed tabular dataset. Columns preserves the source column
// order; Rows hold raw cell text exactly as loaded.
type Table struct {
	Columns []string
	Rows    []Row
}

// Get returns the cell for the given source column, or "" if absent.
func (r Row) Get(column string) string {
	return r[column]
}
