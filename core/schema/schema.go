package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Field declares one canonical field of a dataset schema.
type Field struct {
	// Canonical is the engine-facing field name.
	Canonical string
	// Aliases are acceptable source column names in priority order,
	// compared after normalization.
	Aliases []string
	// Required marks fields without which the whole table is rejected.
	Required bool
}

// Schema is the canonical field set for one table type.
type Schema struct {
	// Name identifies the table type in error messages ("pfep", "inventory").
	Name string
	// Fields lists the canonical fields.
	Fields []Field
}

// Mapping resolves canonical field names to source column names. Fields with
// no matching source column are absent from the map.
type Mapping map[string]string

// SchemaError reports unresolvable required fields. The table's load is fatal;
// no partial record set is produced.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s table is missing required column(s): %s",
		e.Table, strings.Join(e.Missing, ", "))
}

var separatorRuns = regexp.MustCompile(`[\s\-]+`)

// NormalizeColumn canonicalizes a source column name for alias comparison:
// lower-case, trimmed, runs of whitespace and hyphens collapsed to a single
// underscore.
func NormalizeColumn(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return separatorRuns.ReplaceAllString(n, "_")
}

// Resolve maps the schema's canonical fields onto the given source columns.
// It fails with a *SchemaError naming every unresolved required field.
func (s Schema) Resolve(columns []string) (Mapping, error) {
	available := make(map[string]string, len(columns))
	for _, col := range columns {
		normalized := NormalizeColumn(col)
		// First occurrence wins for duplicate normalized names.
		if _, ok := available[normalized]; !ok {
			available[normalized] = col
		}
	}

	mapping := make(Mapping, len(s.Fields))
	var missing []string
	for _, field := range s.Fields {
		source, ok := findAlias(field.Aliases, available)
		if ok {
			mapping[field.Canonical] = source
		} else if field.Required {
			missing = append(missing, field.Canonical)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Table: s.Name, Missing: missing}
	}
	return mapping, nil
}

func findAlias(aliases []string, available map[string]string) (string, bool) {
	for _, alias := range aliases {
		if source, ok := available[alias]; ok {
			return source, true
		}
	}
	return "", false
}
