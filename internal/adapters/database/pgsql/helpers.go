package pgsql

import "strings"

// qualifyColumns prefixes every column in a comma-separated list with a
// table alias, for queries that join other tables.
func qualifyColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, col := range parts {
		parts[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(parts, ", ")
}
