//go:build unit

package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Guards the raw SQL against drifting from the DDL: every column the
// repository selects must exist on the resources table.
func TestResourceColumnsMatchSchema(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_initial_schema.sql"))
	require.NoError(t, err)

	ddl := string(schema)
	start := strings.Index(ddl, "CREATE TABLE resources (")
	require.NotEqual(t, -1, start, "resources table missing from schema")
	end := strings.Index(ddl[start:], ";")
	require.NotEqual(t, -1, end)
	table := ddl[start : start+end]

	declared := make(map[string]bool)
	for line := range strings.Lines(table) {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		declared[fields[0]] = true
	}

	for _, column := range strings.Split(resourceColumns, ",") {
		column = strings.TrimSpace(column)
		require.True(t, declared[column],
			"repository selects column %q which does not exist in the resources table", column)
	}
}
