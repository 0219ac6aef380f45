package tables

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/BartekS5/sde2csv/pkg/utils"
	"github.com/stretchr/testify/require"
)

// sdeDir writes one .jsonl file per entry of files into a fresh directory.
func sdeDir(t *testing.T, files map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, lines := range files {
		data := strings.Join(lines, "\n") + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".jsonl"), []byte(data), 0o644))
	}
	return dir
}

func quiet(t *testing.T) {
	t.Helper()
	logger.SetQuiet(true)
	t.Cleanup(func() { logger.SetQuiet(false) })
}

// build runs a table build against JSONL fixtures.
func build(t *testing.T, fn buildFunc, files map[string][]string) []models.Row {
	t.Helper()
	quiet(t)
	rows, err := fn(etl.NewJSONLSource(sdeDir(t, files)), "en")
	require.NoError(t, err)
	return rows
}

// column extracts one column of rows rendered as CSV fields.
func column(rows []models.Row, col string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = utils.FormatValue(r[col])
	}
	return out
}

func readCSV(t *testing.T, dir, table string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, table+".csv"))
	require.NoError(t, err)
	return string(data)
}
