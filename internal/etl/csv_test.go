package etl

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = models.Table{
	Name:    "invGroups",
	Columns: []string{"groupID", "groupName", "published"},
}

func TestCSVSinkWritesSchemaOrder(t *testing.T) {
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	dir := filepath.Join(t.TempDir(), "nested", "csv")
	sink, err := NewCSVSink(dir)
	require.NoError(t, err)

	rows := []models.Row{
		{"published": 1, "groupID": json.Number("18"), "groupName": "Mineral", "extra": "dropped"},
		{"groupID": json.Number("25"), "groupName": `Frigate, "T1"`},
	}
	require.NoError(t, sink.Write(testTable, rows))

	data, err := os.ReadFile(filepath.Join(dir, "invGroups.csv"))
	require.NoError(t, err)
	want := "groupID,groupName,published\r\n" +
		"18,Mineral,1\r\n" +
		"25,\"Frigate, \"\"T1\"\"\",\r\n"
	assert.Equal(t, want, string(data))
}

func TestCSVSinkEmptyTableHasHeader(t *testing.T) {
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	sink, err := NewCSVSink(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sink.Write(testTable, nil))

	data, err := os.ReadFile(sink.Path(testTable))
	require.NoError(t, err)
	assert.Equal(t, "groupID,groupName,published\r\n", string(data))
}

func TestCSVSinkOutputDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewCSVSink(file)
	assert.Error(t, err)
}

type recordingSink struct {
	tables []string
	err    error
}

func (r *recordingSink) Write(table models.Table, _ []models.Row) error {
	r.tables = append(r.tables, table.Name)
	return r.err
}

func TestMultiSinkStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	first := &recordingSink{err: boom}
	second := &recordingSink{}

	err := MultiSink{first, second}.Write(testTable, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"invGroups"}, first.tables)
	assert.Empty(t, second.tables)
}
