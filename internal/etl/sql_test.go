package etl

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestLookupDialect(t *testing.T) {
	for _, driver := range []string{"sqlserver", "postgres", "mysql", "sqlite"} {
		d, err := LookupDialect(driver)
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Driver)
	}

	_, err := LookupDialect("oracle")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestInsertQueryPerDialect(t *testing.T) {
	table := models.Table{Name: "invMetaTypes", Columns: []string{"typeID", "parentTypeID"}}

	tests := []struct {
		driver string
		want   string
	}{
		{"sqlserver", "INSERT INTO [invMetaTypes] ([typeID], [parentTypeID]) VALUES (@p1, @p2)"},
		{"postgres", `INSERT INTO "invMetaTypes" ("typeID", "parentTypeID") VALUES ($1, $2)`},
		{"mysql", "INSERT INTO `invMetaTypes` (`typeID`, `parentTypeID`) VALUES (?, ?)"},
		{"sqlite", `INSERT INTO "invMetaTypes" ("typeID", "parentTypeID") VALUES (?, ?)`},
	}
	for _, tt := range tests {
		sink, err := NewSQLSink(nil, tt.driver)
		require.NoError(t, err)
		assert.Equal(t, tt.want, sink.insertQuery(table), tt.driver)
	}
}

func TestCreateTableSQLServer(t *testing.T) {
	d, err := LookupDialect("sqlserver")
	require.NoError(t, err)
	assert.Equal(t,
		"IF OBJECT_ID(N'invFlags', N'U') IS NULL CREATE TABLE [invFlags] ([flagID] NVARCHAR(MAX) NULL, [flagName] NVARCHAR(MAX) NULL)",
		d.CreateTable("invFlags", []string{"flagID", "flagName"}))
}

func TestSQLSinkLoadsSQLite(t *testing.T) {
	logger.SetQuiet(true)
	defer logger.SetQuiet(false)

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "sde.db"))
	require.NoError(t, err)
	defer db.Close()

	sink, err := NewSQLSink(db, "sqlite")
	require.NoError(t, err)

	first := []models.Row{
		{"groupID": json.Number("18"), "groupName": "Mineral", "published": 1},
		{"groupID": json.Number("25"), "groupName": "Frigate"},
	}
	require.NoError(t, sink.Write(testTable, first))

	// A second load replaces the contents
	second := append(first, models.Row{"groupID": json.Number("26"), "groupName": "Cruiser", "published": 0})
	require.NoError(t, sink.Write(testTable, second))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "invGroups"`).Scan(&count))
	assert.Equal(t, 3, count)

	var published sql.NullString
	require.NoError(t, db.QueryRow(`SELECT "published" FROM "invGroups" WHERE "groupID" = '25'`).Scan(&published))
	assert.False(t, published.Valid)

	var name string
	require.NoError(t, db.QueryRow(`SELECT "groupName" FROM "invGroups" WHERE "groupID" = '18'`).Scan(&name))
	assert.Equal(t, "Mineral", name)
}
