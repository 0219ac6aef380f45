package etl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/BartekS5/sde2csv/pkg/utils"
)

var ErrUnsupportedDialect = errors.New("unsupported SQL driver")

// Dialect holds the SQL differences between the supported drivers.
type Dialect struct {
	Driver      string
	Placeholder func(n int) string
	Quote       func(ident string) string
	CreateTable func(table string, columns []string) string
}

var dialects = map[string]Dialect{
	"sqlserver": {
		Driver:      "sqlserver",
		Placeholder: func(n int) string { return fmt.Sprintf("@p%d", n) },
		Quote:       func(s string) string { return "[" + strings.ReplaceAll(s, "]", "]]") + "]" },
		CreateTable: func(table string, columns []string) string {
			cols := make([]string, len(columns))
			for i, c := range columns {
				cols[i] = "[" + c + "] NVARCHAR(MAX) NULL"
			}
			return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NULL CREATE TABLE [%s] (%s)",
				table, table, strings.Join(cols, ", "))
		},
	},
	"postgres": {
		Driver:      "postgres",
		Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		Quote:       doubleQuote,
		CreateTable: func(table string, columns []string) string {
			return createIfNotExists(doubleQuote, table, columns, "TEXT NULL")
		},
	},
	"mysql": {
		Driver:      "mysql",
		Placeholder: func(int) string { return "?" },
		Quote:       func(s string) string { return "`" + strings.ReplaceAll(s, "`", "``") + "`" },
		CreateTable: func(table string, columns []string) string {
			q := func(s string) string { return "`" + s + "`" }
			return createIfNotExists(q, table, columns, "TEXT NULL")
		},
	},
	"sqlite": {
		Driver:      "sqlite",
		Placeholder: func(int) string { return "?" },
		Quote:       doubleQuote,
		CreateTable: func(table string, columns []string) string {
			return createIfNotExists(doubleQuote, table, columns, "TEXT")
		},
	},
}

func doubleQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func createIfNotExists(quote func(string) string, table string, columns []string, colType string) string {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = quote(c) + " " + colType
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(table), strings.Join(cols, ", "))
}

// LookupDialect returns the dialect for a database/sql driver name.
func LookupDialect(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}
	return d, nil
}

// SQLSink loads tables into a relational database. Each write replaces the
// table contents inside one transaction.
type SQLSink struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLSink(db *sql.DB, driver string) (*SQLSink, error) {
	d, err := LookupDialect(driver)
	if err != nil {
		return nil, err
	}
	return &SQLSink{DB: db, Dialect: d}, nil
}

func (s *SQLSink) insertQuery(table models.Table) string {
	cols := make([]string, len(table.Columns))
	placeholders := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		cols[i] = s.Dialect.Quote(c)
		placeholders[i] = s.Dialect.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.Dialect.Quote(table.Name), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
}

func (s *SQLSink) Write(table models.Table, rows []models.Row) error {
	ctx := context.Background()

	if _, err := s.DB.ExecContext(ctx, s.Dialect.CreateTable(table.Name, table.Columns)); err != nil {
		return fmt.Errorf("create table %s: %w", table.Name, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load of %s: %w", table.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.Dialect.Quote(table.Name)); err != nil {
		return fmt.Errorf("clear table %s: %w", table.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.insertQuery(table))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", table.Name, err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(table.Columns))
	for _, row := range rows {
		for i, val := range table.Values(row) {
			if val == nil {
				args[i] = nil
			} else {
				args[i] = utils.FormatValue(val)
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert into %s: %w", table.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load of %s: %w", table.Name, err)
	}

	logger.Infof("Loaded %d rows into %s table %s", len(rows), s.Dialect.Driver, table.Name)
	return nil
}
