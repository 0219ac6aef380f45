// Package tables holds the legacy table converters, the registry that names
// them and the entry points that run a selection of them.
package tables

import (
	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/models"
)

// Env is what a converter runs against.
type Env struct {
	Source etl.Source
	Sink   etl.Sink
	Lang   string
}

// Converter produces one legacy table.
type Converter interface {
	Table() models.Table
	Convert() error
}

// Factory instantiates a converter for one run.
type Factory func(env Env) Converter

// buildFunc computes the complete row set of a table.
type buildFunc func(src etl.Source, lang string) ([]models.Row, error)

type converter struct {
	env   Env
	table models.Table
	build buildFunc
}

func newFactory(table models.Table, build buildFunc) Factory {
	return func(env Env) Converter {
		return &converter{env: env, table: table, build: build}
	}
}

func (c *converter) Table() models.Table { return c.table }

func (c *converter) Convert() error {
	rows, err := c.build(c.env.Source, c.env.Lang)
	if err != nil {
		return err
	}
	return c.env.Sink.Write(c.table, rows)
}

// project emits one transformed row per record of source, skipping records
// for which keep returns false.
func project(src etl.Source, source string, t *etl.Transformer, keep func(models.Record) bool) ([]models.Row, error) {
	var rows []models.Row
	err := src.Each(source, func(rec models.Record) error {
		if keep == nil || keep(rec) {
			rows = append(rows, t.Transform(rec))
		}
		return nil
	})
	return rows, err
}
