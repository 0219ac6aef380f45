package etl

import "github.com/BartekS5/sde2csv/pkg/models"

// Source yields the records of a named SDE source, e.g. "types". Each call
// reads from the start. A missing source yields no records.
type Source interface {
	Each(name string, fn func(models.Record) error) error
}

// Sink persists the complete row set of one table.
type Sink interface {
	Write(table models.Table, rows []models.Row) error
}

// Step is one unit of work run by a Pipeline.
type Step interface {
	Name() string
	Run() error
}
