package etl

import (
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/BartekS5/sde2csv/pkg/utils"
)

// Field computes one column value from a record.
type Field func(rec models.Record) interface{}

// Direct reads a field as-is.
func Direct(name string) Field {
	return func(rec models.Record) interface{} { return rec.Get(name) }
}

// Key reads the legacy identifier.
func Key() Field {
	return func(rec models.Record) interface{} { return rec.Key() }
}

// Localized picks lang out of a localized field.
func Localized(name, lang string) Field {
	return func(rec models.Record) interface{} { return utils.Localized(rec, name, lang) }
}

// Flag reads a boolean field in legacy 0/1 form.
func Flag(name string) Field {
	return func(rec models.Record) interface{} { return utils.Legacy(rec.Get(name)) }
}

// Const always yields v.
func Const(v interface{}) Field {
	return func(models.Record) interface{} { return v }
}

// Transformer projects records onto a table, one row per record.
type Transformer struct {
	Table  models.Table
	Fields map[string]Field
}

func NewTransformer(table models.Table, fields map[string]Field) *Transformer {
	return &Transformer{Table: table, Fields: fields}
}

// Transform builds the row for rec. Columns without a field stay empty.
func (t *Transformer) Transform(rec models.Record) models.Row {
	row := make(models.Row, len(t.Table.Columns))
	for _, col := range t.Table.Columns {
		if f, ok := t.Fields[col]; ok {
			row[col] = f(rec)
		}
	}
	return row
}
