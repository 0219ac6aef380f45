package models

import "github.com/BartekS5/sde2csv/pkg/utils"

// KeyField carries the legacy identifier of every SDE entity.
const KeyField = "_key"

// Record is one decoded SDE line. Numbers are kept as json.Number so they
// render exactly as they appeared in the source.
type Record map[string]interface{}

// Row is one output line keyed by column name. A nil value means "no value".
type Row map[string]interface{}

// Get returns the raw value of field, or nil when it is absent.
func (r Record) Get(field string) interface{} {
	return r[field]
}

// Has reports whether field is present with a non-null value.
func (r Record) Has(field string) bool {
	return r[field] != nil
}

// Key returns the legacy identifier of the record.
func (r Record) Key() interface{} {
	return r[KeyField]
}

// Int returns field as an integer. The second result is false when the field
// is absent, null or not numeric.
func (r Record) Int(field string) (int64, bool) {
	return toInt64(r[field])
}

// IntOr is Int with a default for absent or non-numeric values.
func (r Record) IntOr(field string, def int64) int64 {
	if v, ok := r.Int(field); ok {
		return v
	}
	return def
}

// Record returns field as a nested Record, or nil.
func (r Record) Record(field string) Record {
	if m := asMap(r[field]); m != nil {
		return Record(m)
	}
	return nil
}

// List returns field as an array, or nil.
func (r Record) List(field string) []interface{} {
	if l, ok := r[field].([]interface{}); ok {
		return l
	}
	return nil
}

// Records returns the object elements of an array field. Non-object elements
// are skipped.
func (r Record) Records(field string) []Record {
	list := r.List(field)
	if list == nil {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if m := asMap(item); m != nil {
			out = append(out, Record(m))
		}
	}
	return out
}

func asMap(v interface{}) map[string]interface{} {
	switch m := v.(type) {
	case map[string]interface{}:
		return m
	case Record:
		return m
	}
	return nil
}

func toInt64(v interface{}) (int64, bool) {
	if v == nil {
		return 0, false
	}
	n, err := utils.ConvertToInt(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
