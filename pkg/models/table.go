package models

// Table is the fixed layout of one legacy output table.
type Table struct {
	Name    string
	Columns []string
}

// FileName is the CSV file the table is written to.
func (t Table) FileName() string {
	return t.Name + ".csv"
}

// Values projects row onto the table columns in schema order. Keys that are
// not columns are ignored and missing columns come back as nil.
func (t Table) Values(row Row) []interface{} {
	out := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = row[col]
	}
	return out
}
