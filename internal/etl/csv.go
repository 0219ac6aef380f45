package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"github.com/BartekS5/sde2csv/pkg/utils"
)

// CSVSink writes each table to <Dir>/<table>.csv.
type CSVSink struct {
	Dir string
}

// NewCSVSink creates dir (and parents) when it does not exist yet.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return &CSVSink{Dir: dir}, nil
}

// Path returns the file the table is written to.
func (s *CSVSink) Path(table models.Table) string {
	return filepath.Join(s.Dir, table.FileName())
}

func (s *CSVSink) Write(table models.Table, rows []models.Row) (err error) {
	path := s.Path(table)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if err := w.Write(table.Columns); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	record := make([]string, len(table.Columns))
	for _, row := range rows {
		for i, val := range table.Values(row) {
			record[i] = utils.FormatValue(val)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Infof("Wrote %d rows to %s", len(rows), path)
	return nil
}

// MultiSink writes every table to each sink in order.
type MultiSink []Sink

func (m MultiSink) Write(table models.Table, rows []models.Row) error {
	for _, s := range m {
		if err := s.Write(table, rows); err != nil {
			return err
		}
	}
	return nil
}
